// Package classifier buckets aggregate Stroop statistics into one of four
// guidance categories. A thin rules table, pure and total over its domain.
package classifier

import (
	"fmt"

	"svw.info/colorfocus/internal/domain"
)

// Ratio thresholds separating the guidance categories.
const (
	highThreshold     = 0.70
	moderateThreshold = 0.40
)

type Rules struct{}

func New() *Rules { return &Rules{} }

// Classify maps mistake totals onto a pattern. Zero mistakes yield NONE
// regardless of the Stroop count; otherwise the ratio
// stroopInfluenced/totalMistakes decides the bucket, with 0.70 and 0.40
// inclusive lower bounds for HIGH and MODERATE.
func (r *Rules) Classify(totalMistakes, stroopInfluenced int) (domain.MistakePattern, error) {
	if totalMistakes < 0 || stroopInfluenced < 0 || stroopInfluenced > totalMistakes {
		return "", fmt.Errorf("%w: totalMistakes=%d stroopInfluenced=%d", domain.ErrInvalidParameter, totalMistakes, stroopInfluenced)
	}
	if totalMistakes == 0 {
		return domain.PatternNone, nil
	}
	ratio := float64(stroopInfluenced) / float64(totalMistakes)
	switch {
	case ratio >= highThreshold:
		return domain.PatternHighStroop, nil
	case ratio >= moderateThreshold:
		return domain.PatternModerate, nil
	case ratio == 0:
		return domain.PatternNonStroop, nil
	default:
		return domain.PatternMixed, nil
	}
}

// guidance holds the educational message shown per category. NONE shows
// nothing by design.
var guidance = map[domain.MistakePattern]map[domain.Language]string{
	domain.PatternHighStroop: {
		domain.LangChineseTW:  "大部分錯誤來自相鄰文字的干擾。試著只注意顏色，忽略文字的意思。",
		domain.LangEnglish:    "Most mistakes came from neighboring words. Try focusing only on the ink color and ignoring what the words say.",
		domain.LangSpanish:    "La mayoría de los errores vienen de las palabras vecinas. Intente fijarse solo en el color de la tinta e ignorar lo que dicen las palabras.",
		domain.LangVietnamese: "Hầu hết các lỗi đến từ các từ bên cạnh. Hãy thử chỉ tập trung vào màu mực và bỏ qua nghĩa của từ.",
	},
	domain.PatternModerate: {
		domain.LangChineseTW:  "部分錯誤受到相鄰文字影響。放慢速度，先看顏色再確認。",
		domain.LangEnglish:    "Some mistakes were influenced by neighboring words. Slow down and confirm the color before counting.",
		domain.LangSpanish:    "Algunos errores fueron influidos por palabras vecinas. Vaya más despacio y confirme el color antes de contar.",
		domain.LangVietnamese: "Một số lỗi bị ảnh hưởng bởi các từ bên cạnh. Hãy chậm lại và xác nhận màu trước khi đếm.",
	},
	domain.PatternMixed: {
		domain.LangChineseTW:  "錯誤原因不一。建議逐格檢查，保持穩定的節奏。",
		domain.LangEnglish:    "Mistakes had mixed causes. Check each tile one at a time and keep a steady pace.",
		domain.LangSpanish:    "Los errores tuvieron causas variadas. Revise cada casilla una por una y mantenga un ritmo constante.",
		domain.LangVietnamese: "Các lỗi có nhiều nguyên nhân khác nhau. Hãy kiểm tra từng ô một và giữ nhịp độ ổn định.",
	},
	domain.PatternNonStroop: {
		domain.LangChineseTW:  "錯誤與文字干擾無關，可能是計數疏漏。數完後再複查一次。",
		domain.LangEnglish:    "Mistakes were not related to word interference; they may be counting slips. Recheck your totals once after counting.",
		domain.LangSpanish:    "Los errores no se relacionan con la interferencia de palabras; pueden ser descuidos al contar. Revise sus totales una vez más.",
		domain.LangVietnamese: "Các lỗi không liên quan đến nhiễu từ ngữ; có thể do đếm nhầm. Hãy kiểm tra lại tổng số sau khi đếm.",
	},
}

// Guidance returns the localized message for a pattern, empty for NONE.
func (r *Rules) Guidance(p domain.MistakePattern, lang domain.Language) string {
	return guidance[p][lang]
}
