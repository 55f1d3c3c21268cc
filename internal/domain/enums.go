package domain

import "fmt"

// ColorToken identifies one of the 8 canonical puzzle colors.
// The set is closed; anything else is rejected at the boundary.
type ColorToken string

const (
	Black  ColorToken = "BLACK"
	Brown  ColorToken = "BROWN"
	Purple ColorToken = "PURPLE"
	Blue   ColorToken = "BLUE"
	Gray   ColorToken = "GRAY"
	Pink   ColorToken = "PINK"
	Orange ColorToken = "ORANGE"
	Yellow ColorToken = "YELLOW"
)

// CanonicalColors lists all tokens in luminance order, darkest first.
func CanonicalColors() []ColorToken {
	return []ColorToken{Black, Brown, Purple, Blue, Gray, Pink, Orange, Yellow}
}

// ParseColorToken maps a wire string onto the closed token set.
func ParseColorToken(s string) (ColorToken, error) {
	switch ColorToken(s) {
	case Black, Brown, Purple, Blue, Gray, Pink, Orange, Yellow:
		return ColorToken(s), nil
	}
	return "", fmt.Errorf("%w: unknown color token %q", ErrInvalidParameter, s)
}

// Language selects display labels; it never affects grid logic.
type Language string

const (
	LangChineseTW  Language = "zh-TW"
	LangEnglish    Language = "english"
	LangSpanish    Language = "spanish"
	LangVietnamese Language = "vietnamese"
)

// Languages lists all supported label languages.
func Languages() []Language {
	return []Language{LangChineseTW, LangEnglish, LangSpanish, LangVietnamese}
}

// ParseLanguage maps a wire string onto a supported language,
// defaulting to Traditional Chinese like the consuming UI does.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LangEnglish, LangSpanish, LangVietnamese:
		return Language(s)
	default:
		return LangChineseTW
	}
}

// TileClassification is the verdict for one user-flagged tile.
type TileClassification string

const (
	TileCorrect         TileClassification = "CORRECT"
	TileIncorrectStroop TileClassification = "INCORRECT_STROOP"
	TileIncorrectOther  TileClassification = "INCORRECT_OTHER"
)

// MistakePattern buckets aggregate Stroop statistics for guidance messaging.
type MistakePattern string

const (
	PatternNone       MistakePattern = "NONE"
	PatternHighStroop MistakePattern = "HIGH_STROOP"
	PatternModerate   MistakePattern = "MODERATE_STROOP"
	PatternMixed      MistakePattern = "MIXED_ERRORS"
	PatternNonStroop  MistakePattern = "NON_STROOP"
)
