package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/colorfocus/internal/domain"
)

func TestClassify(t *testing.T) {
	r := New()

	cases := []struct {
		name             string
		totalMistakes    int
		stroopInfluenced int
		want             domain.MistakePattern
	}{
		{"no mistakes", 0, 0, domain.PatternNone},
		{"seven of ten", 10, 7, domain.PatternHighStroop},
		{"all stroop", 5, 5, domain.PatternHighStroop},
		{"exactly high threshold", 20, 14, domain.PatternHighStroop},
		{"just under high", 10, 6, domain.PatternModerate},
		{"exactly moderate threshold", 10, 4, domain.PatternModerate},
		{"just under moderate", 10, 3, domain.PatternMixed},
		{"single non-stroop mistake", 1, 0, domain.PatternNonStroop},
		{"no stroop at all", 10, 0, domain.PatternNonStroop},
		{"single stroop mistake", 1, 1, domain.PatternHighStroop},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Classify(tc.totalMistakes, tc.stroopInfluenced)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyRejectsInvalidInput(t *testing.T) {
	r := New()

	cases := []struct {
		name             string
		totalMistakes    int
		stroopInfluenced int
	}{
		{"negative total", -1, 0},
		{"negative stroop", 5, -1},
		{"stroop exceeds total", 3, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Classify(tc.totalMistakes, tc.stroopInfluenced)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
		})
	}
}

func TestGuidance(t *testing.T) {
	r := New()

	patterns := []domain.MistakePattern{
		domain.PatternHighStroop,
		domain.PatternModerate,
		domain.PatternMixed,
		domain.PatternNonStroop,
	}
	languages := []domain.Language{
		domain.LangChineseTW,
		domain.LangEnglish,
		domain.LangSpanish,
		domain.LangVietnamese,
	}

	for _, p := range patterns {
		for _, lang := range languages {
			assert.NotEmpty(t, r.Guidance(p, lang), "%s/%s", p, lang)
		}
	}

	assert.Empty(t, r.Guidance(domain.PatternNone, domain.LangEnglish))
}
