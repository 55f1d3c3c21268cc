// Package palette is the static registry of the 8 accessibility-tuned
// puzzle colors: hex variants plus per-language display labels. Data is
// embedded and validated against the closed token set at load time, so
// free-form string indexing never reaches the rest of the system.
package palette

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"

	"svw.info/colorfocus/internal/domain"
)

//go:embed data/colors.json data/labels.json
var dataFS embed.FS

// Variant selects a brightness tier for a color token.
type Variant string

const (
	VariantDark   Variant = "dark"
	VariantBase   Variant = "base"
	VariantBright Variant = "bright"
)

// Entry holds everything known about one canonical color.
type Entry struct {
	Token    domain.ColorToken
	Variants map[Variant]string
	Labels   map[domain.Language]string
}

// Palette is the loaded, immutable color registry.
type Palette struct {
	entries map[domain.ColorToken]Entry
}

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Load parses the embedded color and label data and validates it against
// the canonical token set: all 8 tokens present with a base variant and a
// label for every supported language, and nothing beyond the closed set.
func Load() (*Palette, error) {
	var rawColors map[string]struct {
		Variants map[string]string `json:"variants"`
	}
	if err := readJSON("data/colors.json", &rawColors); err != nil {
		return nil, err
	}
	var rawLabels map[string]map[string]string
	if err := readJSON("data/labels.json", &rawLabels); err != nil {
		return nil, err
	}

	entries := make(map[domain.ColorToken]Entry, len(rawColors))
	for name, data := range rawColors {
		token, err := domain.ParseColorToken(name)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		variants := make(map[Variant]string, len(data.Variants))
		for v, hex := range data.Variants {
			switch Variant(v) {
			case VariantDark, VariantBase, VariantBright:
			default:
				return nil, fmt.Errorf("palette: unknown variant %q for %s", v, token)
			}
			if !hexPattern.MatchString(hex) {
				return nil, fmt.Errorf("palette: bad hex %q for %s/%s", hex, token, v)
			}
			variants[Variant(v)] = hex
		}
		if _, ok := variants[VariantBase]; !ok {
			return nil, fmt.Errorf("palette: %s missing base variant", token)
		}
		entries[token] = Entry{Token: token, Variants: variants}
	}

	for name, translations := range rawLabels {
		token, err := domain.ParseColorToken(name)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		entry, ok := entries[token]
		if !ok {
			return nil, fmt.Errorf("palette: labels for %s but no color data", token)
		}
		labels := make(map[domain.Language]string, len(translations))
		for _, lang := range domain.Languages() {
			label, ok := translations[string(lang)]
			if !ok || label == "" {
				return nil, fmt.Errorf("palette: %s missing %s label", token, lang)
			}
			labels[lang] = label
		}
		entry.Labels = labels
		entries[token] = entry
	}

	for _, token := range domain.CanonicalColors() {
		entry, ok := entries[token]
		if !ok {
			return nil, fmt.Errorf("palette: canonical token %s missing from data", token)
		}
		if entry.Labels == nil {
			return nil, fmt.Errorf("palette: canonical token %s has no labels", token)
		}
	}
	return &Palette{entries: entries}, nil
}

func readJSON(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("palette: read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("palette: parse %s: %w", name, err)
	}
	return nil
}

// Tokens returns the canonical tokens in luminance order.
func (p *Palette) Tokens() []domain.ColorToken {
	return domain.CanonicalColors()
}

// Hex returns the base hex value for a token.
func (p *Palette) Hex(token domain.ColorToken) string {
	return p.entries[token].Variants[VariantBase]
}

// HexVariant returns the hex value for a brightness variant. BLACK omits
// the dark variant, so the second return reports availability.
func (p *Palette) HexVariant(token domain.ColorToken, v Variant) (string, bool) {
	hex, ok := p.entries[token].Variants[v]
	return hex, ok
}

// Label returns the display label for a token in the given language.
func (p *Palette) Label(token domain.ColorToken, lang domain.Language) string {
	return p.entries[token].Labels[lang]
}

// Default color subsets by count, paired for luminance contrast so lower
// counts stay distinguishable for low-vision users. Taken from the
// accessible difficulty tiers: 2 is maximum contrast, 4 is standard,
// 8 uses the whole palette.
var defaultSubsets = map[int][]domain.ColorToken{
	2: {domain.Black, domain.Yellow},
	3: {domain.Black, domain.Blue, domain.Yellow},
	4: {domain.Black, domain.Blue, domain.Orange, domain.Yellow},
	5: {domain.Black, domain.Purple, domain.Blue, domain.Orange, domain.Yellow},
	6: {domain.Black, domain.Purple, domain.Blue, domain.Pink, domain.Orange, domain.Yellow},
	7: {domain.Black, domain.Brown, domain.Purple, domain.Blue, domain.Pink, domain.Orange, domain.Yellow},
	8: {domain.Black, domain.Brown, domain.Purple, domain.Blue, domain.Gray, domain.Pink, domain.Orange, domain.Yellow},
}

// DefaultSubset returns the standard ordered color subset for a count.
func DefaultSubset(colorCount int) ([]domain.ColorToken, error) {
	subset, ok := defaultSubsets[colorCount]
	if !ok {
		return nil, fmt.Errorf("%w: colorCount %d outside 2..8", domain.ErrInvalidParameter, colorCount)
	}
	out := make([]domain.ColorToken, len(subset))
	copy(out, subset)
	return out, nil
}
