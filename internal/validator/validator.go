package validator

import (
	"fmt"

	"svw.info/colorfocus/internal/domain"
)

// Balance validates ink-color distributions against the balanced-partition
// contract: counts sum to the cell total and every color lands on the floor
// or ceil of totalCells/colorCount.
type Balance struct{}

func New() *Balance { return &Balance{} }

// Validate is a pure predicate with no side effects. The issues slice
// explains failures for logging; it is nil when ok.
func (v *Balance) Validate(counts map[domain.ColorToken]int, totalCells, colorCount int) (bool, []string) {
	var issues []string

	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum != totalCells {
		issues = append(issues, fmt.Sprintf("counts sum to %d, want %d", sum, totalCells))
	}

	if colorCount <= 0 {
		issues = append(issues, fmt.Sprintf("colorCount %d is not positive", colorCount))
		return false, issues
	}

	lo := totalCells / colorCount
	hi := lo
	if totalCells%colorCount != 0 {
		hi = lo + 1
	}
	for token, n := range counts {
		if n < lo || n > hi {
			issues = append(issues, fmt.Sprintf("%s appears %d times, want %d..%d", token, n, lo, hi))
		}
		if n == 0 && colorCount <= totalCells {
			issues = append(issues, fmt.Sprintf("%s never appears", token))
		}
	}
	// Colors absent from the map count as zero occurrences.
	if colorCount <= totalCells && len(counts) < colorCount {
		issues = append(issues, fmt.Sprintf("only %d of %d colors appear", len(counts), colorCount))
	}
	return len(issues) == 0, issues
}
