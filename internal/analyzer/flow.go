package analyzer

import (
	"fmt"

	"svw.info/colorfocus/internal/domain"
)

// FlowState is the guided identification flow's current phase.
type FlowState int

const (
	FlowIdle FlowState = iota
	FlowAwaitingColor
	FlowRecording
	FlowComplete
)

func (s FlowState) String() string {
	switch s {
	case FlowIdle:
		return "IDLE"
	case FlowAwaitingColor:
		return "AWAITING_COLOR_SELECTION"
	case FlowRecording:
		return "RECORDING_TILES"
	case FlowComplete:
		return "COMPLETE"
	}
	return fmt.Sprintf("FlowState(%d)", int(s))
}

// TileMark is one flagged tile and its classification.
type TileMark struct {
	Pos            domain.CellCoord          `json:"pos"`
	Classification domain.TileClassification `json:"classification"`
}

// Flow drives the guided per-color tile identification. Colors with a
// nonzero discrepancy are queued in subset order; zero-discrepancy colors
// are skipped entirely. The flow runs on the consumer's single UI thread,
// so it needs no locking.
type Flow struct {
	analyzer *Analyzer
	grid     *domain.PuzzleGrid

	state   FlowState
	queue   []domain.ColorToken
	idx     int
	pending []TileMark
	results map[domain.ColorToken][]TileMark
}

// NewFlow builds an idle flow for the colors the report marks discrepant.
func NewFlow(a *Analyzer, grid *domain.PuzzleGrid, report domain.DiscrepancyReport) (*Flow, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil analyzer", domain.ErrInvalidParameter)
	}
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", domain.ErrInvalidParameter)
	}
	queue := make([]domain.ColorToken, 0, len(report))
	for _, token := range grid.Colors {
		if report[token] != 0 {
			queue = append(queue, token)
		}
	}
	return &Flow{
		analyzer: a,
		grid:     grid,
		state:    FlowIdle,
		queue:    queue,
		results:  make(map[domain.ColorToken][]TileMark, len(queue)),
	}, nil
}

// State returns the current phase.
func (f *Flow) State() FlowState { return f.state }

// CurrentColor returns the color being queried, if any phase is active.
func (f *Flow) CurrentColor() (domain.ColorToken, bool) {
	if f.state != FlowAwaitingColor && f.state != FlowRecording {
		return "", false
	}
	return f.queue[f.idx], true
}

// Start moves IDLE to the first queued color, or straight to COMPLETE when
// nothing is discrepant.
func (f *Flow) Start() error {
	if f.state != FlowIdle {
		return fmt.Errorf("cannot start flow in state %s", f.state)
	}
	f.idx = 0
	if len(f.queue) == 0 {
		f.state = FlowComplete
		return nil
	}
	f.state = FlowAwaitingColor
	return nil
}

// Confirm acknowledges the presented color and begins recording tiles.
func (f *Flow) Confirm() error {
	if f.state != FlowAwaitingColor {
		return fmt.Errorf("cannot confirm color in state %s", f.state)
	}
	f.state = FlowRecording
	f.pending = f.pending[:0]
	return nil
}

// Flag records one tile the user believes was the queried color and
// classifies it immediately.
func (f *Flow) Flag(pos domain.CellCoord) (domain.TileClassification, error) {
	if f.state != FlowRecording {
		return "", fmt.Errorf("cannot flag tiles in state %s", f.state)
	}
	verdict, err := f.analyzer.ClassifyTile(f.grid, pos, f.queue[f.idx])
	if err != nil {
		return "", err
	}
	f.pending = append(f.pending, TileMark{Pos: pos, Classification: verdict})
	return verdict, nil
}

// Done finishes the current color and advances to the next queued one, or
// to COMPLETE when the queue is exhausted.
func (f *Flow) Done() error {
	if f.state != FlowRecording {
		return fmt.Errorf("cannot finish color in state %s", f.state)
	}
	color := f.queue[f.idx]
	f.results[color] = append([]TileMark(nil), f.pending...)
	f.pending = f.pending[:0]
	f.idx++
	if f.idx >= len(f.queue) {
		f.state = FlowComplete
		return nil
	}
	f.state = FlowAwaitingColor
	return nil
}

// Cancel returns any non-IDLE state to IDLE, discarding the in-progress
// color but keeping already-completed identifications.
func (f *Flow) Cancel() {
	if f.state == FlowIdle {
		return
	}
	f.pending = f.pending[:0]
	f.state = FlowIdle
	f.idx = 0
}

// Results returns the completed per-color marks.
func (f *Flow) Results() map[domain.ColorToken][]TileMark {
	out := make(map[domain.ColorToken][]TileMark, len(f.results))
	for token, marks := range f.results {
		out[token] = append([]TileMark(nil), marks...)
	}
	return out
}

// Summary aggregates all completed marks. Only meaningful once COMPLETE,
// but safe to call anytime; it covers completed colors only.
func (f *Flow) Summary() domain.MistakeSummary {
	var all []TileMark
	for _, marks := range f.results {
		all = append(all, marks...)
	}
	return Summarize(all)
}
