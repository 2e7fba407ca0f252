package yearplanner

import "fmt"

// Fixed layout allowances, in twips.
const (
	// MinimizedParagraphTwips is the height of a minimized paragraph
	// (1 pt font with exact 1 pt line spacing) preceding a page-filling
	// table.
	MinimizedParagraphTwips = 20

	// SafetyMarginTwips is a small buffer that guarantees tables never
	// spill to the next page despite rounding.
	SafetyMarginTwips = 40

	// DefaultMinRowHeightTwips is the smallest content row height (6 pt)
	// still considered legible.
	DefaultMinRowHeightTwips = 120
)

// RowHeightSolver computes uniform content row heights so that a table
// with a variable row count fills the remaining page height exactly.
type RowHeightSolver struct {
	// SafetyMargin absorbs rounding residue; total used height never
	// exceeds the content height. Zero means SafetyMarginTwips.
	SafetyMargin int

	// MinimizedParagraph is the height reserved for the minimized
	// paragraph preceding the table. Zero means MinimizedParagraphTwips.
	MinimizedParagraph int

	// MinRowHeight is the legibility threshold below which a solved
	// height is reported as infeasible. Zero means DefaultMinRowHeightTwips.
	MinRowHeight int
}

// RowHeightPlan is the solved layout for one table, in twips. It is
// recomputed per table and discarded after use.
type RowHeightPlan struct {
	RowHeight  int   // uniform content row height
	RowCount   int   // number of content rows
	FixedRows  []int // title/header/footer row heights
	UsedHeight int   // total consumed height including allowances
}

// Solve computes the uniform content row height for a table that must
// fill contentHeight exactly:
//
//	rowHeight = (contentHeight - minimizedParagraph - safety - sum(fixedRows)) / rowCount
//
// The division truncates, never rounds up; the residue is absorbed into
// the safety margin so the used height never exceeds contentHeight.
//
// Returns ErrLayoutInfeasible when rowCount is zero or the solved height
// falls below the legibility threshold. In the threshold case the plan is
// still returned so the caller can record a warning and continue with the
// degraded height rather than abort.
func (s RowHeightSolver) Solve(contentHeight int, fixedRows []int, rowCount int) (RowHeightPlan, error) {
	safety := s.SafetyMargin
	if safety == 0 {
		safety = SafetyMarginTwips
	}
	minPara := s.MinimizedParagraph
	if minPara == 0 {
		minPara = MinimizedParagraphTwips
	}
	minRow := s.MinRowHeight
	if minRow == 0 {
		minRow = DefaultMinRowHeightTwips
	}

	if rowCount <= 0 {
		return RowHeightPlan{}, fmt.Errorf("%w: row count must be >= 1, got %d",
			ErrLayoutInfeasible, rowCount)
	}

	fixedSum := 0
	for _, h := range fixedRows {
		fixedSum += h
	}

	remaining := contentHeight - minPara - safety - fixedSum
	rowHeight := remaining / rowCount

	plan := RowHeightPlan{
		RowHeight:  rowHeight,
		RowCount:   rowCount,
		FixedRows:  fixedRows,
		UsedHeight: fixedSum + rowHeight*rowCount + safety + minPara,
	}

	if rowHeight < minRow {
		return plan, fmt.Errorf("%w: solved row height %d twips below threshold %d (content %d, fixed %d, rows %d)",
			ErrLayoutInfeasible, rowHeight, minRow, contentHeight, fixedSum, rowCount)
	}

	return plan, nil
}
