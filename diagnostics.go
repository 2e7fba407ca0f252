package yearplanner

import (
	"fmt"

	"github.com/google/uuid"
)

// Warning is a non-fatal layout diagnostic collected during generation.
// Degraded-but-complete output is preferred to a hard failure for this
// class of issue, so warnings are returned alongside the result instead
// of aborting the run.
type Warning struct {
	RunID   string
	Section string
	Table   string
	Err     error
}

// Error formats the warning for display after generation completes.
func (w Warning) Error() string {
	return fmt.Sprintf("[%s] %s/%s: %v", w.RunID, w.Section, w.Table, w.Err)
}

// Unwrap exposes the underlying error for errors.Is checks.
func (w Warning) Unwrap() error { return w.Err }

// diagnostics collects warnings for one generation run. Each run gets a
// fresh collector tagged with a unique run ID so warnings from pooled,
// concurrent runs remain attributable.
type diagnostics struct {
	runID    string
	warnings []Warning
}

func newDiagnostics() *diagnostics {
	return &diagnostics{runID: uuid.NewString()}
}

// warnf records a non-fatal diagnostic against a section's table.
func (d *diagnostics) warnf(section, table string, err error) {
	d.warnings = append(d.warnings, Warning{
		RunID:   d.runID,
		Section: section,
		Table:   table,
		Err:     err,
	})
}
