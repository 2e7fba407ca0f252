package yearplanner

import "fmt"

// PageMapEntry records one physical page of the resolved document. The
// collection is built entirely by the dry pass and is immutable for the
// remainder of the generation run.
type PageMapEntry struct {
	Section  string
	Physical int  // 1-based physical page index, counts every sheet side
	Logical  int  // logical page number shown to the reader; 0 = none
	Side     Side // duplex parity
	Blank    bool // alignment blank: parity-consuming, numbering-exempt

	// Rows are the TOC-visible rows this page contributes, with logical
	// page numbers resolved. Alignment blanks contribute none.
	Rows []TOCRow
}

// ResolverState tracks a generation run through its phases. Once the map
// is Resolved no transition may return to DryRun; a configuration change
// requires a fresh resolver starting at Idle.
type ResolverState int

const (
	StateIdle ResolverState = iota
	StateDryRun
	StateResolved
	StateEmitting
	StateDone
)

// String returns the lowercase phase name.
func (s ResolverState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDryRun:
		return "dry-run"
	case StateResolved:
		return "resolved"
	case StateEmitting:
		return "emitting"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// TOCResolver resolves the circular dependency between the table of
// contents and the sections emitted after it: a full dry run through a
// PaginationTracker produces the complete page map before any content is
// emitted, and the emission pass then consults the frozen map.
type TOCResolver struct {
	plan    *Plan
	state   ResolverState
	entries []PageMapEntry
}

// NewTOCResolver returns an idle resolver for one generation run. A
// resolver is single-use and must not be shared between runs.
func NewTOCResolver(plan *Plan) *TOCResolver {
	return &TOCResolver{plan: plan, state: StateIdle}
}

// State returns the current phase.
func (r *TOCResolver) State() ResolverState { return r.state }

// BuildPageMap runs the dry pagination pass over the full section plan
// and freezes the resulting page map. It may only be called once, from
// Idle; the deliberate absence of any estimate-then-correct loop relies
// on every section's page count being a pure function of configuration
// and calendar facts.
func (r *TOCResolver) BuildPageMap() ([]PageMapEntry, error) {
	if r.state != StateIdle {
		return nil, fmt.Errorf("%w: BuildPageMap in state %s", ErrResolverState, r.state)
	}
	r.state = StateDryRun

	tracker := NewPaginationTracker()
	var entries []PageMapEntry

	for _, sec := range r.plan.Sections {
		switch sec.Scope {
		case ScopeNumbered:
			tracker.BeginNumberedScope(sec.NumberFrom)
		case ScopeUnnumbered:
			tracker.BeginUnnumberedScope()
		}

		if sec.ForceFront && tracker.NeedsAlignmentBlank(SideFront) {
			entries = append(entries, PageMapEntry{
				Section:  sec.ID,
				Physical: tracker.PhysicalPage(),
				Side:     tracker.Side(),
				Blank:    true,
			})
			tracker.ForceSide(SideFront)
		}

		count, err := r.plan.PageCountFor(sec)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", sec.ID, err)
		}
		pageRows, err := r.plan.PageRows(sec)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", sec.ID, err)
		}
		if len(pageRows) != count {
			return nil, fmt.Errorf("%w: section %q rows for %d pages, count %d",
				ErrCalendarLogic, sec.ID, len(pageRows), count)
		}

		for i := 0; i < count; i++ {
			entry := PageMapEntry{
				Section:  sec.ID,
				Physical: tracker.PhysicalPage(),
				Side:     tracker.Side(),
			}
			if logical, ok := tracker.LogicalPage(); ok {
				entry.Logical = logical
			}
			for _, row := range pageRows[i] {
				row.Page = entry.Logical
				entry.Rows = append(entry.Rows, row)
			}
			entries = append(entries, entry)
			tracker.AdvancePages(1)
		}
	}

	r.entries = entries
	r.state = StateResolved
	return entries, nil
}

// PageMap returns the frozen page map. It is only available once resolved.
func (r *TOCResolver) PageMap() ([]PageMapEntry, error) {
	if r.state < StateResolved {
		return nil, fmt.Errorf("%w: PageMap in state %s", ErrResolverState, r.state)
	}
	return r.entries, nil
}

// SectionEntries returns the pages of one section, including any
// alignment blank inserted before it.
func (r *TOCResolver) SectionEntries(id string) ([]PageMapEntry, error) {
	if r.state < StateResolved {
		return nil, fmt.Errorf("%w: SectionEntries in state %s", ErrResolverState, r.state)
	}
	var out []PageMapEntry
	for _, e := range r.entries {
		if e.Section == id {
			out = append(out, e)
		}
	}
	return out, nil
}

// TOCRows returns every TOC-visible row across the resolved map in
// document order, with logical page numbers assigned. Alignment blanks
// never appear here.
func (r *TOCResolver) TOCRows() ([]TOCRow, error) {
	if r.state < StateResolved {
		return nil, fmt.Errorf("%w: TOCRows in state %s", ErrResolverState, r.state)
	}
	var rows []TOCRow
	for _, e := range r.entries {
		rows = append(rows, e.Rows...)
	}
	return rows, nil
}

// BeginEmission transitions Resolved → Emitting. From here the map is
// consulted read-only.
func (r *TOCResolver) BeginEmission() error {
	if r.state != StateResolved {
		return fmt.Errorf("%w: BeginEmission in state %s", ErrResolverState, r.state)
	}
	r.state = StateEmitting
	return nil
}

// FinishEmission transitions Emitting → Done, ending the run.
func (r *TOCResolver) FinishEmission() error {
	if r.state != StateEmitting {
		return fmt.Errorf("%w: FinishEmission in state %s", ErrResolverState, r.state)
	}
	r.state = StateDone
	return nil
}
