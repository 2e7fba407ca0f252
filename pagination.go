package yearplanner

// PaginationTracker simulates page consumption for a generation run.
// It replaces any ambient "current page" state with an explicit instance
// so independent runs (different years) never share counters.
//
// The tracker knows nothing about section content; callers feed it page
// counts and scope changes and read back physical index, logical page
// number, and side parity.
type PaginationTracker struct {
	physical int // pages consumed so far
	logical  int // logical number of the next page, valid in numbered scopes
	side     Side
	numbered bool
	scope    int // ordinal of the current numbering scope
}

// NewPaginationTracker returns a tracker positioned before the first
// physical page, which is a front (recto) page, in an unnumbered scope.
func NewPaginationTracker() *PaginationTracker {
	return &PaginationTracker{side: SideFront}
}

// BeginNumberedScope starts a new scope in which logical page numbers are
// assigned, counting from start.
func (t *PaginationTracker) BeginNumberedScope(start int) {
	t.scope++
	t.numbered = true
	t.logical = start
}

// BeginUnnumberedScope starts a new scope in which physical pages still
// advance but logical numbers are suspended.
func (t *PaginationTracker) BeginUnnumberedScope() {
	t.scope++
	t.numbered = false
	t.logical = 0
}

// Scope returns the ordinal of the current numbering scope.
func (t *PaginationTracker) Scope() int { return t.scope }

// Numbered reports whether the current scope assigns logical numbers.
func (t *PaginationTracker) Numbered() bool { return t.numbered }

// PhysicalPage returns the 1-based index of the next page to be emitted.
func (t *PaginationTracker) PhysicalPage() int { return t.physical + 1 }

// LogicalPage returns the logical number of the next page, or false when
// the current scope is unnumbered.
func (t *PaginationTracker) LogicalPage() (int, bool) {
	if !t.numbered {
		return 0, false
	}
	return t.logical, true
}

// Side returns the duplex side the next page lands on.
func (t *PaginationTracker) Side() Side { return t.side }

// AdvancePages consumes count physical pages. Side parity flips once per
// page; logical numbers advance only in numbered scopes.
func (t *PaginationTracker) AdvancePages(count int) {
	if count <= 0 {
		return
	}
	t.physical += count
	if count%2 == 1 {
		t.side = t.side.Flip()
	}
	if t.numbered {
		t.logical += count
	}
}

// NeedsAlignmentBlank reports whether forcing the next page onto side
// would require inserting one blank page first. This is the explicit
// duplex-alignment rule: section starts that must land on a recto page
// insert a single blank verso when the previous section ended on a recto.
func (t *PaginationTracker) NeedsAlignmentBlank(side Side) bool {
	return t.side != side
}

// ForceSide aligns the next page onto side, consuming one blank page if
// the parity does not already match. The blank participates in parity but
// is numbering-scope-exempt: it never receives a logical page number, so
// the logical counter is not advanced for it. Returns true when a blank
// was inserted.
func (t *PaginationTracker) ForceSide(side Side) bool {
	if t.side == side {
		return false
	}
	t.physical++
	t.side = t.side.Flip()
	return true
}
