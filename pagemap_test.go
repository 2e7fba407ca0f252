package yearplanner

import (
	"errors"
	"reflect"
	"testing"
)

func buildResolved(t *testing.T, year int) (*TOCResolver, []PageMapEntry) {
	t.Helper()

	plan, err := BuildPlan(year, DefaultSectionParams())
	if err != nil {
		t.Fatalf("BuildPlan(%d) unexpected error: %v", year, err)
	}
	resolver := NewTOCResolver(plan)
	entries, err := resolver.BuildPageMap()
	if err != nil {
		t.Fatalf("BuildPageMap() unexpected error: %v", err)
	}
	return resolver, entries
}

func TestBuildPageMapInvariants(t *testing.T) {
	t.Parallel()

	_, entries := buildResolved(t, 2026)

	// Every entry consumes exactly one physical page, so indices are
	// dense and 1-based.
	for i, e := range entries {
		if e.Physical != i+1 {
			t.Fatalf("entry[%d].Physical = %d, want %d", i, e.Physical, i+1)
		}
		wantSide := SideFront
		if i%2 == 1 {
			wantSide = SideBack
		}
		if e.Side != wantSide {
			t.Fatalf("entry[%d].Side = %s, want %s", i, e.Side, wantSide)
		}
		if e.Blank && (e.Logical != 0 || len(e.Rows) != 0) {
			t.Fatalf("entry[%d] is blank but carries logical %d and %d rows", i, e.Logical, len(e.Rows))
		}
	}
}

func TestBuildPageMap2026Layout(t *testing.T) {
	t.Parallel()

	_, entries := buildResolved(t, 2026)

	if len(entries) != 262 {
		t.Fatalf("2026 page map has %d pages, want 262", len(entries))
	}

	var blanks []PageMapEntry
	for _, e := range entries {
		if e.Blank {
			blanks = append(blanks, e)
		}
	}
	// With default parameters only the goals section needs realignment:
	// the table of contents spans 11 pages and ends on a recto.
	if len(blanks) != 1 {
		t.Fatalf("2026 page map has %d alignment blanks, want 1", len(blanks))
	}
	if blanks[0].Section != SectionGoals || blanks[0].Physical != 16 {
		t.Errorf("alignment blank = %s/%d, want goals/16", blanks[0].Section, blanks[0].Physical)
	}

	// Logical numbering starts at 1 on the goals page and runs to 244 on
	// the last graph paper page.
	maxLogical := 0
	var firstNumbered PageMapEntry
	for _, e := range entries {
		if e.Logical > maxLogical {
			maxLogical = e.Logical
		}
		if e.Logical == 1 {
			firstNumbered = e
		}
	}
	if firstNumbered.Section != SectionGoals {
		t.Errorf("logical page 1 lands on %q, want goals", firstNumbered.Section)
	}
	if firstNumbered.Side != SideFront {
		t.Error("logical page 1 must land on a recto")
	}
	if maxLogical != 244 {
		t.Errorf("last logical page = %d, want 244", maxLogical)
	}

	// Cover and rear cover are never numbered.
	for _, e := range entries {
		if (e.Section == SectionCover || e.Section == SectionRearCover) && e.Logical != 0 {
			t.Errorf("%s physical %d carries logical %d, want none", e.Section, e.Physical, e.Logical)
		}
	}
}

func TestBuildPageMapDeterministic(t *testing.T) {
	t.Parallel()

	_, first := buildResolved(t, 2026)
	_, second := buildResolved(t, 2026)

	if !reflect.DeepEqual(first, second) {
		t.Error("two dry passes over the same plan produced different page maps")
	}
}

func TestTOCRowsResolved(t *testing.T) {
	t.Parallel()

	resolver, _ := buildResolved(t, 2026)

	rows, err := resolver.TOCRows()
	if err != nil {
		t.Fatalf("TOCRows() unexpected error: %v", err)
	}
	if len(rows) != 423 {
		t.Fatalf("TOCRows() returned %d rows, want 423", len(rows))
	}

	if rows[0].Label != "Goals" || rows[0].Page != 1 || rows[0].Shading != ShadingSection {
		t.Errorf("first row = %+v, want Goals on page 1 with section shading", rows[0])
	}

	// Numbered blank versos keep their row and page number; only labels
	// are empty.
	if rows[1].Label != "" || rows[1].Page != 2 {
		t.Errorf("second row = %+v, want empty label on page 2", rows[1])
	}

	for i, row := range rows {
		if row.Page <= 0 {
			t.Fatalf("row[%d] %q has unresolved page %d", i, row.Label, row.Page)
		}
		if i > 0 && row.Page < rows[i-1].Page {
			t.Fatalf("row[%d] page %d goes backwards from %d", i, row.Page, rows[i-1].Page)
		}
	}
}

func TestResolverStateMachine(t *testing.T) {
	t.Parallel()

	plan, err := BuildPlan(2026, DefaultSectionParams())
	if err != nil {
		t.Fatalf("BuildPlan(2026) unexpected error: %v", err)
	}
	resolver := NewTOCResolver(plan)

	if resolver.State() != StateIdle {
		t.Fatalf("new resolver state = %s, want idle", resolver.State())
	}

	// Reads before the dry pass are rejected.
	if _, err := resolver.PageMap(); !errors.Is(err, ErrResolverState) {
		t.Errorf("PageMap() before dry pass error = %v, want ErrResolverState", err)
	}
	if _, err := resolver.TOCRows(); !errors.Is(err, ErrResolverState) {
		t.Errorf("TOCRows() before dry pass error = %v, want ErrResolverState", err)
	}
	if err := resolver.BeginEmission(); !errors.Is(err, ErrResolverState) {
		t.Errorf("BeginEmission() before dry pass error = %v, want ErrResolverState", err)
	}

	if _, err := resolver.BuildPageMap(); err != nil {
		t.Fatalf("BuildPageMap() unexpected error: %v", err)
	}
	if resolver.State() != StateResolved {
		t.Fatalf("state after dry pass = %s, want resolved", resolver.State())
	}

	// The dry pass runs exactly once per resolver.
	if _, err := resolver.BuildPageMap(); !errors.Is(err, ErrResolverState) {
		t.Errorf("second BuildPageMap() error = %v, want ErrResolverState", err)
	}

	if err := resolver.BeginEmission(); err != nil {
		t.Fatalf("BeginEmission() unexpected error: %v", err)
	}
	if err := resolver.FinishEmission(); err != nil {
		t.Fatalf("FinishEmission() unexpected error: %v", err)
	}
	if resolver.State() != StateDone {
		t.Fatalf("final state = %s, want done", resolver.State())
	}
	if err := resolver.FinishEmission(); !errors.Is(err, ErrResolverState) {
		t.Errorf("FinishEmission() when done error = %v, want ErrResolverState", err)
	}

	// The map stays readable after the run ends.
	if _, err := resolver.PageMap(); err != nil {
		t.Errorf("PageMap() after done unexpected error: %v", err)
	}
}

func TestSectionEntries(t *testing.T) {
	t.Parallel()

	resolver, _ := buildResolved(t, 2026)

	goals, err := resolver.SectionEntries(SectionGoals)
	if err != nil {
		t.Fatalf("SectionEntries(goals) unexpected error: %v", err)
	}

	// Alignment blank plus two content pages.
	if len(goals) != 3 {
		t.Fatalf("SectionEntries(goals) returned %d entries, want 3", len(goals))
	}
	if !goals[0].Blank {
		t.Error("first goals entry must be the alignment blank")
	}
	if goals[1].Logical != 1 || goals[2].Logical != 2 {
		t.Errorf("goals logical pages = %d, %d, want 1, 2", goals[1].Logical, goals[2].Logical)
	}

	if unknown, err := resolver.SectionEntries("no-such-section"); err != nil || len(unknown) != 0 {
		t.Errorf("SectionEntries(no-such-section) = %v, %v, want empty", unknown, err)
	}
}
