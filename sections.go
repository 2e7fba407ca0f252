package yearplanner

import (
	"fmt"
	"time"
)

// ScopeChange says how a section interacts with page numbering scopes.
type ScopeChange int

const (
	// ScopeContinue keeps the current numbering scope.
	ScopeContinue ScopeChange = iota
	// ScopeNumbered begins a scope that assigns logical page numbers.
	ScopeNumbered
	// ScopeUnnumbered begins a scope without logical page numbers.
	ScopeUnnumbered
)

// SectionShape selects the page-count rule for a section. Fixed shapes
// have a configured count; calendar-driven shapes derive theirs from
// calendar facts for the target year.
type SectionShape int

const (
	// ShapeFixed consumes a configured number of pages.
	ShapeFixed SectionShape = iota
	// ShapeTOC consumes as many pages as needed to list every numbered
	// page at the configured rows per page.
	ShapeTOC
	// ShapeWeekRows consumes one page per group of ISO weeks at the
	// configured rows per page.
	ShapeWeekRows
	// ShapeMonth consumes a month cover, its blank verso, and a daily
	// spread of two days per page, padded to end on a verso.
	ShapeMonth
)

// SectionDescriptor declares one section of the planner in document order.
type SectionDescriptor struct {
	ID    string
	Title string

	Scope      ScopeChange
	NumberFrom int // first logical page number when Scope is ScopeNumbered

	Shape      SectionShape
	FixedPages int        // for ShapeFixed
	Month      time.Month // for ShapeMonth

	// DoubleSided sections put content on both faces of a sheet.
	DoubleSided bool

	// ForceFront aligns the section start onto a recto page, inserting
	// one blank, unnumbered page when the previous section ended on a
	// recto.
	ForceFront bool
}

// ShadingLevel selects the background emphasis of a TOC row.
type ShadingLevel int

const (
	ShadingNone ShadingLevel = iota
	// ShadingSection marks section headers (first page of a section).
	ShadingSection
	// ShadingFirstItem marks secondary boundaries (first week of a
	// month, weekend days).
	ShadingFirstItem
)

// TOCRow is one table-of-contents row: a label pointing at a logical
// page number. Daily spread pages contribute two rows (two days share a
// page); alignment blanks contribute none.
type TOCRow struct {
	Label   string
	Page    int
	Shading ShadingLevel
}

// SectionParams carries the per-section configuration the pagination
// rules depend on.
type SectionParams struct {
	TOCRowsPerPage  int
	WeekRowsPerPage int

	GoalsColumns int
	GoalsRows    int

	BacklogPages int
	BacklogRows  int

	DailyRows           int
	SubjectWidthPercent int

	TermsPages int
	TermsRows  int

	// GraphPaperSheets counts grid sheets; each consumes a recto grid
	// page plus a blank verso.
	GraphPaperSheets int
	GraphColumns     int
	GraphRows        int

	// GraphGridGrayscale and GraphBorderGrayscale shade the grid lines
	// and outer frame, 0=white through 100=black.
	GraphGridGrayscale   int
	GraphBorderGrayscale int
}

// DefaultSectionParams mirrors the reference configuration shipped with
// the planner.
func DefaultSectionParams() SectionParams {
	return SectionParams{
		TOCRowsPerPage:       40,
		WeekRowsPerPage:      14,
		GoalsColumns:         2,
		GoalsRows:            10,
		BacklogPages:         4,
		BacklogRows:          20,
		DailyRows:            18,
		SubjectWidthPercent:  30,
		TermsPages:           4,
		TermsRows:            20,
		GraphPaperSheets:     8,
		GraphColumns:         28,
		GraphRows:            40,
		GraphGridGrayscale:   15,
		GraphBorderGrayscale: 100,
	}
}

// Validate rejects parameter combinations that cannot paginate.
func (p SectionParams) Validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"toc rows per page", p.TOCRowsPerPage},
		{"week planner rows per page", p.WeekRowsPerPage},
		{"goals columns", p.GoalsColumns},
		{"goals rows", p.GoalsRows},
		{"backlog pages", p.BacklogPages},
		{"backlog rows", p.BacklogRows},
		{"daily spread rows", p.DailyRows},
		{"terms pages", p.TermsPages},
		{"terms rows", p.TermsRows},
		{"graph paper sheets", p.GraphPaperSheets},
		{"graph columns", p.GraphColumns},
		{"graph rows", p.GraphRows},
	}
	for _, c := range checks {
		if c.v < 1 {
			return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalidSection, c.name, c.v)
		}
	}
	for _, g := range []struct {
		name string
		v    int
	}{
		{"graph grid grayscale", p.GraphGridGrayscale},
		{"graph border grayscale", p.GraphBorderGrayscale},
	} {
		if g.v < 0 || g.v > 100 {
			return fmt.Errorf("%w: %s must be 0-100, got %d", ErrInvalidSection, g.name, g.v)
		}
	}
	if p.SubjectWidthPercent < 10 || p.SubjectWidthPercent > 90 {
		return fmt.Errorf("%w: subject width must be 10-90%%, got %d",
			ErrInvalidSection, p.SubjectWidthPercent)
	}
	return nil
}

// Section identifiers, in document order.
const (
	SectionCover        = "cover"
	SectionInstructions = "instructions"
	SectionCalendar     = "calendar"
	SectionTOC          = "toc"
	SectionGoals        = "goals"
	SectionBacklog      = "backlog"
	SectionWeekPlanner  = "week-planner"
	SectionTerms        = "terms"
	SectionGraphPaper   = "graph-paper"
	SectionRearCover    = "rear-cover"
)

// MonthSectionID returns the identifier of a monthly section.
func MonthSectionID(m time.Month) string {
	return fmt.Sprintf("month-%02d", int(m))
}

// Plan is the ordered section sequence for one generation run together
// with everything page counts depend on: the target year and the
// per-section parameters. All derivations are pure, which is what lets a
// single dry pass produce the final page map.
type Plan struct {
	Year     int
	Params   SectionParams
	Sections []SectionDescriptor
}

// BuildPlan assembles the planner's fixed section sequence for year.
func BuildPlan(year int, params SectionParams) (*Plan, error) {
	if err := ValidateYear(year); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	sections := []SectionDescriptor{
		{ID: SectionCover, Title: "Cover", Scope: ScopeUnnumbered, Shape: ShapeFixed, FixedPages: 1},
		{ID: SectionInstructions, Title: "Instructions", Shape: ShapeFixed, FixedPages: 1},
		{ID: SectionCalendar, Title: "Calendar", Shape: ShapeFixed, FixedPages: 2, DoubleSided: true},
		{ID: SectionTOC, Title: "Table of Contents", Shape: ShapeTOC, DoubleSided: true, ForceFront: true},
		{ID: SectionGoals, Title: "Goals", Scope: ScopeNumbered, NumberFrom: 1, Shape: ShapeFixed, FixedPages: 2, ForceFront: true},
		{ID: SectionBacklog, Title: "Backlog", Shape: ShapeFixed, FixedPages: params.BacklogPages, DoubleSided: true},
		{ID: SectionWeekPlanner, Title: "Week Planner", Shape: ShapeWeekRows, DoubleSided: true},
	}
	for m := time.January; m <= time.December; m++ {
		sections = append(sections, SectionDescriptor{
			ID:          MonthSectionID(m),
			Title:       m.String(),
			Shape:       ShapeMonth,
			Month:       m,
			DoubleSided: true,
			ForceFront:  true,
		})
	}
	sections = append(sections,
		SectionDescriptor{ID: SectionTerms, Title: "Terms and Definitions", Shape: ShapeFixed, FixedPages: params.TermsPages, DoubleSided: true},
		SectionDescriptor{ID: SectionGraphPaper, Title: "Graph Paper", Shape: ShapeFixed, FixedPages: 2 * params.GraphPaperSheets, ForceFront: true},
		SectionDescriptor{ID: SectionRearCover, Title: "Rear Cover", Scope: ScopeUnnumbered, Shape: ShapeFixed, FixedPages: 2, ForceFront: true},
	)

	return &Plan{Year: year, Params: params, Sections: sections}, nil
}

// PageCountFor returns the number of physical pages the section consumes,
// excluding any alignment blank inserted before it. The result is a pure
// function of the plan's year and parameters; no section may allocate
// pages contingent on the generated appearance of another.
func (p *Plan) PageCountFor(sec SectionDescriptor) (int, error) {
	switch sec.Shape {
	case ShapeFixed:
		if sec.FixedPages < 1 {
			return 0, fmt.Errorf("%w: section %q has zero fixed page count", ErrInvalidSection, sec.ID)
		}
		return sec.FixedPages, nil

	case ShapeWeekRows:
		return ceilDiv(WeeksInYear(p.Year), p.Params.WeekRowsPerPage), nil

	case ShapeMonth:
		days, err := DaysInMonth(p.Year, sec.Month)
		if err != nil {
			return 0, err
		}
		sides := ceilDiv(days, 2)
		pad := 0
		if sides%2 == 1 {
			// Daily spreads always end on a verso so the next month's
			// cover lands on a recto.
			pad = 1
		}
		return 2 + sides + pad, nil

	case ShapeTOC:
		rows, err := p.tocRowCount()
		if err != nil {
			return 0, err
		}
		return ceilDiv(rows, p.Params.TOCRowsPerPage), nil
	}

	return 0, fmt.Errorf("%w: section %q shape %d", ErrUnknownShape, sec.ID, sec.Shape)
}

// PageRows returns, per physical page of the section, the TOC rows that
// page contributes. Page numbers are zero here; the resolver fills them
// in during the dry pass. Unnumbered sections contribute no rows.
func (p *Plan) PageRows(sec SectionDescriptor) ([][]TOCRow, error) {
	switch sec.ID {
	case SectionGoals:
		return [][]TOCRow{
			{{Label: "Goals", Shading: ShadingSection}},
			{{Label: ""}}, // blank verso, numbered but empty
		}, nil

	case SectionBacklog:
		return enumeratedPages("Backlog", p.Params.BacklogPages), nil

	case SectionWeekPlanner:
		return p.weekPlannerRows()

	case SectionTerms:
		return enumeratedPages("Terms and Definitions", p.Params.TermsPages), nil

	case SectionGraphPaper:
		pages := make([][]TOCRow, 0, 2*p.Params.GraphPaperSheets)
		for i := 1; i <= p.Params.GraphPaperSheets; i++ {
			shading := ShadingNone
			if i == 1 {
				shading = ShadingSection
			}
			label := fmt.Sprintf("Graph Paper (%d/%d)", i, p.Params.GraphPaperSheets)
			pages = append(pages, []TOCRow{{Label: label, Shading: shading}})
			pages = append(pages, []TOCRow{{Label: ""}}) // blank verso
		}
		return pages, nil
	}

	if sec.Shape == ShapeMonth {
		return p.monthRows(sec)
	}

	// Sections in unnumbered scopes (cover, instructions, calendar, the
	// TOC itself, rear cover) are not listed.
	count, err := p.PageCountFor(sec)
	if err != nil {
		return nil, err
	}
	return make([][]TOCRow, count), nil
}

// weekPlannerRows builds one row per week planner page, highlighting the
// first page and pages where a month begins.
func (p *Plan) weekPlannerRows() ([][]TOCRow, error) {
	weeks := WeeksInYear(p.Year)
	perPage := p.Params.WeekRowsPerPage
	firstWeeks, err := FirstWeeksOfMonths(p.Year)
	if err != nil {
		return nil, err
	}

	pages := make([][]TOCRow, 0, ceilDiv(weeks, perPage))
	for start := 1; start <= weeks; start += perPage {
		end := min(start+perPage-1, weeks)

		shading := ShadingNone
		switch {
		case start == 1:
			shading = ShadingSection
		case anyWeekIn(firstWeeks, start, end):
			shading = ShadingFirstItem
		}

		label := fmt.Sprintf("Week Planner (Weeks %d-%d)", start, end)
		pages = append(pages, []TOCRow{{Label: label, Shading: shading}})
	}
	return pages, nil
}

// monthRows builds the rows of one monthly section: the cover, its blank
// verso, two day rows per spread page, and the padding verso when the
// spread would otherwise end on a recto.
func (p *Plan) monthRows(sec SectionDescriptor) ([][]TOCRow, error) {
	days, err := DaysInMonth(p.Year, sec.Month)
	if err != nil {
		return nil, err
	}

	pages := [][]TOCRow{
		{{Label: sec.Month.String(), Shading: ShadingSection}},
		{{Label: ""}}, // blank verso after the cover
	}

	for day := 1; day <= days; day += 2 {
		rows := []TOCRow{dayRow(p.Year, sec.Month, day)}
		if day+1 <= days {
			rows = append(rows, dayRow(p.Year, sec.Month, day+1))
		}
		pages = append(pages, rows)
	}

	if ceilDiv(days, 2)%2 == 1 {
		pages = append(pages, []TOCRow{{Label: ""}}) // padding verso
	}
	return pages, nil
}

// dayRow builds the TOC row for one day, shading weekends.
func dayRow(year int, month time.Month, day int) TOCRow {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	shading := ShadingNone
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		shading = ShadingFirstItem
	}
	return TOCRow{Label: FormatDayLabel(d), Shading: shading}
}

// tocRowCount counts every TOC row across the numbered sections. The TOC
// sizes itself from this count, which depends only on configuration and
// calendar facts, never on emitted content.
func (p *Plan) tocRowCount() (int, error) {
	total := 0
	numbered := false
	for _, sec := range p.Sections {
		switch sec.Scope {
		case ScopeNumbered:
			numbered = true
		case ScopeUnnumbered:
			numbered = false
		}
		if !numbered {
			continue
		}
		pages, err := p.PageRows(sec)
		if err != nil {
			return 0, err
		}
		for _, rows := range pages {
			total += len(rows)
		}
	}
	return total, nil
}

// enumeratedPages builds "Label (i/n)" rows, one per page, shading the first.
func enumeratedPages(label string, n int) [][]TOCRow {
	pages := make([][]TOCRow, 0, n)
	for i := 1; i <= n; i++ {
		shading := ShadingNone
		if i == 1 {
			shading = ShadingSection
		}
		pages = append(pages, []TOCRow{{
			Label:   fmt.Sprintf("%s (%d/%d)", label, i, n),
			Shading: shading,
		}})
	}
	return pages
}

func anyWeekIn(set map[int]bool, start, end int) bool {
	for w := start; w <= end; w++ {
		if set[w] {
			return true
		}
	}
	return false
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
