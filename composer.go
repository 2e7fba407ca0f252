package yearplanner

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
)

// composer is the emission pass: it walks the section plan a second time
// and renders every physical page as HTML, guided by the frozen page map
// and by per-table row height plans. It never re-derives page numbers.
type composer struct {
	in       Input
	plan     *Plan
	resolver *TOCResolver
	solver   RowHeightSolver
	diag     *diagnostics
	md       markdownConverter
	weeks    []WeekDescriptor

	b strings.Builder
}

func newComposer(in Input, plan *Plan, resolver *TOCResolver, diag *diagnostics, md markdownConverter) (*composer, error) {
	weeks, err := ISOWeeks(in.Year)
	if err != nil {
		return nil, err
	}
	return &composer{
		in:       in,
		plan:     plan,
		resolver: resolver,
		solver:   RowHeightSolver{MinRowHeight: PointsToTwips(in.Style.MinRowHeightPt)},
		diag:     diag,
		md:       md,
		weeks:    weeks,
	}, nil
}

// compose renders the full document. The resolver must be in the
// Emitting state; the page map is consulted read-only throughout.
func (c *composer) compose(ctx context.Context) (string, error) {
	area, err := c.in.Page.ContentAreaFor(SideFront)
	if err != nil {
		return "", err
	}
	gridCell := TwipsToPoints(area.Width / c.in.Sections.GraphColumns)

	fmt.Fprintf(&c.b, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>%s</title>
<style>%s%s</style>
</head>
<body>
`, html.EscapeString(c.in.Title),
		buildBaseCSS(c.in.Page, c.in.Style),
		buildGridCSS(gridCell, c.in.Sections.GraphGridGrayscale, c.in.Sections.GraphBorderGrayscale))

	for _, sec := range c.plan.Sections {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		entries, err := c.resolver.SectionEntries(sec.ID)
		if err != nil {
			return "", err
		}
		if err := c.emitSection(ctx, sec, entries); err != nil {
			return "", fmt.Errorf("section %q: %w", sec.ID, err)
		}
	}

	c.b.WriteString("</body>\n</html>\n")
	return c.b.String(), nil
}

func (c *composer) emitSection(ctx context.Context, sec SectionDescriptor, entries []PageMapEntry) error {
	switch {
	case sec.ID == SectionCover:
		return c.emitCover(entries)
	case sec.ID == SectionInstructions:
		return c.emitInstructions(ctx, entries)
	case sec.ID == SectionCalendar:
		return c.emitCalendar(entries)
	case sec.ID == SectionTOC:
		return c.emitTOC(entries)
	case sec.ID == SectionGoals:
		return c.emitGoals(entries)
	case sec.ID == SectionBacklog:
		return c.emitBacklog(entries)
	case sec.ID == SectionWeekPlanner:
		return c.emitWeekPlanner(entries)
	case sec.Shape == ShapeMonth:
		return c.emitMonth(sec, entries)
	case sec.ID == SectionTerms:
		return c.emitTerms(ctx, entries)
	case sec.ID == SectionGraphPaper:
		return c.emitGraphPaper(entries)
	case sec.ID == SectionRearCover:
		return c.emitRearCover(entries)
	}
	return fmt.Errorf("%w: no emitter for section %q", ErrUnknownShape, sec.ID)
}

// openPage starts a physical page box with the duplex side class from
// the page map entry.
func (c *composer) openPage(e PageMapEntry) {
	fmt.Fprintf(&c.b, "<div class=\"page %s\" data-physical=\"%d\">\n", e.Side, e.Physical)
}

// closePage emits the footer (logical page number on numbered pages,
// recto bottom-right / verso bottom-left) and closes the box.
func (c *composer) closePage(e PageMapEntry) {
	if e.Logical > 0 {
		fmt.Fprintf(&c.b, "<div class=\"footer\">%d</div>\n", e.Logical)
	}
	c.b.WriteString("</div>\n")
}

// emitBlankPage renders a page with no body content: either an
// alignment blank or a numbered blank verso.
func (c *composer) emitBlankPage(e PageMapEntry) {
	c.openPage(e)
	c.closePage(e)
}

// contentArea returns the usable area for the entry's side. Geometry was
// validated before the run started, so a failure here is a defect.
func (c *composer) contentArea(e PageMapEntry) ContentArea {
	area, err := c.in.Page.ContentAreaFor(e.Side)
	if err != nil {
		panic(fmt.Sprintf("yearplanner: content area vanished mid-run: %v", err))
	}
	return area
}

// solveRows wraps the row height solver with the non-fatal warning
// policy: an infeasible-but-solved plan is recorded as a diagnostic and
// used anyway, since degraded output beats no output.
func (c *composer) solveRows(section, table string, height int, fixed []int, rows int) RowHeightPlan {
	plan, err := c.solver.Solve(height, fixed, rows)
	if err != nil && errors.Is(err, ErrLayoutInfeasible) {
		c.diag.warnf(section, table, err)
	}
	return plan
}

// fixedRowTwips returns the configured title and header row heights.
func (c *composer) fixedRowTwips(withHeader bool) []int {
	fixed := []int{PointsToTwips(c.in.Style.TitleRow.HeightPt)}
	if withHeader {
		fixed = append(fixed, PointsToTwips(c.in.Style.HeaderRow.HeightPt))
	}
	return fixed
}

// beginFillTable opens a page-filling table with fixed column widths in
// percent.
func (c *composer) beginFillTable(colPercents []float64) {
	c.b.WriteString("<table class=\"fill\">\n<colgroup>")
	for _, p := range colPercents {
		fmt.Fprintf(&c.b, "<col style=\"width:%.2f%%\"/>", p)
	}
	c.b.WriteString("</colgroup>\n")
}

func (c *composer) endTable() {
	c.b.WriteString("</table>\n")
}

// titleRow emits the merged title row of a table.
func (c *composer) titleRow(text string, cols int) {
	fmt.Fprintf(&c.b, "<tr style=\"%s\"><td class=\"title\" colspan=\"%d\">%s</td></tr>\n",
		rowHeightStyle(PointsToTwips(c.in.Style.TitleRow.HeightPt)), cols, html.EscapeString(text))
}

// headerRow emits a header row with one cell per column label.
func (c *composer) headerRow(labels []string) {
	fmt.Fprintf(&c.b, "<tr style=\"%s\">", rowHeightStyle(PointsToTwips(c.in.Style.HeaderRow.HeightPt)))
	for _, l := range labels {
		fmt.Fprintf(&c.b, "<th class=\"header\">%s</th>", html.EscapeString(l))
	}
	c.b.WriteString("</tr>\n")
}

// contentRow emits one content row at the solved height. Cells may carry
// a shading class; empty cells stay empty for handwriting.
func (c *composer) contentRow(heightTwips int, cells []tableCell) {
	fmt.Fprintf(&c.b, "<tr style=\"%s\">", rowHeightStyle(heightTwips))
	for _, cell := range cells {
		class := "content"
		switch cell.Shading {
		case ShadingSection:
			class += " shade-section"
		case ShadingFirstItem:
			class += " shade-first"
		}
		if cell.Align != "" {
			fmt.Fprintf(&c.b, "<td class=\"%s\" style=\"text-align:%s\">%s</td>", class, cell.Align, html.EscapeString(cell.Text))
		} else {
			fmt.Fprintf(&c.b, "<td class=\"%s\">%s</td>", class, html.EscapeString(cell.Text))
		}
	}
	c.b.WriteString("</tr>\n")
}

// tableCell is one rendered cell of a content row.
type tableCell struct {
	Text    string
	Align   string // CSS text-align; empty means default
	Shading ShadingLevel
}

// rowHeightStyle renders an exact row height in points.
func rowHeightStyle(twips int) string {
	return fmt.Sprintf("height:%.2fpt", TwipsToPoints(twips))
}

// splitBlanks separates leading alignment blanks from content pages.
func splitBlanks(entries []PageMapEntry) (blanks, content []PageMapEntry) {
	for _, e := range entries {
		if e.Blank {
			blanks = append(blanks, e)
		} else {
			content = append(content, e)
		}
	}
	return blanks, content
}
