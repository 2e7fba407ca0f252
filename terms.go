package yearplanner

import (
	"context"
	"fmt"
)

// defaultTerms seeds the first terms page when the caller supplies no
// Markdown of their own.
const defaultTerms = `Record project and domain vocabulary here as it comes up, one term
per row, so the planner stays readable a year from now.
`

// emitTerms renders the terms and definitions pages: two ruled columns
// under a Term / Definition header. The first page carries a fixed
// height introduction row rendered from Markdown; the solver treats it
// as one more fixed row, so the ruled rows still fill the sheet.
func (c *composer) emitTerms(ctx context.Context, entries []PageMapEntry) error {
	blanks, content := splitBlanks(entries)
	for _, e := range blanks {
		c.emitBlankPage(e)
	}
	if len(content) != c.in.Sections.TermsPages {
		return fmt.Errorf("%w: terms expected %d pages, page map has %d",
			ErrCalendarLogic, c.in.Sections.TermsPages, len(content))
	}

	source := c.in.TermsMarkdown
	if source == "" {
		source = defaultTerms
	}
	intro, err := c.md.ToHTML(ctx, source)
	if err != nil {
		return err
	}

	subject := float64(c.in.Sections.SubjectWidthPercent)
	widths := []float64{subject, 100 - subject}

	for i, e := range content {
		area := c.contentArea(e)
		introTwips := 0
		if i == 0 {
			introTwips = area.Height / 5
		}

		fixed := c.fixedRowTwips(false)
		if introTwips > 0 {
			fixed = append(fixed, introTwips)
		}
		fixed = append(fixed, PointsToTwips(c.in.Style.HeaderRow.HeightPt))

		plan := c.solveRows(SectionTerms, fmt.Sprintf("terms-%d", i+1),
			area.Height, fixed, c.in.Sections.TermsRows)

		c.openPage(e)
		c.beginFillTable(widths)
		c.titleRow(fmt.Sprintf("Terms and Definitions (%d/%d)", i+1, len(content)), 2)
		if introTwips > 0 {
			fmt.Fprintf(&c.b, "<tr style=\"%s\"><td class=\"content\" colspan=\"2\"><div class=\"md-body\">%s</div></td></tr>\n",
				rowHeightStyle(introTwips), intro)
		}
		c.headerRow([]string{"Term / Abbreviation", "Definition"})
		for j := 0; j < c.in.Sections.TermsRows; j++ {
			c.contentRow(plan.RowHeight, make([]tableCell, 2))
		}
		c.endTable()
		c.closePage(e)
	}
	return nil
}
