package yearplanner

import (
	"fmt"
	"html"
	"strconv"
)

// emitTOC renders the table of contents from the frozen page map. Every
// page keeps the full row grid; rows past the last entry stay empty so
// the final page fills the sheet like the rest.
func (c *composer) emitTOC(entries []PageMapEntry) error {
	rows, err := c.resolver.TOCRows()
	if err != nil {
		return err
	}

	blanks, content := splitBlanks(entries)
	for _, e := range blanks {
		c.emitBlankPage(e)
	}

	perPage := c.in.Sections.TOCRowsPerPage
	if want := ceilDiv(len(rows), perPage); len(content) != want {
		return fmt.Errorf("%w: toc expected %d pages for %d rows, page map has %d",
			ErrCalendarLogic, want, len(rows), len(content))
	}

	for i, e := range content {
		area := c.contentArea(e)
		plan := c.solveRows(SectionTOC, fmt.Sprintf("toc-%d", i+1),
			area.Height, c.fixedRowTwips(false), perPage)

		title := "Table of Contents"
		if i > 0 {
			title = fmt.Sprintf("Table of Contents (%d/%d)", i+1, len(content))
		}

		c.openPage(e)
		c.beginFillTable([]float64{92, 8})
		c.titleRow(title, 2)
		for j := 0; j < perPage; j++ {
			idx := i*perPage + j
			if idx >= len(rows) {
				c.contentRow(plan.RowHeight, []tableCell{{}, {}})
				continue
			}
			row := rows[idx]
			page := ""
			if row.Page > 0 && row.Label != "" {
				page = strconv.Itoa(row.Page)
			}
			c.b.WriteString("<tr style=\"" + rowHeightStyle(plan.RowHeight) + "\">")
			c.writeTOCCell(row.Label, row.Shading, "")
			c.writeTOCCell(page, row.Shading, "right")
			c.b.WriteString("</tr>\n")
		}
		c.endTable()
		c.closePage(e)
	}
	return nil
}

func (c *composer) writeTOCCell(text string, shading ShadingLevel, align string) {
	class := "content"
	switch shading {
	case ShadingSection:
		class += " shade-section"
	case ShadingFirstItem:
		class += " shade-first"
	}
	if align != "" {
		fmt.Fprintf(&c.b, "<td class=\"%s\" style=\"text-align:%s\">%s</td>", class, align, html.EscapeString(text))
		return
	}
	fmt.Fprintf(&c.b, "<td class=\"%s\">%s</td>", class, html.EscapeString(text))
}
