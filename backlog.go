package yearplanner

import "fmt"

// emitBacklog renders the backlog pages: a single wide column of ruled
// rows under a title, no header row.
func (c *composer) emitBacklog(entries []PageMapEntry) error {
	blanks, content := splitBlanks(entries)
	for _, e := range blanks {
		c.emitBlankPage(e)
	}
	if len(content) != c.in.Sections.BacklogPages {
		return fmt.Errorf("%w: backlog expected %d pages, page map has %d",
			ErrCalendarLogic, c.in.Sections.BacklogPages, len(content))
	}

	for i, e := range content {
		area := c.contentArea(e)
		plan := c.solveRows(SectionBacklog, fmt.Sprintf("backlog-%d", i+1),
			area.Height, c.fixedRowTwips(false), c.in.Sections.BacklogRows)

		c.openPage(e)
		c.beginFillTable([]float64{100})
		c.titleRow(fmt.Sprintf("Backlog (%d/%d)", i+1, len(content)), 1)
		for j := 0; j < c.in.Sections.BacklogRows; j++ {
			c.contentRow(plan.RowHeight, make([]tableCell, 1))
		}
		c.endTable()
		c.closePage(e)
	}
	return nil
}
