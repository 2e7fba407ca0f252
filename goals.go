package yearplanner

import "fmt"

// emitGoals renders the goals page and its blank verso. Logical page
// numbering starts here, so the verso stays numbered even though it
// carries no table.
func (c *composer) emitGoals(entries []PageMapEntry) error {
	blanks, content := splitBlanks(entries)
	for _, e := range blanks {
		c.emitBlankPage(e)
	}
	if len(content) != 2 {
		return fmt.Errorf("%w: goals expected 2 pages, page map has %d", ErrCalendarLogic, len(content))
	}

	e := content[0]
	area := c.contentArea(e)
	cols := c.in.Sections.GoalsColumns
	plan := c.solveRows(SectionGoals, "goals", area.Height, c.fixedRowTwips(true), c.in.Sections.GoalsRows)

	widths := make([]float64, cols)
	for i := range widths {
		widths[i] = 100.0 / float64(cols)
	}
	labels := make([]string, cols)
	for i := range labels {
		labels[i] = fmt.Sprintf("Goal %c", 'A'+i)
	}
	if cols == 2 {
		labels = []string{"Goal", "Measure of Success"}
		widths = []float64{50, 50}
	}

	c.openPage(e)
	c.beginFillTable(widths)
	c.titleRow(fmt.Sprintf("Goals %d", c.in.Year), cols)
	c.headerRow(labels)
	for i := 0; i < c.in.Sections.GoalsRows; i++ {
		c.contentRow(plan.RowHeight, make([]tableCell, cols))
	}
	c.endTable()
	c.closePage(e)

	c.emitBlankPage(content[1])
	return nil
}
