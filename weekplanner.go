package yearplanner

import (
	"fmt"
	"strconv"
)

// emitWeekPlanner renders one row per ISO week across as many pages as
// the year needs. Columns are a narrow week number, the months the week
// touches, and two ruled notes columns. Rows on the first week of each
// month are shaded; the final page keeps the full grid with the
// remainder left blank.
func (c *composer) emitWeekPlanner(entries []PageMapEntry) error {
	blanks, content := splitBlanks(entries)
	for _, e := range blanks {
		c.emitBlankPage(e)
	}

	perPage := c.in.Sections.WeekRowsPerPage
	if want := ceilDiv(len(c.weeks), perPage); len(content) != want {
		return fmt.Errorf("%w: week planner expected %d pages for %d weeks, page map has %d",
			ErrCalendarLogic, want, len(c.weeks), len(content))
	}

	firstWeeks, err := FirstWeeksOfMonths(c.in.Year)
	if err != nil {
		return err
	}

	for i, e := range content {
		area := c.contentArea(e)
		plan := c.solveRows(SectionWeekPlanner, fmt.Sprintf("week-planner-%d", i+1),
			area.Height, c.fixedRowTwips(true), perPage)

		c.openPage(e)
		c.beginFillTable([]float64{8, 20, 36, 36})
		c.titleRow("Week Planner", 4)
		fmt.Fprintf(&c.b, "<tr style=\"%s\"><th class=\"header\">Week</th><th class=\"header\">Month</th><th class=\"header\" colspan=\"2\">Notes</th></tr>\n",
			rowHeightStyle(PointsToTwips(c.in.Style.HeaderRow.HeightPt)))
		for j := 0; j < perPage; j++ {
			idx := i*perPage + j
			if idx >= len(c.weeks) {
				c.contentRow(plan.RowHeight, make([]tableCell, 4))
				continue
			}
			week := c.weeks[idx]

			shading := ShadingNone
			if firstWeeks[week.Week] {
				shading = ShadingFirstItem
			}
			months := ""
			for k, m := range week.Months() {
				if k > 0 {
					months += " / "
				}
				months += m.String()
			}
			c.contentRow(plan.RowHeight, []tableCell{
				{Text: strconv.Itoa(week.Week), Align: "center", Shading: shading},
				{Text: months, Shading: shading},
				{},
				{},
			})
		}
		c.endTable()
		c.closePage(e)
	}
	return nil
}
