package yearplanner

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// emitCalendar renders the two year-at-a-glance pages: the target year
// on the recto and the following year on its verso, each as a six by
// two grid of mini month calendars.
func (c *composer) emitCalendar(entries []PageMapEntry) error {
	blanks, content := splitBlanks(entries)
	for _, e := range blanks {
		c.emitBlankPage(e)
	}
	if len(content) != 2 {
		return fmt.Errorf("%w: calendar expected 2 pages, page map has %d", ErrCalendarLogic, len(content))
	}

	for i, e := range content {
		year := c.in.Year + i
		area := c.contentArea(e)
		plan := c.solveRows(SectionCalendar, fmt.Sprintf("calendar-%d", year),
			area.Height, c.fixedRowTwips(false), 6)

		c.openPage(e)
		c.beginFillTable([]float64{50, 50})
		c.titleRow(fmt.Sprintf("Calendar %d", year), 2)
		for row := 0; row < 6; row++ {
			fmt.Fprintf(&c.b, "<tr style=\"%s\">", rowHeightStyle(plan.RowHeight))
			for col := 0; col < 2; col++ {
				month := time.Month(row*2 + col + 1)
				fmt.Fprintf(&c.b, "<td class=\"content\" style=\"vertical-align:top\">%s</td>",
					miniMonthHTML(year, month))
			}
			c.b.WriteString("</tr>\n")
		}
		c.endTable()
		c.closePage(e)
	}
	return nil
}

// miniMonthHTML builds one mini month grid: a shaded month name, a
// weekday header starting on Monday, and day cells aligned to weekday
// columns. Weekend columns are the last two.
func miniMonthHTML(year int, month time.Month) string {
	days, err := DaysInMonth(year, month)
	if err != nil {
		// Month comes from a fixed 1..12 loop; out of range is a defect.
		panic(fmt.Sprintf("yearplanner: %v", err))
	}

	var b strings.Builder
	b.WriteString("<table class=\"mini-month\">\n")
	fmt.Fprintf(&b, "<tr><td class=\"mini-name\" colspan=\"7\">%s</td></tr>\n",
		html.EscapeString(month.String()))
	b.WriteString("<tr>")
	for _, wd := range [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		fmt.Fprintf(&b, "<td class=\"mini-wd\">%s</td>", wd)
	}
	b.WriteString("</tr>\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	col := mondayIndex(first.Weekday())

	b.WriteString("<tr>")
	for i := 0; i < col; i++ {
		b.WriteString("<td class=\"mini-day\"></td>")
	}
	for day := 1; day <= days; day++ {
		class := "mini-day"
		if col >= 5 {
			class = "mini-day mini-weekend"
		}
		fmt.Fprintf(&b, "<td class=\"%s\">%d</td>", class, day)
		col++
		if col == 7 {
			b.WriteString("</tr>\n")
			col = 0
			if day < days {
				b.WriteString("<tr>")
			}
		}
	}
	if col > 0 {
		for i := col; i < 7; i++ {
			b.WriteString("<td class=\"mini-day\"></td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
	return b.String()
}

// mondayIndex maps a weekday onto the 0..6 Monday-first column index.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
