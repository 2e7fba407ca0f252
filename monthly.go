package yearplanner

import (
	"fmt"
	"html"
	"time"
)

// dailyTableGapCm separates the two day tables on a spread page.
const dailyTableGapCm = 0.5

// emitMonth renders one monthly section: the month cover on a recto,
// its blank verso, then spread pages carrying two day tables each, and
// a padding verso when the spreads would otherwise end on a recto.
func (c *composer) emitMonth(sec SectionDescriptor, entries []PageMapEntry) error {
	days, err := DaysInMonth(c.in.Year, sec.Month)
	if err != nil {
		return err
	}

	blanks, content := splitBlanks(entries)
	for _, e := range blanks {
		c.emitBlankPage(e)
	}

	spreads := ceilDiv(days, 2)
	want := 2 + spreads + spreads%2
	if len(content) != want {
		return fmt.Errorf("%w: %s expected %d pages, page map has %d",
			ErrCalendarLogic, sec.Month, want, len(content))
	}

	cover := content[0]
	c.openPage(cover)
	fmt.Fprintf(&c.b, "<div class=\"month-cover\">%s</div>\n", html.EscapeString(sec.Month.String()))
	fmt.Fprintf(&c.b, "<div class=\"cover-sub\">%d</div>\n", c.in.Year)
	c.closePage(cover)

	c.emitBlankPage(content[1])

	for i := 0; i < spreads; i++ {
		e := content[2+i]
		first := i*2 + 1
		c.emitSpreadPage(sec.Month, e, first, days)
	}

	if spreads%2 == 1 {
		c.emitBlankPage(content[len(content)-1])
	}
	return nil
}

// emitSpreadPage renders one spread page holding the day table for
// firstDay and, when the month has one, the following day underneath.
func (c *composer) emitSpreadPage(month time.Month, e PageMapEntry, firstDay, days int) {
	area := c.contentArea(e)
	perTable := (area.Height - CmToTwips(dailyTableGapCm)) / 2

	c.openPage(e)
	c.emitDayTable(month, firstDay, perTable)
	if firstDay+1 <= days {
		fmt.Fprintf(&c.b, "<div style=\"height:%.2fpt\"></div>\n", TwipsToPoints(CmToTwips(dailyTableGapCm)))
		c.emitDayTable(month, firstDay+1, perTable)
	}
	c.closePage(e)
}

// emitDayTable renders one day's table into a half-page slot: the day
// label as title, a Subject and Description header, and ruled rows.
func (c *composer) emitDayTable(month time.Month, day, heightTwips int) {
	label := FormatDayLabel(time.Date(c.in.Year, month, day, 0, 0, 0, 0, time.UTC))
	plan := c.solveRows(MonthSectionID(month), fmt.Sprintf("day-%02d", day),
		heightTwips, c.fixedRowTwips(true), c.in.Sections.DailyRows)

	subject := float64(c.in.Sections.SubjectWidthPercent)
	fmt.Fprintf(&c.b, "<table class=\"fill\" style=\"height:%.2fpt\">\n<colgroup><col style=\"width:%.2f%%\"/><col style=\"width:%.2f%%\"/></colgroup>\n",
		TwipsToPoints(heightTwips), subject, 100-subject)
	c.titleRow(label, 2)
	c.headerRow([]string{"Subject", "Description"})
	for i := 0; i < c.in.Sections.DailyRows; i++ {
		c.contentRow(plan.RowHeight, make([]tableCell, 2))
	}
	c.endTable()
}
