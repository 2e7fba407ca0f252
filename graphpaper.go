package yearplanner

import "fmt"

// emitGraphPaper renders the sketching sheets at the back: each sheet
// is a recto covered by the square grid and a blank verso, so the grid
// always prints on the same physical side.
func (c *composer) emitGraphPaper(entries []PageMapEntry) error {
	blanks, content := splitBlanks(entries)
	for _, e := range blanks {
		c.emitBlankPage(e)
	}
	if want := 2 * c.in.Sections.GraphPaperSheets; len(content) != want {
		return fmt.Errorf("%w: graph paper expected %d pages, page map has %d",
			ErrCalendarLogic, want, len(content))
	}

	for i, e := range content {
		if i%2 == 1 {
			c.emitBlankPage(e)
			continue
		}
		c.openPage(e)
		c.b.WriteString("<div class=\"grid-paper\"></div>\n")
		c.closePage(e)
	}
	return nil
}
