package yearplanner

import (
	"fmt"
	"html"
)

// emitCover renders the front cover: the planner title, year, and
// version, with the owner contact table underneath so a found planner
// can make its way home.
func (c *composer) emitCover(entries []PageMapEntry) error {
	blanks, content := splitBlanks(entries)
	for _, e := range blanks {
		c.emitBlankPage(e)
	}
	if len(content) != 1 {
		return fmt.Errorf("%w: cover expected 1 page, page map has %d", ErrCalendarLogic, len(content))
	}

	e := content[0]
	c.openPage(e)

	fmt.Fprintf(&c.b, "<div class=\"cover-title\" style=\"padding-top:18%%\">%s</div>\n",
		html.EscapeString(c.in.Title))
	fmt.Fprintf(&c.b, "<div class=\"cover-title\">%d</div>\n", c.in.Year)
	if c.in.Version != "" {
		fmt.Fprintf(&c.b, "<div class=\"cover-sub\">Version %s</div>\n", html.EscapeString(c.in.Version))
	}

	c.b.WriteString("<div class=\"cover-sub\" style=\"padding-top:22%\">If found, please contact:</div>\n")
	c.b.WriteString("<table class=\"contact\">\n")
	for _, field := range c.in.ContactFields {
		fmt.Fprintf(&c.b, "<tr><td class=\"contact-label\">%s</td><td class=\"contact-value\"></td></tr>\n",
			html.EscapeString(field))
	}
	c.b.WriteString("</table>\n")

	c.closePage(e)
	return nil
}

// emitRearCover renders the two unnumbered closing pages: a blank verso
// buffer and the back cover imprint.
func (c *composer) emitRearCover(entries []PageMapEntry) error {
	blanks, content := splitBlanks(entries)
	for _, e := range blanks {
		c.emitBlankPage(e)
	}
	if len(content) != 2 {
		return fmt.Errorf("%w: rear cover expected 2 pages, page map has %d", ErrCalendarLogic, len(content))
	}

	c.emitBlankPage(content[0])

	e := content[1]
	c.openPage(e)
	fmt.Fprintf(&c.b, "<div class=\"cover-sub\" style=\"padding-top:80%%\">%s</div>\n",
		html.EscapeString(c.in.Title))
	if c.in.Version != "" {
		fmt.Fprintf(&c.b, "<div class=\"cover-sub\">Version %s</div>\n", html.EscapeString(c.in.Version))
	}
	c.closePage(e)
	return nil
}
