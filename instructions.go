package yearplanner

import (
	"context"
	"fmt"
)

// defaultInstructions is the built-in usage guide, shown when the caller
// supplies no Markdown of their own. It lands on the back of the cover.
const defaultInstructions = `# How to Use This Planner

## Structure

The planner opens with a two year calendar and a table of contents,
followed by the working sections:

- **Goals** lists the outcomes you are planning the year around.
- **Backlog** collects undated items until they are scheduled.
- **Week Planner** gives one row per ISO week for coarse scheduling.
- **Monthly sections** provide a two day spread per page for detail work.
- **Terms and Definitions** holds shared vocabulary.
- **Graph Paper** is free sketching space at the back.

## Conventions

Week numbering follows ISO 8601 throughout, so a year has 52 or 53
weeks and week 1 is the week containing January 4th. Shaded rows in the
table of contents mark section starts and month boundaries.

Page numbers start at 1 on the Goals page. The covers and this page are
not numbered.
`

// emitInstructions renders the usage guide from Markdown onto the back
// of the cover sheet.
func (c *composer) emitInstructions(ctx context.Context, entries []PageMapEntry) error {
	blanks, content := splitBlanks(entries)
	for _, e := range blanks {
		c.emitBlankPage(e)
	}
	if len(content) != 1 {
		return fmt.Errorf("%w: instructions expected 1 page, page map has %d", ErrCalendarLogic, len(content))
	}

	source := c.in.InstructionsMarkdown
	if source == "" {
		source = defaultInstructions
	}
	body, err := c.md.ToHTML(ctx, source)
	if err != nil {
		return err
	}

	e := content[0]
	c.openPage(e)
	fmt.Fprintf(&c.b, "<div class=\"md-body\">%s</div>\n", body)
	c.closePage(e)
	return nil
}
