package yearplanner

import (
	"fmt"
	"strings"
)

// defaultFontFamily is the font stack for all generated content.
const defaultFontFamily = `"Times New Roman", serif`

// grayscaleToHex converts a grayscale percentage (0=white, 100=black) to
// a CSS hex color.
func grayscaleToHex(grayscale int) string {
	if grayscale < 0 {
		grayscale = 0
	}
	if grayscale > 100 {
		grayscale = 100
	}
	v := int(255 * (100 - grayscale) / 100)
	return fmt.Sprintf("#%02X%02X%02X", v, v, v)
}

// buildBaseCSS generates the document stylesheet: zero-margin paper, one
// fixed-size box per physical page with mirrored padding per duplex side,
// footers positioned at the configured distance from the bottom edge, and
// the shared table defaults. All margins live in the page boxes, so
// Chrome prints with zero margins of its own.
func buildBaseCSS(geo PageGeometry, style TableStyle) string {
	var b strings.Builder

	fTop, fRight, fBottom, fLeft := geo.PagePadding(SideFront)
	bTop, bRight, bBottom, bLeft := geo.PagePadding(SideBack)
	borderColor := grayscaleToHex(style.Border.Grayscale)

	fmt.Fprintf(&b, `
@page {
  size: %.2fcm %.2fcm;
  margin: 0;
}
html, body {
  margin: 0;
  padding: 0;
  font-family: %s;
}
.page {
  position: relative;
  box-sizing: border-box;
  overflow: hidden;
  width: %.2fcm;
  height: %.2fcm;
  page-break-after: always;
  break-after: page;
}
.page.front { padding: %.2fcm %.2fcm %.2fcm %.2fcm; }
.page.back  { padding: %.2fcm %.2fcm %.2fcm %.2fcm; }
`,
		geo.Width, geo.Height,
		defaultFontFamily,
		geo.Width, geo.Height,
		fTop, fRight, fBottom, fLeft,
		bTop, bRight, bBottom, bLeft,
	)

	fmt.Fprintf(&b, `
.footer {
  position: absolute;
  bottom: %.2fcm;
  font-size: 10pt;
}
.page.front .footer { right: %.2fcm; text-align: right; }
.page.back  .footer { left: %.2fcm; text-align: left; }
`,
		geo.PageNumberPosition,
		geo.MarginRight,
		geo.MarginLeft,
	)

	fmt.Fprintf(&b, `
table.fill {
  width: 100%%;
  border-collapse: collapse;
  table-layout: fixed;
}
table.fill td, table.fill th {
  border: %.2fpt solid %s;
  padding: 0 4pt;
  overflow: hidden;
  white-space: nowrap;
}
td.title {
  background: %s;
  color: %s;
  font-size: %.1fpt;
  font-weight: bold;
  text-align: center;
  vertical-align: middle;
}
th.header {
  background: %s;
  color: %s;
  font-size: %.1fpt;
  font-weight: bold;
  text-align: center;
  vertical-align: middle;
}
td.content {
  font-size: %.1fpt;
  color: %s;
  vertical-align: middle;
}
`,
		style.Border.ThicknessPt, borderColor,
		grayscaleToHex(style.TitleRow.BackgroundGrayscale),
		grayscaleToHex(style.TitleRow.FontGrayscale),
		style.TitleRow.FontSizePt,
		grayscaleToHex(style.HeaderRow.BackgroundGrayscale),
		grayscaleToHex(style.HeaderRow.FontGrayscale),
		style.HeaderRow.FontSizePt,
		style.ContentRow.FontSizePt,
		grayscaleToHex(style.ContentRow.FontGrayscale),
	)

	if style.ContentRow.Italic {
		b.WriteString("td.content { font-style: italic; }\n")
	}

	fmt.Fprintf(&b, `
td.shade-section { background: %s; }
td.shade-first { background: %s; }
.cover-title { text-align: center; font-size: 36pt; font-weight: bold; }
.cover-sub { text-align: center; font-size: 14pt; }
table.contact { width: 60%%; margin: 12pt auto 0 auto; border-collapse: collapse; }
table.contact td { border-bottom: 0.5pt solid #000000; height: 22pt; font-size: 11pt; vertical-align: bottom; }
td.contact-label { width: 30%%; text-align: right; padding-right: 8pt; font-weight: bold; border-bottom: none; }
.month-cover { text-align: center; font-size: 36pt; font-weight: bold; padding-top: 33%%; }
.md-body { font-size: 11pt; }
table.mini-month { width: 100%%; border-collapse: collapse; margin-top: 4pt; }
table.mini-month td { border: none; text-align: center; font-size: 8pt; font-style: normal; }
td.mini-name { background: %s; font-weight: bold; font-size: 9pt; }
td.mini-wd { font-weight: bold; }
td.mini-weekend { background: %s; }
`,
		grayscaleToHex(style.SectionGrayscale),
		grayscaleToHex(style.FirstItemGrayscale),
		grayscaleToHex(style.HeaderRow.BackgroundGrayscale),
		grayscaleToHex(style.FirstItemGrayscale),
	)

	return b.String()
}

// buildGridCSS generates the graph paper grid: a square cell pattern
// drawn with repeating gradients, replacing pre-rendered raster images.
// cellPt is the cell edge length in points.
func buildGridCSS(cellPt float64, gridGrayscale, borderGrayscale int) string {
	gridColor := grayscaleToHex(gridGrayscale)
	borderColor := grayscaleToHex(borderGrayscale)

	return fmt.Sprintf(`
.grid-paper {
  width: 100%%;
  height: 100%%;
  box-sizing: border-box;
  border: 0.75pt solid %s;
  background-image:
    repeating-linear-gradient(to right, %s 0, %s 0.5pt, transparent 0.5pt, transparent %.3fpt),
    repeating-linear-gradient(to bottom, %s 0, %s 0.5pt, transparent 0.5pt, transparent %.3fpt);
}
`, borderColor, gridColor, gridColor, cellPt, gridColor, gridColor, cellPt)
}
