package yearplanner

import "fmt"

// Unit conversion constants. The internal layout unit is the twip
// (1/20 point), which keeps all row height arithmetic in integers.
// 1 inch = 1440 twips and 1 inch = 2.54 cm, so 1 cm ≈ 566.93 twips.
const (
	TwipsPerPoint = 20
	TwipsPerCm    = 1440.0 / 2.54
)

// CmToTwips converts centimeters to whole twips (truncated).
func CmToTwips(cm float64) int {
	return int(cm * TwipsPerCm)
}

// PointsToTwips converts points to whole twips (truncated).
func PointsToTwips(pt float64) int {
	return int(pt * TwipsPerPoint)
}

// TwipsToPoints converts twips back to points for CSS output.
func TwipsToPoints(twips int) float64 {
	return float64(twips) / TwipsPerPoint
}

// Side identifies which face of a duplex-printed sheet a page lands on.
type Side int

const (
	// SideFront is the recto (right-hand, odd) face.
	SideFront Side = iota
	// SideBack is the verso (left-hand, even) face.
	SideBack
)

// String returns "front" or "back".
func (s Side) String() string {
	if s == SideBack {
		return "back"
	}
	return "front"
}

// Flip returns the opposite side.
func (s Side) Flip() Side {
	if s == SideFront {
		return SideBack
	}
	return SideFront
}

// PageGeometry describes the physical page and its margins, all in
// centimeters. The gutter is the extra binding-side allowance that
// alternates between recto and verso pages.
type PageGeometry struct {
	Width  float64
	Height float64

	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64

	Gutter float64

	// PageNumberPosition is the footer distance from the bottom edge.
	PageNumberPosition float64
}

// DefaultPageGeometry returns A4 portrait geometry with 1.5 cm margins
// and a 1 cm binding gutter.
func DefaultPageGeometry() PageGeometry {
	return PageGeometry{
		Width:              21.0,
		Height:             29.7,
		MarginTop:          1.5,
		MarginBottom:       1.5,
		MarginLeft:         1.5,
		MarginRight:        1.5,
		Gutter:             1.0,
		PageNumberPosition: 0.8,
	}
}

// ContentArea holds the usable content dimensions of one page side, in twips.
type ContentArea struct {
	Width  int
	Height int
}

// Validate checks that the geometry yields a strictly positive content
// area on both sides. A violation is a configuration error, never a
// runtime fallback.
func (g PageGeometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: page size %.2fx%.2f cm", ErrInvalidGeometry, g.Width, g.Height)
	}
	if g.MarginTop < 0 || g.MarginBottom < 0 || g.MarginLeft < 0 || g.MarginRight < 0 {
		return fmt.Errorf("%w: margins must be >= 0", ErrInvalidGeometry)
	}
	if g.Gutter < 0 {
		return fmt.Errorf("%w: gutter must be >= 0", ErrInvalidGeometry)
	}
	if g.PageNumberPosition < 0 {
		return fmt.Errorf("%w: page number position must be >= 0", ErrInvalidGeometry)
	}
	for _, side := range []Side{SideFront, SideBack} {
		if _, err := g.ContentAreaFor(side); err != nil {
			return err
		}
	}
	return nil
}

// ContentAreaFor returns the usable content dimensions for one page side.
// On the front (recto) the gutter widens the left margin, on the back
// (verso) it widens the right margin, so front and back content widths
// are always equal (mirrored-margin duplex binding).
func (g PageGeometry) ContentAreaFor(side Side) (ContentArea, error) {
	left, right := g.MarginLeft, g.MarginRight
	if side == SideFront {
		left += g.Gutter
	} else {
		right += g.Gutter
	}

	width := g.Width - left - right
	height := g.Height - g.MarginTop - g.MarginBottom
	if width <= 0 || height <= 0 {
		return ContentArea{}, fmt.Errorf("%w: %s side yields %.2fx%.2f cm",
			ErrNonPositiveExtent, side, width, height)
	}

	return ContentArea{Width: CmToTwips(width), Height: CmToTwips(height)}, nil
}

// PagePadding returns the CSS padding for one page side as
// top, right, bottom, left in centimeters.
func (g PageGeometry) PagePadding(side Side) (top, right, bottom, left float64) {
	left, right = g.MarginLeft, g.MarginRight
	if side == SideFront {
		left += g.Gutter
	} else {
		right += g.Gutter
	}
	return g.MarginTop, right, g.MarginBottom, left
}
