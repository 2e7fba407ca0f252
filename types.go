package yearplanner

import (
	"fmt"
	"time"
)

// BorderStyle configures table border lines.
type BorderStyle struct {
	ThicknessPt float64 // line thickness in points
	Grayscale   int     // 0=white, 100=black
}

// RowStyle configures a fixed table row (title or header).
type RowStyle struct {
	HeightPt            float64
	BackgroundGrayscale int
	FontSizePt          float64
	FontGrayscale       int
}

// ContentRowStyle configures variable-height content rows.
type ContentRowStyle struct {
	FontSizePt    float64
	FontGrayscale int
	Italic        bool
}

// TableStyle bundles the table styling shared by every section.
type TableStyle struct {
	Border     BorderStyle
	TitleRow   RowStyle
	HeaderRow  RowStyle
	ContentRow ContentRowStyle

	// SectionGrayscale and FirstItemGrayscale shade TOC rows.
	SectionGrayscale   int
	FirstItemGrayscale int

	// MinRowHeightPt is the legibility threshold for solved content row
	// heights. Zero means the built-in default (6 pt).
	MinRowHeightPt float64
}

// DefaultTableStyle mirrors the reference configuration.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:             BorderStyle{ThicknessPt: 0.5, Grayscale: 100},
		TitleRow:           RowStyle{HeightPt: 24, BackgroundGrayscale: 85, FontSizePt: 12, FontGrayscale: 0},
		HeaderRow:          RowStyle{HeightPt: 18, BackgroundGrayscale: 25, FontSizePt: 10, FontGrayscale: 100},
		ContentRow:         ContentRowStyle{FontSizePt: 9, FontGrayscale: 100, Italic: true},
		SectionGrayscale:   15,
		FirstItemGrayscale: 5,
	}
}

// Validate checks grayscale and dimension bounds.
func (t TableStyle) Validate() error {
	grays := []struct {
		name string
		v    int
	}{
		{"border grayscale", t.Border.Grayscale},
		{"title row background", t.TitleRow.BackgroundGrayscale},
		{"title row font", t.TitleRow.FontGrayscale},
		{"header row background", t.HeaderRow.BackgroundGrayscale},
		{"header row font", t.HeaderRow.FontGrayscale},
		{"content row font", t.ContentRow.FontGrayscale},
		{"toc section shading", t.SectionGrayscale},
		{"toc first item shading", t.FirstItemGrayscale},
	}
	for _, g := range grays {
		if g.v < 0 || g.v > 100 {
			return fmt.Errorf("%w: %s grayscale %d out of range 0-100", ErrInvalidSection, g.name, g.v)
		}
	}
	if t.Border.ThicknessPt <= 0 {
		return fmt.Errorf("%w: border thickness must be > 0", ErrInvalidSection)
	}
	if t.TitleRow.HeightPt <= 0 || t.HeaderRow.HeightPt <= 0 {
		return fmt.Errorf("%w: fixed row heights must be > 0", ErrInvalidSection)
	}
	if t.MinRowHeightPt < 0 {
		return fmt.Errorf("%w: min row height must be >= 0", ErrInvalidSection)
	}
	return nil
}

// Input contains the parameters of one generation run.
type Input struct {
	Year    int    // target planner year (required)
	Title   string // document title shown on the cover
	Version string // document version shown on the cover

	Page     PageGeometry
	Style    TableStyle
	Sections SectionParams

	// InstructionsMarkdown and TermsMarkdown override the built-in
	// Markdown content of the instructions and terms pages.
	InstructionsMarkdown string
	TermsMarkdown        string

	// ContactFields lists the labels of the cover contact table.
	ContactFields []string

	// HTMLOnly skips the Chrome PDF rendering step.
	HTMLOnly bool
}

// withDefaults fills zero-value composite fields from the reference
// configuration so callers only specify what they change.
func (in Input) withDefaults() Input {
	if in.Page == (PageGeometry{}) {
		in.Page = DefaultPageGeometry()
	}
	if in.Style == (TableStyle{}) {
		in.Style = DefaultTableStyle()
	}
	if in.Sections == (SectionParams{}) {
		in.Sections = DefaultSectionParams()
	}
	if in.Title == "" {
		in.Title = fmt.Sprintf("Year Planner %d", in.Year)
	}
	if len(in.ContactFields) == 0 {
		in.ContactFields = []string{"Name", "Email", "Phone"}
	}
	return in
}

// Result is the outcome of one generation run.
type Result struct {
	RunID    string
	HTML     string
	PDF      []byte // nil when Input.HTMLOnly is set
	PageMap  []PageMapEntry
	Warnings []Warning
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("yearplanner: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}
