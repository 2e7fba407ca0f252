package main

import (
	"fmt"
	"os"

	yearplanner "github.com/rohingosling/yearplanner"
	"github.com/rohingosling/yearplanner/internal/config"
)

// inputFromConfig maps the loaded YAML config onto a library Input for
// one year. Zero-valued config sections keep the library defaults; only
// explicitly set values override them.
func inputFromConfig(cfg *config.Config, year int, htmlOnly bool) (yearplanner.Input, error) {
	in := yearplanner.Input{
		Year:     year,
		Title:    cfg.Document.Title,
		Version:  cfg.Document.Version,
		HTMLOnly: htmlOnly || cfg.Output.HTMLOnly,
	}

	if cfg.Page != (config.PageConfig{}) {
		in.Page = yearplanner.PageGeometry{
			Width:              cfg.Page.Width,
			Height:             cfg.Page.Height,
			MarginTop:          cfg.Page.MarginTop,
			MarginBottom:       cfg.Page.MarginBottom,
			MarginLeft:         cfg.Page.MarginLeft,
			MarginRight:        cfg.Page.MarginRight,
			Gutter:             cfg.Page.Gutter,
			PageNumberPosition: cfg.Page.PageNumberPosition,
		}
	}

	if cfg.Table != (config.TableConfig{}) {
		in.Style = tableStyle(cfg.Table)
	}

	if cfg.Sections != (config.SectionsConfig{}) {
		in.Sections = sectionParams(cfg.Sections)
	}

	in.ContactFields = cfg.Cover.ContactFields

	var err error
	if in.InstructionsMarkdown, err = readContent(cfg.Content.InstructionsPath); err != nil {
		return yearplanner.Input{}, err
	}
	if in.TermsMarkdown, err = readContent(cfg.Content.TermsPath); err != nil {
		return yearplanner.Input{}, err
	}

	return in, nil
}

// tableStyle overlays explicitly set style values on the defaults.
func tableStyle(t config.TableConfig) yearplanner.TableStyle {
	s := yearplanner.DefaultTableStyle()

	if t.Border != (config.BorderConfig{}) {
		s.Border = yearplanner.BorderStyle{
			ThicknessPt: t.Border.Thickness,
			Grayscale:   t.Border.Grayscale,
		}
	}
	if t.TitleRow != (config.RowConfig{}) {
		s.TitleRow = rowStyle(t.TitleRow)
	}
	if t.HeaderRow != (config.RowConfig{}) {
		s.HeaderRow = rowStyle(t.HeaderRow)
	}
	if t.ContentRow != (config.ContentRowConfig{}) {
		s.ContentRow = yearplanner.ContentRowStyle{
			FontSizePt:    t.ContentRow.FontSize,
			FontGrayscale: t.ContentRow.FontGrayscale,
			Italic:        t.ContentRow.Italic,
		}
	}
	if t.SectionGrayscale != 0 {
		s.SectionGrayscale = t.SectionGrayscale
	}
	if t.FirstItemGrayscale != 0 {
		s.FirstItemGrayscale = t.FirstItemGrayscale
	}
	if t.MinRowHeight != 0 {
		s.MinRowHeightPt = t.MinRowHeight
	}
	return s
}

func rowStyle(r config.RowConfig) yearplanner.RowStyle {
	return yearplanner.RowStyle{
		HeightPt:            r.Height,
		BackgroundGrayscale: r.BackgroundGrayscale,
		FontSizePt:          r.FontSize,
		FontGrayscale:       r.FontGrayscale,
	}
}

// sectionParams overlays explicitly set section sizes on the defaults.
func sectionParams(sc config.SectionsConfig) yearplanner.SectionParams {
	p := yearplanner.DefaultSectionParams()

	setIf(&p.TOCRowsPerPage, sc.TOC.RowsPerPage)
	setIf(&p.WeekRowsPerPage, sc.WeekPlanner.RowsPerPage)
	setIf(&p.GoalsColumns, sc.Goals.Columns)
	setIf(&p.GoalsRows, sc.Goals.Rows)
	setIf(&p.BacklogPages, sc.Backlog.Pages)
	setIf(&p.BacklogRows, sc.Backlog.Rows)
	setIf(&p.DailyRows, sc.DailySpread.Rows)
	setIf(&p.SubjectWidthPercent, sc.DailySpread.SubjectWidthPercent)
	setIf(&p.TermsPages, sc.Terms.Pages)
	setIf(&p.TermsRows, sc.Terms.Rows)
	setIf(&p.GraphPaperSheets, sc.GraphPaper.Sheets)
	setIf(&p.GraphColumns, sc.GraphPaper.Columns)
	setIf(&p.GraphRows, sc.GraphPaper.Rows)
	setIf(&p.GraphGridGrayscale, sc.GraphPaper.GridGrayscale)
	setIf(&p.GraphBorderGrayscale, sc.GraphPaper.BorderGrayscale)

	return p
}

func setIf(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

// readContent loads a Markdown override file; an empty path keeps the
// built-in content.
func readContent(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- content path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrReadContent, path, err)
	}
	return string(data), nil
}
