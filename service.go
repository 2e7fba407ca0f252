package yearplanner

import (
	"context"
	"fmt"
)

// Service orchestrates the planner generation pipeline.
type Service struct {
	cfg          serviceConfig
	md           markdownConverter
	pdfConverter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout},
		md:  newGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Generate runs the full two pass pipeline: the dry pagination pass
// freezes the page map, the emission pass renders HTML against it, and
// headless Chrome prints the PDF unless Input.HTMLOnly is set.
// The context is used for cancellation and timeout.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	input = input.withDefaults()
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	plan, err := BuildPlan(input.Year, input.Sections)
	if err != nil {
		return nil, fmt.Errorf("building section plan: %w", err)
	}

	resolver := NewTOCResolver(plan)
	pageMap, err := resolver.BuildPageMap()
	if err != nil {
		return nil, fmt.Errorf("dry pagination pass: %w", err)
	}

	diag := newDiagnostics()
	comp, err := newComposer(input, plan, resolver, diag, s.md)
	if err != nil {
		return nil, err
	}

	if err := resolver.BeginEmission(); err != nil {
		return nil, err
	}
	htmlContent, err := comp.compose(ctx)
	if err != nil {
		return nil, fmt.Errorf("emission pass: %w", err)
	}
	if err := resolver.FinishEmission(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:    diag.runID,
		HTML:     htmlContent,
		PageMap:  pageMap,
		Warnings: diag.warnings,
	}

	if input.HTMLOnly {
		return result, nil
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, input.Page)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	result.PDF = pdfBytes

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if err := ValidateYear(input.Year); err != nil {
		return err
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.Style.Validate(); err != nil {
		return err
	}
	if err := input.Sections.Validate(); err != nil {
		return err
	}
	return nil
}
