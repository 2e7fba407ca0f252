package yearplanner

import "errors"

// Sentinel errors for library operations.
var (
	// Configuration errors. Fatal: generation aborts before any emission.
	ErrInvalidGeometry   = errors.New("invalid page geometry")
	ErrNonPositiveExtent = errors.New("content area is not positive")
	ErrInvalidSection    = errors.New("invalid section parameters")
	ErrInvalidYear       = errors.New("invalid year")

	// Layout errors. Non-fatal: recorded as warnings, generation continues.
	ErrLayoutInfeasible = errors.New("table layout infeasible")

	// Calendar errors. Fatal: indicates a defect in calendar derivation.
	ErrCalendarLogic = errors.New("calendar logic contradiction")

	// Page map resolution errors.
	ErrResolverState = errors.New("page map resolver state violation")
	ErrUnknownShape  = errors.New("unknown section shape")

	// Rendering errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrHTMLConversion = errors.New("HTML conversion failed")
)
