// Package yearplanner generates a duplex-bound, printable year planner
// document from a set of configuration parameters.
//
// # Quick Start
//
// Create a service, generate a planner, and close when done:
//
//	svc := yearplanner.New()
//	defer svc.Close()
//
//	result, err := svc.Generate(ctx, yearplanner.Input{
//	    Year: 2026,
//	    Page: yearplanner.DefaultPageGeometry(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("planner.pdf", result.PDF, 0644)
//
// The result contains the PDF bytes (result.PDF), the intermediate HTML
// (result.HTML) for debugging, the resolved page map, and any layout
// warnings collected during generation. Use Input.HTMLOnly to skip PDF
// rendering.
//
// # Generation Pipeline
//
// A generation run performs two passes over the same section plan:
//
//  1. Dry-run pagination: a PaginationTracker simulates page consumption
//     for every section (driven by calendar facts such as ISO week counts
//     and days per month) and produces a frozen page map with physical
//     indices, logical page numbers, and recto/verso parity.
//  2. Emission: sections are rendered to HTML page boxes, consulting the
//     frozen page map for the table of contents and footers, and the row
//     height solver so every table fills its page exactly.
//
// The page map is built in a single dry pass. Every section's page count
// is a pure function of configuration and calendar facts, never of
// previously rendered content, which is what makes the single pass
// sufficient.
//
// # Parallel Generation
//
// A Service and its derived page map belong to one generation run at a
// time. For batch generation (several years), use ServicePool to manage
// independent instances:
//
//	pool := yearplanner.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	result, err := svc.Generate(ctx, input)
//
// # Browser Requirements
//
// PDF rendering requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium instance on first run. For containers and CI, set
// ROD_BROWSER_BIN to a pre-installed Chrome binary.
package yearplanner
