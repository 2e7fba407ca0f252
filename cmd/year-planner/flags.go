package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command line options.
type cliFlags struct {
	config   string
	years    []int
	outDir   string
	htmlOnly bool
	workers  int
	timeout  time.Duration
	verbose  bool
	quiet    bool
	version  bool
}

// parseFlags parses args (including the program name at args[0]) and
// returns the flags plus any remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config file path or name")
	fs.IntSliceVarP(&f.years, "year", "y", nil, "planner year (repeatable for batch generation)")
	fs.StringVarP(&f.outDir, "out", "o", ".", "output directory")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML without rendering a PDF")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVar(&f.timeout, "timeout", 60*time.Second, "PDF rendering timeout per document")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose progress on stderr")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	if f.verbose && f.quiet {
		return nil, nil, fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", ErrInvalidArgs)
	}
	if f.timeout <= 0 {
		return nil, nil, fmt.Errorf("%w: --timeout must be positive", ErrInvalidArgs)
	}

	return f, fs.Args(), nil
}
