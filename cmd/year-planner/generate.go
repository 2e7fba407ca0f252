package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	yearplanner "github.com/rohingosling/yearplanner"
	"github.com/rohingosling/yearplanner/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs = errors.New("invalid arguments")
	ErrNoYear      = errors.New("no planner year given: use --year or set document.year in the config")
	ErrReadContent = errors.New("failed to read content file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// outputFileMode is the permission set for generated documents.
const outputFileMode = 0o600

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
	}
}

// run generates one planner per requested year, drawing services from
// the pool so batch runs render in parallel.
func run(ctx context.Context, flags *cliFlags, env *Environment, pool *yearplanner.ServicePool) error {
	cfg := env.Config
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	years := flags.years
	if len(years) == 0 {
		if cfg.Document.Year == 0 {
			return ErrNoYear
		}
		years = []int{cfg.Document.Year}
	}

	if err := os.MkdirAll(flags.outDir, 0o750); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, flags.outDir, err)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(years))

	for i, year := range years {
		wg.Add(1)
		go func(i, year int) {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			errs[i] = generateOne(ctx, flags, env, cfg, svc, year)
		}(i, year)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// generateOne renders a single year and writes its output files.
func generateOne(ctx context.Context, flags *cliFlags, env *Environment, cfg *config.Config, svc *yearplanner.Service, year int) error {
	input, err := inputFromConfig(cfg, year, flags.htmlOnly)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "[%d] generating (timeout %s)\n", year, flags.timeout)
	}

	start := time.Now()
	result, err := svc.Generate(ctx, input)
	if err != nil {
		return fmt.Errorf("year %d: %w", year, err)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(env.Stderr, "warning: %s\n", w)
	}

	if err := writeOutputs(flags, input, result, year); err != nil {
		return err
	}

	if !flags.quiet {
		pages := len(result.PageMap)
		fmt.Fprintf(env.Stdout, "year %d: %d pages in %s\n", year, pages, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// writeOutputs writes the PDF, or the HTML when no PDF was rendered.
func writeOutputs(flags *cliFlags, input yearplanner.Input, result *yearplanner.Result, year int) error {
	if input.HTMLOnly {
		path := filepath.Join(flags.outDir, fmt.Sprintf("year-planner-%d.html", year))
		if err := os.WriteFile(path, []byte(result.HTML), outputFileMode); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
		}
		return nil
	}

	path := filepath.Join(flags.outDir, fmt.Sprintf("year-planner-%d.pdf", year))
	if err := os.WriteFile(path, result.PDF, outputFileMode); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	return nil
}
