package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	yearplanner "github.com/rohingosling/yearplanner"
	"github.com/rohingosling/yearplanner/internal/config"
)

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Environment{
		Stdout: stdout,
		Stderr: stderr,
		Config: config.DefaultConfig(),
	}, stdout, stderr
}

func TestRun_NoYear(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	pool := yearplanner.NewServicePool(1)
	defer pool.Close()

	flags := &cliFlags{outDir: t.TempDir(), timeout: time.Minute}

	err := run(context.Background(), flags, env, pool)
	if !errors.Is(err, ErrNoYear) {
		t.Errorf("run() error = %v, want ErrNoYear", err)
	}
}

func TestRun_MissingConfig(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	pool := yearplanner.NewServicePool(1)
	defer pool.Close()

	flags := &cliFlags{
		config:  filepath.Join(t.TempDir(), "nope.yaml"),
		outDir:  t.TempDir(),
		timeout: time.Minute,
	}

	err := run(context.Background(), flags, env, pool)
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("run() error = %v, want ErrConfigNotFound", err)
	}
}

func TestRun_HTMLOnly(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	pool := yearplanner.NewServicePool(1)
	defer pool.Close()

	outDir := t.TempDir()
	flags := &cliFlags{
		years:    []int{2026},
		outDir:   outDir,
		htmlOnly: true,
		timeout:  time.Minute,
	}

	if err := run(context.Background(), flags, env, pool); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	outPath := filepath.Join(outDir, "year-planner-2026.html")
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "Year Planner 2026") {
		t.Error("output HTML missing the document title")
	}
	if !strings.Contains(stdout.String(), "year 2026:") {
		t.Errorf("stdout = %q, want per-year summary line", stdout.String())
	}
}

func TestRun_BatchYears(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	pool := yearplanner.NewServicePool(2)
	defer pool.Close()

	outDir := t.TempDir()
	flags := &cliFlags{
		years:    []int{2026, 2027},
		outDir:   outDir,
		htmlOnly: true,
		timeout:  time.Minute,
	}

	if err := run(context.Background(), flags, env, pool); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, year := range flags.years {
		path := filepath.Join(outDir, fmt.Sprintf("year-planner-%d.html", year))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output %s: %v", path, err)
		}
	}
	if !strings.Contains(stdout.String(), "year 2026:") || !strings.Contains(stdout.String(), "year 2027:") {
		t.Errorf("stdout = %q, want a summary line per year", stdout.String())
	}
}

func TestRun_YearFromConfig(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	env.Config.Document.Year = 2026
	pool := yearplanner.NewServicePool(1)
	defer pool.Close()

	outDir := t.TempDir()
	flags := &cliFlags{
		outDir:   outDir,
		htmlOnly: true,
		quiet:    true,
		timeout:  time.Minute,
	}

	if err := run(context.Background(), flags, env, pool); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "year-planner-2026.html")); err != nil {
		t.Errorf("expected output file: %v", err)
	}
}

func TestRun_InvalidYearPropagates(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	pool := yearplanner.NewServicePool(1)
	defer pool.Close()

	flags := &cliFlags{
		years:    []int{1500},
		outDir:   t.TempDir(),
		htmlOnly: true,
		quiet:    true,
		timeout:  time.Minute,
	}

	err := run(context.Background(), flags, env, pool)
	if !errors.Is(err, yearplanner.ErrInvalidYear) {
		t.Errorf("run() error = %v, want ErrInvalidYear", err)
	}
	if exitCodeFor(err) != ExitUsage {
		t.Errorf("exitCodeFor(%v) = %d, want ExitUsage", err, exitCodeFor(err))
	}
}
