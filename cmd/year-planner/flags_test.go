package main

import (
	"errors"
	"testing"
	"time"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f, rest, err := parseFlags([]string{"year-planner"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.config != "" {
			t.Errorf("config = %q, want empty", f.config)
		}
		if len(f.years) != 0 {
			t.Errorf("years = %v, want empty", f.years)
		}
		if f.outDir != "." {
			t.Errorf("outDir = %q, want %q", f.outDir, ".")
		}
		if f.timeout != 60*time.Second {
			t.Errorf("timeout = %s, want 60s", f.timeout)
		}
		if f.workers != 0 {
			t.Errorf("workers = %d, want 0", f.workers)
		}
		if f.htmlOnly || f.verbose || f.quiet || f.version {
			t.Error("boolean flags should default to false")
		}
		if len(rest) != 0 {
			t.Errorf("positional args = %v, want none", rest)
		}
	})

	t.Run("repeatable year flag", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseFlags([]string{"year-planner", "-y", "2026", "-y", "2027"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if len(f.years) != 2 || f.years[0] != 2026 || f.years[1] != 2027 {
			t.Errorf("years = %v, want [2026 2027]", f.years)
		}
	})

	t.Run("comma separated years", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseFlags([]string{"year-planner", "--year", "2026,2027,2028"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if len(f.years) != 3 {
			t.Errorf("years = %v, want three entries", f.years)
		}
	})

	t.Run("all options", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseFlags([]string{
			"year-planner",
			"-c", "planner.yaml",
			"-y", "2026",
			"-o", "/tmp/out",
			"--html-only",
			"-w", "3",
			"--timeout", "90s",
			"-v",
		})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.config != "planner.yaml" {
			t.Errorf("config = %q, want planner.yaml", f.config)
		}
		if f.outDir != "/tmp/out" {
			t.Errorf("outDir = %q, want /tmp/out", f.outDir)
		}
		if !f.htmlOnly {
			t.Error("htmlOnly = false, want true")
		}
		if f.workers != 3 {
			t.Errorf("workers = %d, want 3", f.workers)
		}
		if f.timeout != 90*time.Second {
			t.Errorf("timeout = %s, want 90s", f.timeout)
		}
		if !f.verbose {
			t.Error("verbose = false, want true")
		}
	})

	t.Run("verbose and quiet are mutually exclusive", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseFlags([]string{"year-planner", "-v", "-q"})
		if !errors.Is(err, ErrInvalidArgs) {
			t.Errorf("error = %v, want ErrInvalidArgs", err)
		}
	})

	t.Run("non-positive timeout rejected", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseFlags([]string{"year-planner", "--timeout", "0s"})
		if !errors.Is(err, ErrInvalidArgs) {
			t.Errorf("error = %v, want ErrInvalidArgs", err)
		}
	})

	t.Run("unknown flag errors", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseFlags([]string{"year-planner", "--bogus"}); err == nil {
			t.Error("expected error for unknown flag")
		}
	})
}
