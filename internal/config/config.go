// Package config loads planner configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rohingosling/yearplanner/internal/fileutil"
	"github.com/rohingosling/yearplanner/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength   = 200 // Cover title
	MaxVersionLength = 50  // Version string
	MaxLabelLength   = 100 // Contact field label
	MaxPathLength    = 512 // Content file paths
)

// Config holds all configuration for planner generation. Zero-valued
// subsections fall back to the library defaults, so a minimal config is
// just the document year.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Page     PageConfig     `yaml:"page"`
	Table    TableConfig    `yaml:"table"`
	Sections SectionsConfig `yaml:"sections"`
	Cover    CoverConfig    `yaml:"cover"`
	Content  ContentConfig  `yaml:"content"`
	Output   OutputConfig   `yaml:"output"`
}

// DocumentConfig identifies the planner being generated.
type DocumentConfig struct {
	Year    int    `yaml:"year"`
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
}

// PageConfig defines the physical sheet in centimeters.
type PageConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	MarginTop          float64 `yaml:"marginTop"`
	MarginBottom       float64 `yaml:"marginBottom"`
	MarginLeft         float64 `yaml:"marginLeft"`
	MarginRight        float64 `yaml:"marginRight"`
	Gutter             float64 `yaml:"gutter"`
	PageNumberPosition float64 `yaml:"pageNumberPosition"`
}

// TableConfig defines shared table styling.
type TableConfig struct {
	Border             BorderConfig     `yaml:"border"`
	TitleRow           RowConfig        `yaml:"titleRow"`
	HeaderRow          RowConfig        `yaml:"headerRow"`
	ContentRow         ContentRowConfig `yaml:"contentRow"`
	SectionGrayscale   int              `yaml:"sectionGrayscale"`
	FirstItemGrayscale int              `yaml:"firstItemGrayscale"`
	MinRowHeight       float64          `yaml:"minRowHeight"` // points
}

// BorderConfig defines table border lines.
type BorderConfig struct {
	Thickness float64 `yaml:"thickness"` // points
	Grayscale int     `yaml:"grayscale"` // 0=white, 100=black
}

// RowConfig defines a fixed table row (title or header).
type RowConfig struct {
	Height              float64 `yaml:"height"` // points
	BackgroundGrayscale int     `yaml:"backgroundGrayscale"`
	FontSize            float64 `yaml:"fontSize"`
	FontGrayscale       int     `yaml:"fontGrayscale"`
}

// ContentRowConfig defines variable-height content rows.
type ContentRowConfig struct {
	FontSize      float64 `yaml:"fontSize"`
	FontGrayscale int     `yaml:"fontGrayscale"`
	Italic        bool    `yaml:"italic"`
}

// SectionsConfig sizes the planner's sections.
type SectionsConfig struct {
	TOC         TOCConfig        `yaml:"toc"`
	WeekPlanner WeekConfig       `yaml:"weekPlanner"`
	Goals       GoalsConfig      `yaml:"goals"`
	Backlog     PagesRowsConfig  `yaml:"backlog"`
	DailySpread DailyConfig      `yaml:"dailySpread"`
	Terms       PagesRowsConfig  `yaml:"terms"`
	GraphPaper  GraphPaperConfig `yaml:"graphPaper"`
}

// TOCConfig sizes the table of contents.
type TOCConfig struct {
	RowsPerPage int `yaml:"rowsPerPage"`
}

// WeekConfig sizes the week planner.
type WeekConfig struct {
	RowsPerPage int `yaml:"rowsPerPage"`
}

// GoalsConfig sizes the goals page.
type GoalsConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// PagesRowsConfig sizes a section of repeated ruled pages.
type PagesRowsConfig struct {
	Pages int `yaml:"pages"`
	Rows  int `yaml:"rows"`
}

// DailyConfig sizes the two-day spread tables.
type DailyConfig struct {
	Rows                int `yaml:"rows"`
	SubjectWidthPercent int `yaml:"subjectWidthPercent"`
}

// GraphPaperConfig sizes the grid sheets at the back.
type GraphPaperConfig struct {
	Sheets          int `yaml:"sheets"`
	Columns         int `yaml:"columns"`
	Rows            int `yaml:"rows"`
	GridGrayscale   int `yaml:"gridGrayscale"`
	BorderGrayscale int `yaml:"borderGrayscale"`
}

// CoverConfig defines the cover contact table.
type CoverConfig struct {
	ContactFields []string `yaml:"contactFields"`
}

// ContentConfig points at optional Markdown overrides on disk.
type ContentConfig struct {
	InstructionsPath string `yaml:"instructions"`
	TermsPath        string `yaml:"terms"`
}

// OutputConfig defines output options.
type OutputConfig struct {
	HTMLOnly bool `yaml:"htmlOnly"`
}

// DefaultConfig returns a configuration with only the document section
// set; everything else defers to library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and path sanity. Numeric ranges are
// validated by the library once mapped, so only config-level concerns
// live here.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.version", c.Document.Version, MaxVersionLength},
		{"content.instructions", c.Content.InstructionsPath, MaxPathLength},
		{"content.terms", c.Content.TermsPath, MaxPathLength},
	}
	for _, check := range checks {
		if err := validateFieldLength(check.name, check.value, check.max); err != nil {
			return err
		}
	}
	for i, label := range c.Cover.ContactFields {
		name := fmt.Sprintf("cover.contactFields[%d]", i)
		if err := validateFieldLength(name, label, MaxLabelLength); err != nil {
			return err
		}
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s is %d chars (max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations: the current directory, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "year-planner", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
