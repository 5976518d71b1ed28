// Package config loads document landmark configuration for the CLI.
// The landmarks (TOC marker, footer patterns, running-header prefixes) are
// inherently document-specific; the defaults match the StorNext 7 reference
// guide and a config file overrides them for other documents.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-pdf2md/internal/fileutil"
	"github.com/alnah/go-pdf2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidPattern  = errors.New("invalid footer pattern")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrEmptyMarker     = errors.New("document.tocMarker cannot be empty")
)

// Field limits to catch pathological config files early.
const (
	MaxMarkerLength  = 200 // TOC marker phrase
	MaxPatternLength = 500 // One footer regexp
	MaxPatterns      = 100 // Footer patterns / header prefixes each
)

// Config holds all configuration for the converter CLI.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Output   OutputConfig   `yaml:"output"`
}

// DocumentConfig defines the landmarks of the source document.
type DocumentConfig struct {
	TOCMarker      string   `yaml:"tocMarker"`      // Exact line opening the table of contents
	FooterPatterns []string `yaml:"footerPatterns"` // Regexps; matching lines removed as footers
	HeaderPrefixes []string `yaml:"headerPrefixes"` // Literal prefixes; matching lines removed as headers
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to source)
}

// DefaultConfig returns the configuration for the StorNext 7 Man Pages
// Reference Guide, the document the pipeline was originally written against.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{
			TOCMarker: "Table of Contents",
			FooterPatterns: []string{
				`(?i)^StorNext\s+File\s+System\s+\d+\s*$`,
			},
			HeaderPrefixes: []string{
				"StorNext 7 Man Pages Reference Guide",
				"6-68799-01",
				"December 2022",
			},
		},
	}
}

// Validate checks pattern compilability and field lengths.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if c.Document.TOCMarker == "" {
		return ErrEmptyMarker
	}
	if len(c.Document.TOCMarker) > MaxMarkerLength {
		return fmt.Errorf("%w: document.tocMarker (%d chars, max %d)",
			ErrFieldTooLong, len(c.Document.TOCMarker), MaxMarkerLength)
	}
	if len(c.Document.FooterPatterns) > MaxPatterns {
		return fmt.Errorf("%w: document.footerPatterns (%d entries, max %d)",
			ErrFieldTooLong, len(c.Document.FooterPatterns), MaxPatterns)
	}
	if len(c.Document.HeaderPrefixes) > MaxPatterns {
		return fmt.Errorf("%w: document.headerPrefixes (%d entries, max %d)",
			ErrFieldTooLong, len(c.Document.HeaderPrefixes), MaxPatterns)
	}

	for i, p := range c.Document.FooterPatterns {
		if len(p) > MaxPatternLength {
			return fmt.Errorf("%w: document.footerPatterns[%d] (%d chars, max %d)",
				ErrFieldTooLong, i, len(p), MaxPatternLength)
		}
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("%w: document.footerPatterns[%d] %q: %v",
				ErrInvalidPattern, i, p, err)
		}
	}

	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// Fields absent from the file keep their defaults, so a config that only
// overrides the TOC marker still removes the default footers.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-pdf2md/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-pdf2md", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
