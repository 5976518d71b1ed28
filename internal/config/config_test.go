package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (t.Chdir requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Document.TOCMarker != "Table of Contents" {
		t.Errorf("TOCMarker = %q, want %q", cfg.Document.TOCMarker, "Table of Contents")
	}
	if len(cfg.Document.FooterPatterns) == 0 {
		t.Error("default FooterPatterns is empty")
	}
	if len(cfg.Document.HeaderPrefixes) == 0 {
		t.Error("default HeaderPrefixes is empty")
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name: "empty marker",
			mutate: func(c *Config) {
				c.Document.TOCMarker = ""
			},
			wantErr: ErrEmptyMarker,
		},
		{
			name: "marker too long",
			mutate: func(c *Config) {
				c.Document.TOCMarker = strings.Repeat("x", MaxMarkerLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "too many footer patterns",
			mutate: func(c *Config) {
				c.Document.FooterPatterns = make([]string, MaxPatterns+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "too many header prefixes",
			mutate: func(c *Config) {
				c.Document.HeaderPrefixes = make([]string, MaxPatterns+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "footer pattern too long",
			mutate: func(c *Config) {
				c.Document.FooterPatterns = []string{strings.Repeat("a", MaxPatternLength+1)}
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "footer pattern does not compile",
			mutate: func(c *Config) {
				c.Document.FooterPatterns = []string{"[unclosed"}
			},
			wantErr: ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pdf2md.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("overrides merge onto defaults", func(t *testing.T) {
		path := writeConfigFile(t, "document:\n  tocMarker: Index of Commands\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Document.TOCMarker != "Index of Commands" {
			t.Errorf("TOCMarker = %q, want override", cfg.Document.TOCMarker)
		}
		if len(cfg.Document.FooterPatterns) == 0 {
			t.Error("default footer patterns lost during merge")
		}
	})

	t.Run("full override", func(t *testing.T) {
		path := writeConfigFile(t, `document:
  tocMarker: Contents
  footerPatterns:
    - '^Page \d+$'
  headerPrefixes:
    - Acme Manual
output:
  defaultDir: out
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if got := cfg.Document.FooterPatterns; len(got) != 1 || got[0] != `^Page \d+$` {
			t.Errorf("FooterPatterns = %v, want single override", got)
		}
		if cfg.Output.DefaultDir != "out" {
			t.Errorf("DefaultDir = %q, want %q", cfg.Output.DefaultDir, "out")
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig(missing) error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		path := writeConfigFile(t, "document:\n  tocMarkre: typo\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig(unknown field) error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("explicit empty marker rejected", func(t *testing.T) {
		path := writeConfigFile(t, "document:\n  tocMarker: \"\"\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrEmptyMarker) {
			t.Errorf("LoadConfig(empty marker) error = %v, want ErrEmptyMarker", err)
		}
	})

	t.Run("invalid pattern rejected", func(t *testing.T) {
		path := writeConfigFile(t, "document:\n  footerPatterns:\n    - '[unclosed'\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidPattern) {
			t.Errorf("LoadConfig(bad pattern) error = %v, want ErrInvalidPattern", err)
		}
	})

	t.Run("name resolved in current directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "manpages.yaml"),
			[]byte("document:\n  tocMarker: Contents\n"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		chdir(t, dir)

		cfg, err := LoadConfig("manpages")
		if err != nil {
			t.Fatalf("LoadConfig(name) error = %v", err)
		}
		if cfg.Document.TOCMarker != "Contents" {
			t.Errorf("TOCMarker = %q, want %q", cfg.Document.TOCMarker, "Contents")
		}
	})

	t.Run("unresolvable name", func(t *testing.T) {
		chdir(t, t.TempDir())
		if _, err := LoadConfig("no-such-config-name"); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig(unknown name) error = %v, want ErrConfigNotFound", err)
		}
	})
}
