package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-pdf2md/internal/yamlutil"
)

type testDoc struct {
	Marker   string   `yaml:"marker"`
	Patterns []string `yaml:"patterns"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		var doc testDoc
		data := []byte("marker: Table of Contents\npatterns:\n  - foo\n  - bar\n")

		if err := yamlutil.UnmarshalStrict(data, &doc); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if doc.Marker != "Table of Contents" {
			t.Errorf("Marker = %q, want %q", doc.Marker, "Table of Contents")
		}
		if len(doc.Patterns) != 2 {
			t.Errorf("Patterns = %v, want 2 entries", doc.Patterns)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		var doc testDoc
		if err := yamlutil.UnmarshalStrict([]byte("marker: x\ntypoed: y\n"), &doc); err == nil {
			t.Error("UnmarshalStrict(unknown field) error = nil, want error")
		}
	})

	t.Run("empty data", func(t *testing.T) {
		var doc testDoc
		if err := yamlutil.UnmarshalStrict(nil, &doc); !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("UnmarshalStrict(nil) error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		if err := yamlutil.UnmarshalStrict([]byte("marker: x"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Errorf("UnmarshalStrict(_, nil) error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		var doc testDoc
		data := []byte("marker: " + strings.Repeat("a", yamlutil.MaxInputSize))

		if err := yamlutil.UnmarshalStrict(data, &doc); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("UnmarshalStrict(oversized) error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		var doc testDoc
		if err := yamlutil.UnmarshalStrict([]byte("marker: [unclosed"), &doc); err == nil {
			t.Error("UnmarshalStrict(malformed) error = nil, want parse error")
		}
	})
}
