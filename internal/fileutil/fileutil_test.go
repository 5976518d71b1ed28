package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-pdf2md/internal/fileutil"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(file, []byte("content"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "existing file", path: file, expected: true},
		{name: "missing file", path: filepath.Join(dir, "missing.txt"), expected: false},
		{name: "directory is not a file", path: dir, expected: false},
		{name: "empty path", path: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileutil.FileExists(tt.path); got != tt.expected {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "unix path", input: "configs/manpages.yaml", expected: true},
		{name: "absolute path", input: "/etc/pdf2md.yaml", expected: true},
		{name: "windows path", input: `C:\configs\manpages.yaml`, expected: true},
		{name: "bare name", input: "manpages", expected: false},
		{name: "empty string", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileutil.IsFilePath(tt.input); got != tt.expected {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		newExt   string
		expected string
	}{
		{name: "pdf to md", path: "guide.pdf", newExt: ".md", expected: "guide.md"},
		{name: "nested path", path: "docs/manuals/guide.pdf", newExt: ".md", expected: "docs/manuals/guide.md"},
		{name: "uppercase extension", path: "GUIDE.PDF", newExt: ".md", expected: "GUIDE.md"},
		{name: "no extension", path: "guide", newExt: ".md", expected: "guide.md"},
		{name: "dot in directory", path: "v1.2/guide.pdf", newExt: ".md", expected: "v1.2/guide.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileutil.ReplaceExt(tt.path, tt.newExt); got != tt.expected {
				t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.newExt, got, tt.expected)
			}
		})
	}
}
