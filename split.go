package pdf2md

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// boundaryPattern matches a man-page boundary line: the PDF's doubled
// running header with empty parens, e.g. "ACCESS_JSON() ACCESS_JSON()".
// Spaces inside the token are allowed (letter-spaced extraction artifact).
var boundaryPattern = regexp.MustCompile(`^[A-Z0-9_ ]+\(\)\s+[A-Z0-9_ ]+\(\)\s*$`)

// structureSplitter defines the contract for separating the table of
// contents from the man-page body.
type structureSplitter interface {
	Split(ctx context.Context, text string) (tocText, bodyText string, err error)
}

// markerSplitter locates the TOC marker line and the first man-page
// boundary, splitting the document there.
type markerSplitter struct {
	rules *compiledRules
}

// Split finds the TOC region and the man-page body. The boundary line itself
// belongs to the body. Both landmarks are required; either one missing is
// fatal (ErrStructureNotFound).
func (s *markerSplitter) Split(ctx context.Context, text string) (string, string, error) {
	if ctx.Err() != nil {
		return "", "", ctx.Err()
	}

	lines := strings.Split(text, "\n")

	tocStart := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == s.rules.tocMarker {
			tocStart = i
			break
		}
	}
	if tocStart < 0 {
		return "", "", fmt.Errorf("%w: %q marker absent", ErrStructureNotFound, s.rules.tocMarker)
	}

	firstBoundary := -1
	for i := tocStart; i < len(lines); i++ {
		if boundaryPattern.MatchString(strings.TrimSpace(lines[i])) {
			firstBoundary = i
			break
		}
	}
	if firstBoundary < 0 {
		return "", "", fmt.Errorf("%w: no man-page boundary after TOC marker", ErrStructureNotFound)
	}

	toc := strings.Join(lines[tocStart:firstBoundary], "\n")
	body := strings.Join(lines[firstBoundary:], "\n")
	return toc, body, nil
}
