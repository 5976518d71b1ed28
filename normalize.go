package pdf2md

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled patterns for layout artifacts.
var (
	// Page marker comments like <!-- Page 12 -->
	pageMarkerPattern = regexp.MustCompile(`(?i)^<!--\s*Page\s+\d+\s*-->`)

	// Per-command running header with section numbers at both ends,
	// e.g. "MOUNT_CVFS(8) StorNext File System MOUNT_CVFS(8)".
	// The empty-paren variant "FOO() FOO()" is deliberately NOT matched
	// here; the heading synthesizer needs it for boundary detection.
	numberedHeaderPattern = regexp.MustCompile(`^([A-Z0-9_]+)\(\d+\)\s+(?:.*\s+)?([A-Z0-9_]+)\(\d+\)\s*$`)
)

// normalizer defines the contract for layout-artifact removal.
type normalizer interface {
	Normalize(ctx context.Context, text string) string
}

// ruleNormalizer strips page delimiters, footers, and running headers
// according to the configured rules. Unmatched lines pass through unchanged;
// this stage never fails.
type ruleNormalizer struct {
	rules *compiledRules
}

// Normalize applies all removal passes in order.
func (n *ruleNormalizer) Normalize(ctx context.Context, text string) string {
	if ctx.Err() != nil {
		return text
	}
	text = removePageDelimiters(text)
	text = n.removeFooters(text)
	text = n.removeRunningHeaders(text)
	return text
}

// removePageDelimiters drops horizontal-rule delimiters and page markers.
func removePageDelimiters(text string) string {
	return filterLines(text, func(line, stripped string) bool {
		if stripped == "---" {
			return false
		}
		if pageMarkerPattern.MatchString(stripped) {
			return false
		}
		return true
	})
}

// removeFooters drops lines matching any configured footer pattern.
func (n *ruleNormalizer) removeFooters(text string) string {
	return filterLines(text, func(line, stripped string) bool {
		for _, p := range n.rules.footerPatterns {
			if p.MatchString(stripped) {
				return false
			}
		}
		return true
	})
}

// removeRunningHeaders drops document-wide header lines and per-command
// numbered headers where the same token appears at both ends of the line.
func (n *ruleNormalizer) removeRunningHeaders(text string) string {
	return filterLines(text, func(line, stripped string) bool {
		for _, prefix := range n.rules.headerPrefixes {
			if strings.HasPrefix(stripped, prefix) {
				return false
			}
		}
		if m := numberedHeaderPattern.FindStringSubmatch(stripped); m != nil && m[1] == m[2] {
			return false
		}
		return true
	})
}

// filterLines rebuilds the text keeping only lines for which keep returns
// true. Line order is preserved; keep receives both the original line and
// its whitespace-trimmed form.
func filterLines(text string, keep func(line, stripped string) bool) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if keep(line, strings.TrimSpace(line)) {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
