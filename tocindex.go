package pdf2md

import (
	"regexp"
	"strings"
)

// tocEntryPattern matches a table-of-contents line:
// command name, section number (or 'l' for local), trailing page number.
var tocEntryPattern = regexp.MustCompile(`^(.+?)\s+\((\d+|[lL])\s*\)\s+\d+\s*$`)

// whitespaceRun matches any run of whitespace, for key normalization.
var whitespaceRun = regexp.MustCompile(`\s+`)

// TOCEntry is one command from the table of contents.
type TOCEntry struct {
	Name    string // Display name as printed in the TOC
	Section string // Man section number, or "" when unknown
}

// TOCIndex maps normalized command names to their TOC entries.
// Normalization removes all whitespace and case-folds, so letter-spaced
// extraction artifacts still resolve. On key collision the last occurrence
// wins.
type TOCIndex map[string]TOCEntry

// normalizeKey collapses all whitespace out of a name and lowercases it.
func normalizeKey(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(name, ""))
}

// BuildTOCIndex indexes every line of tocText matching the TOC entry shape.
// Non-matching lines are ignored; a degenerate TOC yields an empty index and
// downstream heading synthesis falls back to derived tokens.
func BuildTOCIndex(tocText string) TOCIndex {
	index := make(TOCIndex)
	for _, line := range strings.Split(tocText, "\n") {
		m := tocEntryPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		index[normalizeKey(name)] = TOCEntry{Name: name, Section: m[2]}
	}
	return index
}

// Lookup resolves a candidate command name against the index.
// On a miss it returns an entry carrying the candidate itself with no
// section, so callers always have a usable display name.
func (idx TOCIndex) Lookup(name string) TOCEntry {
	if entry, ok := idx[normalizeKey(name)]; ok {
		return entry
	}
	return TOCEntry{Name: name}
}
