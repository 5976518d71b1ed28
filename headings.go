package pdf2md

import (
	"context"
	"regexp"
	"strings"
)

// Lookahead and lookback bounds for heading synthesis.
const (
	// nameLookahead bounds the scan from a boundary line to its NAME label.
	nameLookahead = 40

	// headingLookback bounds the raw-input scan for an existing command
	// heading during the repair pass.
	headingLookback = 10
)

// Precompiled patterns for heading synthesis.
var (
	// NAME section label, tolerant of letter-spaced extraction ("N A M E").
	nameLabelPattern = regexp.MustCompile(`(?i)^N\s*A\s*M\s*E\s*$`)

	// Dash variants separating the command name from its description.
	dashPattern = regexp.MustCompile(`[-\x{2010}-\x{2015}]`)

	// Candidate section label: uppercase letters, digits, spaces, slashes,
	// underscores, hyphens only.
	sectionLabelPattern = regexp.MustCompile(`^[A-Z0-9\s/_-]+$`)

	// Characters that count toward the significant-length check.
	significantChars = regexp.MustCompile(`[^A-Z0-9]+`)

	// Redundant doubled running header, spaces allowed inside tokens,
	// e.g. "AC CESS_JSON() A CCESS_JSON()".
	redundantHeaderPattern = regexp.MustCompile(`^[A-Z0-9_\s]+\(\)\s+[A-Z0-9_\s]+\(\)\s*$`)
)

// headingSynthesizer defines the contract for markdown heading injection.
type headingSynthesizer interface {
	AddHeadings(ctx context.Context, bodyText string, index TOCIndex) string
}

// manpageSynthesizer walks the man-page body and injects ## command
// headings and ### section labels. Every branch has a fallback; this stage
// never fails.
type manpageSynthesizer struct{}

// AddHeadings applies all synthesis passes in order. Redundant header
// removal runs last so earlier passes keep their detection context.
func (m *manpageSynthesizer) AddHeadings(ctx context.Context, bodyText string, index TOCIndex) string {
	if ctx.Err() != nil {
		return bodyText
	}
	bodyText = addCommandHeadings(bodyText, index)
	bodyText = addSectionHeadings(bodyText)
	bodyText = fixMissingCommandHeadings(bodyText, index)
	bodyText = removeRedundantHeaders(bodyText)
	return bodyText
}

// appendWithBlank appends line to out, first inserting a blank line when the
// previously emitted line is non-blank.
func appendWithBlank(out []string, line string) []string {
	if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
		out = append(out, "")
	}
	return append(out, line)
}

// commandNameAfterLabel scans forward from the NAME label for the first
// non-blank line and returns the text before the first dash variant.
// Returns "" when the window is exhausted.
func commandNameAfterLabel(lines []string, labelIdx, limit int) string {
	k := labelIdx + 1
	for k < limit && strings.TrimSpace(lines[k]) == "" {
		k++
	}
	if k >= limit {
		return ""
	}
	nameLine := strings.TrimSpace(lines[k])
	parts := dashPattern.Split(nameLine, 2)
	return strings.TrimSpace(parts[0])
}

// commandHeading formats the ## heading for a resolved TOC entry.
func commandHeading(entry TOCEntry) string {
	if entry.Section != "" {
		return "## " + entry.Name + " (" + entry.Section + ")"
	}
	return "## " + entry.Name
}

// addCommandHeadings inserts a ## heading before every man-page boundary
// line. The command name is resolved by scanning ahead (bounded) for the
// NAME section; the TOC index supplies the canonical display name. When the
// name cannot be resolved, a token derived from the boundary line itself is
// used, or the literal "Command" as a last resort. The boundary line is
// preserved in the output.
func addCommandHeadings(bodyText string, index TOCIndex) string {
	lines := strings.Split(bodyText, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		stripped := strings.TrimSpace(line)

		if !boundaryPattern.MatchString(stripped) {
			out = append(out, line)
			continue
		}

		limit := len(lines)
		if i+nameLookahead < limit {
			limit = i + nameLookahead
		}

		cmdName := ""
		for j := i + 1; j < limit; j++ {
			if nameLabelPattern.MatchString(strings.TrimSpace(lines[j])) {
				cmdName = commandNameAfterLabel(lines, j, limit)
				break
			}
		}

		var heading string
		if cmdName != "" {
			heading = commandHeading(index.Lookup(cmdName))
		} else {
			token := strings.ToLower(strings.TrimSpace(strings.SplitN(stripped, "(", 2)[0]))
			if token == "" {
				token = "Command"
			}
			heading = "## " + token
		}

		out = appendWithBlank(out, heading)
		out = append(out, "")
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// isSectionLabel reports whether stripped is an uppercase section label:
// allowed characters only, at least 2 significant characters, at least one
// letter among them.
func isSectionLabel(stripped string) bool {
	if stripped == "" || !sectionLabelPattern.MatchString(stripped) {
		return false
	}
	significant := significantChars.ReplaceAllString(stripped, "")
	if len(significant) < 2 {
		return false
	}
	return strings.ContainsAny(significant, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

// normalizeSectionLabel collapses letter-spacing artifacts. When every token
// is at most 2 characters the spacing is an extraction artifact and the
// tokens are joined directly ("N A M E" -> "NAME"); otherwise single spaces
// are preserved ("SEE ALSO" stays "SEE ALSO").
func normalizeSectionLabel(stripped string) string {
	tokens := strings.Fields(stripped)
	short := len(tokens) > 0
	for _, tok := range tokens {
		if len(tok) > 2 {
			short = false
			break
		}
	}
	if short {
		return strings.Join(tokens, "")
	}
	return strings.Join(tokens, " ")
}

// addSectionHeadings emits a ### heading after every uppercase section
// label occurring past the first ## command heading. The label line itself
// is kept; the uppercase-despacing cleanup collapses it later.
func addSectionHeadings(text string) string {
	lines := strings.Split(text, "\n")

	firstCommand := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "## ") {
			firstCommand = i
			break
		}
	}
	if firstCommand < 0 {
		return text
	}

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		out = append(out, line)
		if i < firstCommand {
			continue
		}
		stripped := strings.TrimSpace(line)
		if isSectionLabel(stripped) {
			out = appendWithBlank(out, "### "+normalizeSectionLabel(stripped))
		}
	}

	return strings.Join(out, "\n")
}

// hasRecentCommandHeading reports whether a ## heading appears in the
// lookback window of raw input lines before idx.
func hasRecentCommandHeading(lines []string, idx int) bool {
	start := idx - headingLookback
	if start < 0 {
		start = 0
	}
	for i := start; i < idx; i++ {
		stripped := strings.TrimSpace(lines[i])
		if strings.HasPrefix(stripped, "## ") && !strings.HasPrefix(stripped, "###") {
			return true
		}
	}
	return false
}

// fixMissingCommandHeadings guards against man pages whose boundary marker
// was missed by the primary detector. For every "### NAME" line without a
// command heading nearby (in emitted output or the raw lookback window), a
// ## heading is synthesized from the name line that follows and resolved
// against the TOC index.
func fixMissingCommandHeadings(text string, index TOCIndex) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for idx, line := range lines {
		if strings.TrimSpace(line) != "### NAME" {
			out = append(out, line)
			continue
		}

		// Nearest non-blank emitted line.
		j := len(out) - 1
		for j >= 0 && strings.TrimSpace(out[j]) == "" {
			j--
		}

		needHeading := true
		if j >= 0 && strings.HasPrefix(out[j], "## ") {
			needHeading = false
		} else if hasRecentCommandHeading(lines, idx) {
			needHeading = false
		}

		if needHeading {
			cmdName := "Command"
			k := idx + 1
			for k < len(lines) && strings.TrimSpace(lines[k]) == "" {
				k++
			}
			if k < len(lines) {
				nameLine := strings.TrimSpace(lines[k])
				parts := dashPattern.Split(nameLine, 2)
				cmdName = strings.TrimSpace(parts[0])
			}

			out = appendWithBlank(out, commandHeading(index.Lookup(cmdName)))
			out = append(out, "")
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// removeRedundantHeaders deletes the doubled running-header lines made
// redundant by the synthesized ## headings. Runs only after all synthesis
// passes so boundary detection context survives until the end.
func removeRedundantHeaders(text string) string {
	return filterLines(text, func(line, stripped string) bool {
		return !redundantHeaderPattern.MatchString(stripped)
	})
}
