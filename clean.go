package pdf2md

import (
	"context"
	"regexp"
	"strings"
)

// ligatureReplacer substitutes PDF glyph artifacts with ASCII equivalents:
// ligatures expanded, curly quotes and dash variants straightened,
// non-breaking spaces regularized.
var ligatureReplacer = strings.NewReplacer(
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬀ", "ff",
	"ﬃ", "ffi",
	"ﬄ", "ffl",
	"ﬅ", "st",
	"ﬆ", "st",
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	"−", "-",
	" ", " ",
)

// spacedUppercasePattern matches a run of three or more whitespace-separated
// uppercase tokens of 1-4 letters each, the signature of letter-spaced
// extraction ("S T O R N E X T"). Two-token sequences are left alone so
// genuine labels like "SEE ALSO" survive.
var spacedUppercasePattern = regexp.MustCompile(`\b(?:[A-Z]{1,4}\s+){2,}[A-Z]{1,4}\b`)

// textCleaner defines the contract for the final cleanup pass.
type textCleaner interface {
	Clean(ctx context.Context, text string) string
}

// glyphCleaner applies ligature substitution and uppercase despacing.
// Both passes are idempotent.
type glyphCleaner struct{}

// Clean applies both cleanup passes.
func (c *glyphCleaner) Clean(ctx context.Context, text string) string {
	if ctx.Err() != nil {
		return text
	}
	text = cleanupLigatures(text)
	text = cleanupUppercaseSpacing(text)
	return text
}

// cleanupLigatures replaces PDF ligatures and punctuation variants.
func cleanupLigatures(text string) string {
	return ligatureReplacer.Replace(text)
}

// cleanupUppercaseSpacing removes the internal spaces of letter-spaced
// uppercase runs, recovering "STORNEXT" from "S T O R N E X T".
func cleanupUppercaseSpacing(text string) string {
	return spacedUppercasePattern.ReplaceAllStringFunc(text, func(match string) string {
		return strings.ReplaceAll(match, " ", "")
	})
}
