package pdf2md

import (
	"fmt"
	"regexp"
)

// Input contains conversion parameters.
type Input struct {
	PDFPath string // Path to the source PDF (required)
}

// Result holds the outcome of a conversion.
type Result struct {
	Markdown   string // Final markdown document
	TOCEntries int    // Number of commands indexed from the table of contents
	Commands   int    // Number of ## command headings in the output
	Sections   int    // Number of ### section headings in the output
}

// Rules carries the document-specific landmarks used by normalization and
// structure detection. The original tool hardcoded these for one reference
// guide; they are configurable here because other guides will differ.
type Rules struct {
	// TOCMarker is the exact line that opens the table of contents.
	TOCMarker string

	// FooterPatterns are regular expressions; a line whose trimmed form
	// matches any of them is removed as a footer.
	FooterPatterns []string

	// HeaderPrefixes are literal prefixes; a line whose trimmed form starts
	// with any of them is removed as a document-wide running header.
	HeaderPrefixes []string
}

// DefaultRules returns rules matching the StorNext 7 Man Pages Reference
// Guide, the document this pipeline was originally written against.
func DefaultRules() Rules {
	return Rules{
		TOCMarker: "Table of Contents",
		FooterPatterns: []string{
			`(?i)^StorNext\s+File\s+System\s+\d+\s*$`,
		},
		HeaderPrefixes: []string{
			"StorNext 7 Man Pages Reference Guide",
			"6-68799-01",
			"December 2022",
		},
	}
}

// Validate checks that the rules are usable: a non-empty TOC marker and
// compilable footer patterns.
func (r Rules) Validate() error {
	if r.TOCMarker == "" {
		return ErrEmptyTOCMarker
	}
	for _, p := range r.FooterPatterns {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidFooterPattern, p, err)
		}
	}
	return nil
}

// compiledRules holds the rules with footer patterns compiled once.
type compiledRules struct {
	tocMarker      string
	footerPatterns []*regexp.Regexp
	headerPrefixes []string
}

// compile validates the rules and compiles the footer patterns.
func (r Rules) compile() (*compiledRules, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	cr := &compiledRules{
		tocMarker:      r.TOCMarker,
		headerPrefixes: r.HeaderPrefixes,
	}
	for _, p := range r.FooterPatterns {
		cr.footerPatterns = append(cr.footerPatterns, regexp.MustCompile(p))
	}
	return cr, nil
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	rules    Rules
	progress func(stage string)
}

// WithRules sets the document landmark rules.
// Panics on invalid rules (programmer error, similar to regexp.MustCompile).
func WithRules(r Rules) Option {
	if err := r.Validate(); err != nil {
		panic("pdf2md: WithRules: " + err.Error())
	}
	return func(s *Service) {
		s.cfg.rules = r
	}
}

// WithProgress sets a callback invoked with a one-line status message as
// each pipeline stage begins. The callback must not block.
func WithProgress(fn func(stage string)) Option {
	return func(s *Service) {
		s.cfg.progress = fn
	}
}
