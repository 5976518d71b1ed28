package pdf2md

import (
	"context"
	"fmt"
	"os"
)

// Service orchestrates the PDF-to-markdown pipeline.
type Service struct {
	cfg         serviceConfig
	extractor   textExtractor
	normalizer  normalizer
	splitter    structureSplitter
	synthesizer headingSynthesizer
	cleaner     textCleaner
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithRules).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			rules:    DefaultRules(),
			progress: func(string) {},
		},
		extractor:   &ledongthucExtractor{},
		synthesizer: &manpageSynthesizer{},
		cleaner:     &glyphCleaner{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Rules were validated by WithRules; DefaultRules always compiles.
	compiled, err := s.cfg.rules.compile()
	if err != nil {
		panic("pdf2md: " + err.Error())
	}

	// Create rule-bound stages if not injected (e.g., by tests)
	if s.normalizer == nil {
		s.normalizer = &ruleNormalizer{rules: compiled}
	}
	if s.splitter == nil {
		s.splitter = &markerSplitter{rules: compiled}
	}

	return s
}

// Convert runs the full pipeline and returns the markdown document.
// The context is used for cancellation between stages. Structural failures
// (missing TOC marker, no man-page boundary) are fatal; content-level
// heuristic misses degrade to fallback headings instead.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if input.PDFPath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrPDFNotFound)
	}
	if _, err := os.Stat(input.PDFPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPDFNotFound, input.PDFPath)
	}

	s.cfg.progress(fmt.Sprintf("Extracting text from %s...", input.PDFPath))
	text, err := s.extractor.ExtractText(ctx, input.PDFPath)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	s.cfg.progress("Removing layout artifacts...")
	text = s.normalizer.Normalize(ctx, text)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	s.cfg.progress("Splitting table of contents from man pages...")
	tocText, bodyText, err := s.splitter.Split(ctx, text)
	if err != nil {
		return nil, err
	}

	s.cfg.progress("Building TOC index...")
	index := BuildTOCIndex(tocText)

	s.cfg.progress("Adding markdown headings...")
	bodyText = s.synthesizer.AddHeadings(ctx, bodyText, index)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	s.cfg.progress("Cleaning up extraction artifacts...")
	bodyText = s.cleaner.Clean(ctx, bodyText)
	tocText = s.cleaner.Clean(ctx, tocText)

	markdown := tocText + "\n\n" + bodyText + "\n"

	var commands, sections int
	for _, h := range Outline(markdown) {
		switch h.Level {
		case 2:
			commands++
		case 3:
			sections++
		}
	}

	return &Result{
		Markdown:   markdown,
		TOCEntries: len(index),
		Commands:   commands,
		Sections:   sections,
	}, nil
}
