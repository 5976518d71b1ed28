// Package pdf2md converts PDF man-page reference guides to structured Markdown.
//
// # Quick Start
//
// Create a service and convert a PDF:
//
//	svc := pdf2md.New()
//	result, err := svc.Convert(ctx, pdf2md.Input{PDFPath: "manual.pdf"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("manual.md", []byte(result.Markdown), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Text extraction (page-ordered plain text via ledongthuc/pdf)
//  2. Normalization (page delimiters, footers, running headers removed)
//  3. Structure split (table of contents separated from man-page body)
//  4. TOC indexing (normalized command name -> display name, section)
//  5. Heading synthesis (## command headings, ### section labels,
//     repair of pages whose boundary marker was missed)
//  6. Text cleanup (ligature expansion, letter-spacing collapse)
//
// A missing table-of-contents marker or first man-page boundary is fatal
// (ErrStructureNotFound). Everything below that is best-effort: unresolvable
// command names fall back to tokens derived from the boundary line, and a
// wrong heading is preferred over an aborted conversion.
//
// # Configuration
//
// The document-specific landmarks (TOC marker phrase, footer patterns,
// running-header prefixes) are carried by Rules. DefaultRules matches the
// StorNext 7 reference guide the tool was built for; pass your own via
// WithRules for other documents:
//
//	svc := pdf2md.New(pdf2md.WithRules(pdf2md.Rules{
//	    TOCMarker:      "Contents",
//	    FooterPatterns: []string{`Acme\s+Filer\s+\d+\s*$`},
//	}))
//
// Use WithProgress to observe stages as they begin:
//
//	svc := pdf2md.New(pdf2md.WithProgress(func(stage string) {
//	    fmt.Println(stage)
//	}))
package pdf2md
