package pdf2md

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// textExtractor defines the contract for PDF text extraction.
type textExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// ledongthucExtractor extracts page-ordered plain text using ledongthuc/pdf.
type ledongthucExtractor struct{}

// ExtractText extracts text from all pages, in page order.
// Pages with no text layer are skipped; an empty document is an error.
func (e *ledongthucExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text := extractPageText(page)
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.TrimRight(text, "\n ")
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	if len(pages) == 0 {
		return "", ErrNoText
	}
	return strings.Join(pages, "\n"), nil
}

// extractPageText reassembles one page from its text rows. Rows arrive in
// layout order; empty fragments between words mark word boundaries.
func extractPageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil || len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	for _, row := range rows {
		var line strings.Builder
		pendingGap := false
		for _, word := range row.Content {
			if word.S == "" {
				pendingGap = true
				continue
			}
			if line.Len() > 0 && pendingGap && !strings.HasSuffix(line.String(), " ") {
				line.WriteByte(' ')
			}
			line.WriteString(word.S)
			pendingGap = false
		}
		text := strings.TrimRight(line.String(), " ")
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String()
}
