package pdf2md

import "errors"

// Sentinel errors for library operations.
var (
	ErrPDFNotFound       = errors.New("PDF file not found")
	ErrExtraction        = errors.New("PDF text extraction failed")
	ErrNoText            = errors.New("no extractable text in PDF")
	ErrStructureNotFound = errors.New("required structure not found")

	// Rules validation errors.
	ErrEmptyTOCMarker       = errors.New("TOC marker cannot be empty")
	ErrInvalidFooterPattern = errors.New("invalid footer pattern")
)
