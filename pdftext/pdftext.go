// Package pdftext extracts the text layer from PDF documents.
package pdftext

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor is the text-extraction capability. A scanned PDF with no
// text layer yields an empty string, not an error.
type Extractor interface {
	Text(data []byte) (string, error)
}

// PDFExtractor implements Extractor with the ledongthuc/pdf reader.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Text concatenates the text rows of every page. Pages that fail to
// parse are skipped so one bad page does not sink the whole document.
func (e *PDFExtractor) Text(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			log.Printf("Warning: failed to read page %d: %v", i, err)
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				builder.WriteString(word.S)
				builder.WriteString(" ")
			}
			builder.WriteString("\n")
		}
	}

	return builder.String(), nil
}
