package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// PDFTextExtractor reads the embedded text layer of a PDF. Scanned documents
// without a text layer come back empty, which downstream treats as
// all-fields-absent.
type PDFTextExtractor struct {
	MaxPages int // pages read from the front of the document, default 3
}

func NewPDFTextExtractor(maxPages int) *PDFTextExtractor {
	if maxPages <= 0 {
		maxPages = 3
	}
	return &PDFTextExtractor{MaxPages: maxPages}
}

func (x *PDFTextExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return TextExtractionResult{}, err
	}

	doc, err := fitz.New(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	pages := doc.NumPage()
	if pages > x.MaxPages {
		pages = x.MaxPages
	}

	var b strings.Builder
	for i := 0; i < pages; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return TextExtractionResult{}, fmt.Errorf("reading page %d: %w", i+1, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return TextExtractionResult{Text: b.String(), Pages: pages, Method: "pdf-text"}, nil
}
