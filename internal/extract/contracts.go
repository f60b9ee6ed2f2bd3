package extract

import (
	"context"
)

// TextExtractor turns a source file into raw text. An empty Text with a nil
// error is the "no text layer" signal; the engine then degrades to a
// manual-review record instead of failing.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text   string
	Pages  int
	Method string // "pdf-text"
}
