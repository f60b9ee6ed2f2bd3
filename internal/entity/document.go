package entity

// RawDocument is the immutable input to the extraction engine: the text pulled
// out of one source file plus the filename it came from.
type RawDocument struct {
	Filename string
	Text     string
}
