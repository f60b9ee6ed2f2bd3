package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuertools/invoice-extractor/internal/entity"
	"github.com/steuertools/invoice-extractor/internal/extract"
	"github.com/steuertools/invoice-extractor/internal/ingest"
)

// stubExtractor maps base filenames to canned text instead of opening PDFs.
type stubExtractor struct {
	texts map[string]string
	errs  map[string]error
}

func (s *stubExtractor) Extract(_ context.Context, path string) (extract.TextExtractionResult, error) {
	name := filepath.Base(path)
	if err := s.errs[name]; err != nil {
		return extract.TextExtractionResult{}, err
	}
	return extract.TextExtractionResult{Text: s.texts[name], Pages: 1, Method: "stub"}, nil
}

type memStore struct {
	known   map[string]struct{}
	records []entity.ExtractionResult
}

func (m *memStore) KnownFilenames() (map[string]struct{}, error) {
	return m.known, nil
}

func (m *memStore) Append(res entity.ExtractionResult) error {
	m.records = append(m.records, res)
	return nil
}

const invoiceText = `Telekom Deutschland GmbH
Rechnungsnummer: RE-2024-001
Rechnungsdatum: 15.03.2024
Nettobetrag: 100,00 EUR
MwSt 19%: 19,00 EUR
Gesamtbetrag: 119,00 EUR`

func writePDF(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF"), 0o644))
}

func newTestProcessor(t *testing.T, tx extract.TextExtractor, store *memStore) (*Processor, string) {
	t.Helper()
	archive := t.TempDir()
	return NewProcessor(nil, tx, extract.NewEngine(extract.Config{}), store, ingest.NewArchiver(archive)), archive
}

func TestProcessDirectory(t *testing.T) {
	inbox := t.TempDir()
	writePDF(t, inbox, "telekom.pdf")
	writePDF(t, inbox, "leer.pdf")

	store := &memStore{}
	tx := &stubExtractor{texts: map[string]string{"telekom.pdf": invoiceText, "leer.pdf": ""}}
	p, archive := newTestProcessor(t, tx, store)

	stats, err := p.ProcessDirectory(context.Background(), inbox)
	require.NoError(t, err)
	assert.Equal(t, BatchStats{Found: 2, Processed: 2}, stats)

	require.Len(t, store.records, 2)
	assert.FileExists(t, filepath.Join(archive, "unknown_vendor", "leer.pdf"))
	assert.FileExists(t, filepath.Join(archive, "telekom_deutschland_gmbh", "telekom.pdf"))

	remaining, err := os.ReadDir(inbox)
	require.NoError(t, err)
	assert.Empty(t, remaining, "processed files leave the inbox")
}

func TestProcessDirectory_SkipsKnownFilenames(t *testing.T) {
	inbox := t.TempDir()
	writePDF(t, inbox, "telekom.pdf")

	store := &memStore{known: map[string]struct{}{"telekom.pdf": {}}}
	tx := &stubExtractor{texts: map[string]string{"telekom.pdf": invoiceText}}
	p, _ := newTestProcessor(t, tx, store)

	stats, err := p.ProcessDirectory(context.Background(), inbox)
	require.NoError(t, err)
	assert.Equal(t, BatchStats{Found: 1, Skipped: 1}, stats)
	assert.Empty(t, store.records)
	assert.FileExists(t, filepath.Join(inbox, "telekom.pdf"), "skipped files stay put")
}

func TestProcessDirectory_FailedDocumentDoesNotStopBatch(t *testing.T) {
	inbox := t.TempDir()
	writePDF(t, inbox, "defekt.pdf")
	writePDF(t, inbox, "telekom.pdf")

	store := &memStore{}
	tx := &stubExtractor{
		texts: map[string]string{"telekom.pdf": invoiceText},
		errs:  map[string]error{"defekt.pdf": errors.New("encrypted document")},
	}
	p, _ := newTestProcessor(t, tx, store)

	stats, err := p.ProcessDirectory(context.Background(), inbox)
	require.NoError(t, err)
	assert.Equal(t, BatchStats{Found: 2, Processed: 1, Failed: 1}, stats)
	require.Len(t, store.records, 1)
	assert.Equal(t, "telekom.pdf", store.records[0].Filename)
	assert.FileExists(t, filepath.Join(inbox, "defekt.pdf"), "failed files stay for the next run")
}

func TestProcessDirectory_ContextCancelled(t *testing.T) {
	inbox := t.TempDir()
	writePDF(t, inbox, "telekom.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, _ := newTestProcessor(t, &stubExtractor{}, &memStore{})
	_, err := p.ProcessDirectory(ctx, inbox)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessDirectory_MissingInbox(t *testing.T) {
	p, _ := newTestProcessor(t, &stubExtractor{}, &memStore{})
	_, err := p.ProcessDirectory(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
