package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/steuertools/invoice-extractor/constants"
	"github.com/steuertools/invoice-extractor/internal/entity"
	"github.com/steuertools/invoice-extractor/internal/extract"
	"github.com/steuertools/invoice-extractor/internal/ingest"
	"github.com/steuertools/invoice-extractor/internal/repository"
)

// Processor coordinates one batch run: duplicate guard, text extraction,
// field extraction, ledger append, archival. Documents are processed
// strictly one after another; a failing document is logged and skipped, the
// batch continues.
type Processor struct {
	Log       *slog.Logger
	Extractor extract.TextExtractor
	Engine    *extract.Engine
	Store     repository.RecordStore
	Archive   *ingest.Archiver
}

func NewProcessor(logger *slog.Logger, tx extract.TextExtractor, engine *extract.Engine, store repository.RecordStore, archive *ingest.Archiver) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Log: logger, Extractor: tx, Engine: engine, Store: store, Archive: archive}
}

type BatchStats struct {
	Found     int
	Processed int
	Skipped   int
	Failed    int
}

// ProcessDirectory runs every pending file in dir to completion. The context
// is only consulted between documents; a single document is never left half
// processed.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string) (BatchStats, error) {
	batchID := uuid.New()
	log := p.Log.With("batch_id", batchID)

	files, err := ingest.ListPending(dir)
	if err != nil {
		return BatchStats{}, err
	}
	stats := BatchStats{Found: len(files)}
	log.Info("batch.start", "dir", dir, "pending", len(files))

	known, err := p.Store.KnownFilenames()
	if err != nil {
		return stats, fmt.Errorf("load known filenames: %w", err)
	}
	guard := ingest.NewDuplicateGuard(known)

	for _, path := range files {
		if ctx.Err() != nil {
			log.Warn("batch.aborted", "remaining", stats.Found-stats.Processed-stats.Skipped-stats.Failed)
			return stats, ctx.Err()
		}

		name := filepath.Base(path)
		if guard.Seen(name) {
			log.Info("process.skipped_duplicate", "filename", name)
			stats.Skipped++
			continue
		}

		res, err := p.processOne(ctx, log, path)
		if err != nil {
			log.Error("process.failed", "filename", name, "err", err)
			stats.Failed++
			continue
		}
		guard.Record(name)
		stats.Processed++

		switch res.Status {
		case constants.StatusOK:
			log.Info("process.ok", "filename", name, "vendor", res.DisplayVendor())
		case constants.StatusUncertain:
			log.Warn("process.uncertain", "filename", name, "vendor", res.DisplayVendor(), "notes", res.Notes)
		default:
			log.Warn("process.manual_review", "filename", name, "notes", res.Notes)
		}
	}

	log.Info("batch.done",
		"processed", stats.Processed, "skipped", stats.Skipped, "failed", stats.Failed)
	return stats, nil
}

// processOne runs extraction for a single file, persists the record and
// archives the source. The engine itself cannot fail; errors here come from
// the collaborators (unreadable file, ledger write).
func (p *Processor) processOne(ctx context.Context, log *slog.Logger, path string) (entity.ExtractionResult, error) {
	name := filepath.Base(path)

	tx, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		return entity.ExtractionResult{}, fmt.Errorf("text extraction: %w", err)
	}

	res := p.Engine.Extract(entity.RawDocument{Filename: name, Text: tx.Text})

	if err := extract.ValidateResult(res); err != nil {
		return res, fmt.Errorf("record validation: %w", err)
	}
	if err := p.Store.Append(res); err != nil {
		return res, fmt.Errorf("ledger append: %w", err)
	}

	dest, err := p.Archive.Move(path, extract.VendorSlug(res.Vendor))
	if err != nil {
		// the record is already persisted; rerunning will dedup on filename
		log.Error("archive.failed", "filename", name, "err", err)
		return res, nil
	}
	log.Info("archive.ok", "filename", name, "dest", dest)
	return res, nil
}
