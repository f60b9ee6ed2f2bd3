package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/steuertools/invoice-extractor/internal/common"
	"github.com/steuertools/invoice-extractor/internal/extract"
	"github.com/steuertools/invoice-extractor/internal/ingest"
	"github.com/steuertools/invoice-extractor/internal/pipeline"
	"github.com/steuertools/invoice-extractor/internal/repository"
)

func newProcessCommand(cfg *common.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Process pending invoices from the inbox folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, cfg, logger)
		},
	}
}

func runProcess(cmd *cobra.Command, cfg *common.Config, logger *slog.Logger) error {
	for _, dir := range []string{cfg.Folders.InboxDir, cfg.Folders.ArchiveDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating folder %s: %w", dir, err)
		}
	}

	ledger := repository.NewXLSXLedger(cfg.Folders.LedgerPath, logger)
	if err := ledger.Init(); err != nil {
		return err
	}

	tolerance, err := decimal.NewFromString(cfg.Engine.Tolerance)
	if err != nil {
		return fmt.Errorf("invalid amount tolerance %q: %w", cfg.Engine.Tolerance, err)
	}

	proc := pipeline.NewProcessor(
		logger,
		extract.NewPDFTextExtractor(cfg.Engine.MaxPages),
		extract.NewEngine(extract.Config{
			SearchWindow: cfg.Engine.SearchWindow,
			Tolerance:    tolerance,
		}),
		ledger,
		ingest.NewArchiver(cfg.Folders.ArchiveDir),
	)

	stats, err := proc.ProcessDirectory(cmd.Context(), cfg.Folders.InboxDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Processing complete!")
	fmt.Fprintf(out, "  Found:     %d\n", stats.Found)
	fmt.Fprintf(out, "  Processed: %d\n", stats.Processed)
	fmt.Fprintf(out, "  Skipped:   %d\n", stats.Skipped)
	fmt.Fprintf(out, "  Failed:    %d\n", stats.Failed)
	fmt.Fprintf(out, "  Ledger:    %s\n", cfg.Folders.LedgerPath)
	return nil
}
