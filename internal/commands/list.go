package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/steuertools/invoice-extractor/internal/common"
	"github.com/steuertools/invoice-extractor/internal/ingest"
)

func newListCommand(cfg *common.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending invoices without processing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(cfg.Folders.InboxDir, 0o755); err != nil {
				return fmt.Errorf("creating folder %s: %w", cfg.Folders.InboxDir, err)
			}
			paths, err := ingest.ListPending(cfg.Folders.InboxDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(paths) == 0 {
				fmt.Fprintf(out, "No PDF files found in %s.\n", cfg.Folders.InboxDir)
				return nil
			}
			fmt.Fprintf(out, "Found %d PDF(s) in %s:\n", len(paths), cfg.Folders.InboxDir)
			for _, p := range paths {
				size := int64(0)
				if st, err := os.Stat(p); err == nil {
					size = st.Size()
				}
				fmt.Fprintf(out, "  %s (%.1f KB)\n", filepath.Base(p), float64(size)/1024)
			}
			return nil
		},
	}
}
