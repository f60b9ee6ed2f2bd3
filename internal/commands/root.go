package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/steuertools/invoice-extractor/internal/common"
)

// NewRootCommand creates the CLI root with all subcommands registered.
func NewRootCommand(cfg *common.Config, logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "invoicectl",
		Short: "Extract tax-relevant fields from German vendor invoices",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newProcessCommand(cfg, logger))
	rootCmd.AddCommand(newReportCommand(cfg, logger))
	rootCmd.AddCommand(newListCommand(cfg))

	return rootCmd
}
