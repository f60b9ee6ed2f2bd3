package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/steuertools/invoice-extractor/constants"
	"github.com/steuertools/invoice-extractor/internal/common"
	"github.com/steuertools/invoice-extractor/internal/report"
	"github.com/steuertools/invoice-extractor/internal/repository"
)

func newReportCommand(cfg *common.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show summary statistics from the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger := repository.NewXLSXLedger(cfg.Folders.LedgerPath, logger)
			rows, err := ledger.Rows()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No records yet. Process some invoices first.")
				return nil
			}

			s := report.Build(rows)
			fmt.Fprintln(out, "INVOICE TRACKING REPORT")
			fmt.Fprintf(out, "\nTotal Invoices: %d\n", s.TotalInvoices)
			fmt.Fprintf(out, "Total Gross Amount: %s €\n", s.TotalGross.StringFixed(2))

			fmt.Fprintln(out, "\nExtraction Status:")
			for _, st := range constants.AllStatuses {
				if c := s.StatusCounts[st]; c > 0 {
					fmt.Fprintf(out, "  %s: %d\n", st, c)
				}
			}

			fmt.Fprintln(out, "\nTop Vendors:")
			for _, v := range s.TopVendors(10) {
				fmt.Fprintf(out, "  %s: %d invoice(s)\n", v.Key, v.Count)
			}

			fmt.Fprintln(out, "\nInvoices by Month:")
			for _, m := range s.RecentMonths(12) {
				fmt.Fprintf(out, "  %s: %d invoice(s)\n", m.Key, m.Count)
			}
			return nil
		},
	}
}
