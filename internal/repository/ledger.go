package repository

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/steuertools/invoice-extractor/constants"
	"github.com/steuertools/invoice-extractor/internal/entity"
)

// RecordStore is the persistence boundary for finalized extraction records.
// It is read once per batch for duplicate detection and appended to once per
// processed document.
type RecordStore interface {
	KnownFilenames() (map[string]struct{}, error)
	Append(res entity.ExtractionResult) error
}

// LedgerRow is one persisted record as read back from the workbook. All
// values are strings; the workbook is user-editable and may contain anything.
type LedgerRow struct {
	Filename      string
	Date          string
	Vendor        string
	InvoiceNumber string
	Net           string
	VATRate       string
	VATAmount     string
	Gross         string
	Category      string
	Status        string
	Notes         string
}

const sheetName = "Invoices"

var headers = []string{
	"Filename", "Date", "Vendor", "Invoice_Number", "Net",
	"VAT_Rate", "VAT_Amount", "Gross", "Category",
	"Extraction_Status", "Notes",
}

// XLSXLedger stores records in a single-sheet workbook that doubles as the
// user-facing tax tracking spreadsheet.
type XLSXLedger struct {
	path string
	log  *slog.Logger
}

func NewXLSXLedger(path string, logger *slog.Logger) *XLSXLedger {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXLedger{path: path, log: logger}
}

// Init creates the workbook with headers, column widths and the category
// dropdown if it does not exist yet. Safe to call repeatedly.
func (l *XLSXLedger) Init() error {
	if _, err := os.Stat(l.path); err == nil {
		return nil
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
		_ = f.SetCellStyle(sheetName, cell, cell, boldStyle)
	}

	widths := []struct {
		col   string
		width float64
	}{
		{"A", 30}, {"B", 12}, {"C", 25}, {"D", 15}, {"E", 12},
		{"F", 10}, {"G", 12}, {"H", 12}, {"I", 15}, {"J", 20}, {"K", 40},
	}
	for _, w := range widths {
		_ = f.SetColWidth(sheetName, w.col, w.col, w.width)
	}

	// Category dropdown for the user-editable column.
	dv := excelize.NewDataValidation(true)
	dv.Sqref = "I2:I1000"
	if err := dv.SetDropList(constants.CategoriesAsStrings()); err != nil {
		return fmt.Errorf("category dropdown: %w", err)
	}
	if err := f.AddDataValidation(sheetName, dv); err != nil {
		return err
	}

	if err := f.SaveAs(l.path); err != nil {
		return fmt.Errorf("create ledger: %w", err)
	}
	l.log.Info("ledger.created", "path", l.path)
	return nil
}

// KnownFilenames returns the set of filenames already recorded, compared
// case-sensitively by the duplicate guard.
func (l *XLSXLedger) KnownFilenames() (map[string]struct{}, error) {
	known := make(map[string]struct{})
	if _, err := os.Stat(l.path); err != nil {
		return known, nil
	}

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		known[row[0]] = struct{}{}
	}
	return known, nil
}

// Append writes one finalized record as a new row. UNCERTAIN rows are filled
// yellow and MANUAL_REVIEW_NEEDED rows red so they stand out for review.
func (l *XLSXLedger) Append(res entity.ExtractionResult) error {
	if err := l.Init(); err != nil {
		return err
	}

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}
	next := len(rows) + 1

	values := []string{
		res.Filename,
		formatDate(res),
		res.DisplayVendor(),
		res.InvoiceNumber,
		decimalOrEmpty(res.Net),
		rateOrEmpty(res),
		decimalOrEmpty(res.VATAmount),
		decimalOrEmpty(res.Gross),
		res.Category,
		string(res.Status),
		res.Notes,
	}
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, next)
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}

	if fill := statusFill(res.Status); fill != "" {
		styleID, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
		})
		if err != nil {
			return err
		}
		first, _ := excelize.CoordinatesToCellName(1, next)
		last, _ := excelize.CoordinatesToCellName(len(values), next)
		if err := f.SetCellStyle(sheetName, first, last, styleID); err != nil {
			return err
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	l.log.Info("ledger.appended", "filename", res.Filename, "status", string(res.Status), "row", next)
	return nil
}

// Rows reads every record for reporting.
func (l *XLSXLedger) Rows() ([]LedgerRow, error) {
	if _, err := os.Stat(l.path); err != nil {
		return nil, nil
	}

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var out []LedgerRow
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		out = append(out, LedgerRow{
			Filename:      cellAt(row, 0),
			Date:          cellAt(row, 1),
			Vendor:        cellAt(row, 2),
			InvoiceNumber: cellAt(row, 3),
			Net:           cellAt(row, 4),
			VATRate:       cellAt(row, 5),
			VATAmount:     cellAt(row, 6),
			Gross:         cellAt(row, 7),
			Category:      cellAt(row, 8),
			Status:        cellAt(row, 9),
			Notes:         cellAt(row, 10),
		})
	}
	return out, nil
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func statusFill(s constants.Status) string {
	switch s {
	case constants.StatusUncertain:
		return "FFFF00"
	case constants.StatusManualReview:
		return "FF0000"
	default:
		return ""
	}
}

func formatDate(res entity.ExtractionResult) string {
	if res.Date == nil {
		return ""
	}
	return res.Date.Format("02.01.2006")
}

func decimalOrEmpty(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func rateOrEmpty(res entity.ExtractionResult) string {
	if res.VATRate == nil {
		return ""
	}
	return res.VATRate.String() + "%"
}
