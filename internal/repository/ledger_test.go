package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/steuertools/invoice-extractor/constants"
	"github.com/steuertools/invoice-extractor/internal/entity"
)

func testLedger(t *testing.T) *XLSXLedger {
	t.Helper()
	return NewXLSXLedger(filepath.Join(t.TempDir(), "tax_records.xlsx"), nil)
}

func okResult(filename string) entity.ExtractionResult {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	net := decimal.RequireFromString("100.00")
	rate := decimal.NewFromInt(19)
	vat := decimal.RequireFromString("19.00")
	gross := decimal.RequireFromString("119.00")
	return entity.ExtractionResult{
		Filename:      filename,
		InvoiceNumber: "RE-2024-001",
		Date:          &date,
		Vendor:        "Telekom Deutschland GmbH",
		Net:           &net,
		VATRate:       &rate,
		VATAmount:     &vat,
		Gross:         &gross,
		Status:        constants.StatusOK,
	}
}

func TestLedger_InitCreatesWorkbook(t *testing.T) {
	l := testLedger(t)
	require.NoError(t, l.Init())
	require.NoError(t, l.Init(), "second Init must be a no-op")

	f, err := excelize.OpenFile(l.path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, headers, rows[0])
}

func TestLedger_AppendAndReadBack(t *testing.T) {
	l := testLedger(t)
	require.NoError(t, l.Append(okResult("telekom.pdf")))

	rows, err := l.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	got := rows[0]
	assert.Equal(t, "telekom.pdf", got.Filename)
	assert.Equal(t, "15.03.2024", got.Date)
	assert.Equal(t, "Telekom Deutschland GmbH", got.Vendor)
	assert.Equal(t, "RE-2024-001", got.InvoiceNumber)
	assert.Equal(t, "100.00", got.Net)
	assert.Equal(t, "19%", got.VATRate)
	assert.Equal(t, "19.00", got.VATAmount)
	assert.Equal(t, "119.00", got.Gross)
	assert.Equal(t, "OK", got.Status)
}

func TestLedger_AppendManualReviewRow(t *testing.T) {
	l := testLedger(t)
	res := entity.ExtractionResult{
		Filename: "scan.pdf",
		Status:   constants.StatusManualReview,
		Notes:    "No text extracted from document",
	}
	require.NoError(t, l.Append(res))

	rows, err := l.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Unknown Vendor", rows[0].Vendor)
	assert.Equal(t, "", rows[0].Net)
	assert.Equal(t, "MANUAL_REVIEW_NEEDED", rows[0].Status)
	assert.Equal(t, "No text extracted from document", rows[0].Notes)
}

func TestLedger_KnownFilenames(t *testing.T) {
	l := testLedger(t)

	known, err := l.KnownFilenames()
	require.NoError(t, err)
	assert.Empty(t, known, "missing workbook means nothing is known")

	require.NoError(t, l.Append(okResult("a.pdf")))
	require.NoError(t, l.Append(okResult("b.pdf")))

	known, err = l.KnownFilenames()
	require.NoError(t, err)
	assert.Contains(t, known, "a.pdf")
	assert.Contains(t, known, "b.pdf")
	assert.Len(t, known, 2)
}

func TestLedger_AppendPreservesExistingRows(t *testing.T) {
	l := testLedger(t)
	require.NoError(t, l.Append(okResult("a.pdf")))
	require.NoError(t, l.Append(okResult("b.pdf")))

	rows, err := l.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a.pdf", rows[0].Filename)
	assert.Equal(t, "b.pdf", rows[1].Filename)
}

func TestLedger_RowsMissingWorkbook(t *testing.T) {
	rows, err := testLedger(t).Rows()
	require.NoError(t, err)
	assert.Nil(t, rows)
}
