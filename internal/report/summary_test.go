package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuertools/invoice-extractor/constants"
	"github.com/steuertools/invoice-extractor/internal/repository"
)

func sampleRows() []repository.LedgerRow {
	return []repository.LedgerRow{
		{Filename: "a.pdf", Date: "15.03.2024", Vendor: "Telekom Deutschland GmbH", Gross: "119.00", Status: "OK"},
		{Filename: "b.pdf", Date: "20.03.2024", Vendor: "Telekom Deutschland GmbH", Gross: "59.50", Status: "OK"},
		{Filename: "c.pdf", Date: "01.04.2024", Vendor: "Acme GmbH", Gross: "10.00", Status: "UNCERTAIN"},
		{Filename: "d.pdf", Date: "", Vendor: "", Gross: "", Status: "MANUAL_REVIEW_NEEDED"},
	}
}

func TestBuild(t *testing.T) {
	s := Build(sampleRows())

	assert.Equal(t, 4, s.TotalInvoices)
	assert.Equal(t, "188.50", s.TotalGross.StringFixed(2))
	assert.Equal(t, 2, s.StatusCounts[constants.StatusOK])
	assert.Equal(t, 1, s.StatusCounts[constants.StatusUncertain])
	assert.Equal(t, 1, s.StatusCounts[constants.StatusManualReview])
	assert.Equal(t, 2, s.VendorCounts["Telekom Deutschland GmbH"])
	assert.Equal(t, 1, s.VendorCounts["Unknown Vendor"])
	assert.Equal(t, 2, s.MonthCounts["2024-03"])
	assert.Equal(t, 1, s.MonthCounts["2024-04"])
}

func TestBuild_SkipsUnparseableUserEdits(t *testing.T) {
	rows := []repository.LedgerRow{
		{Filename: "a.pdf", Date: "März 2024", Gross: "viel", Status: "erledigt"},
	}
	s := Build(rows)

	assert.Equal(t, 1, s.TotalInvoices)
	assert.True(t, s.TotalGross.IsZero())
	assert.Empty(t, s.StatusCounts)
	assert.Empty(t, s.MonthCounts)
}

func TestTopVendors(t *testing.T) {
	s := Build(sampleRows())
	top := s.TopVendors(2)

	require.Len(t, top, 2)
	assert.Equal(t, Count{Key: "Telekom Deutschland GmbH", Count: 2}, top[0])
	// Tie between Acme and Unknown Vendor breaks by name.
	assert.Equal(t, Count{Key: "Acme GmbH", Count: 1}, top[1])
}

func TestRecentMonths(t *testing.T) {
	s := Build(sampleRows())
	months := s.RecentMonths(1)

	require.Len(t, months, 1)
	assert.Equal(t, Count{Key: "2024-04", Count: 1}, months[0])
}

func TestBuild_Empty(t *testing.T) {
	s := Build(nil)
	assert.Equal(t, 0, s.TotalInvoices)
	assert.True(t, s.TotalGross.IsZero())
}
