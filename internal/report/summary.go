package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/steuertools/invoice-extractor/constants"
	"github.com/steuertools/invoice-extractor/internal/repository"
)

// Summary aggregates the ledger for the report command. Rows the user edited
// into unparseable shapes are counted but excluded from the affected metric.
type Summary struct {
	TotalInvoices int
	TotalGross    decimal.Decimal
	StatusCounts  map[constants.Status]int
	VendorCounts  map[string]int
	MonthCounts   map[string]int // "YYYY-MM"
}

type Count struct {
	Key   string
	Count int
}

// Build computes the summary from raw ledger rows.
func Build(rows []repository.LedgerRow) Summary {
	s := Summary{
		TotalGross:   decimal.Zero,
		StatusCounts: make(map[constants.Status]int),
		VendorCounts: make(map[string]int),
		MonthCounts:  make(map[string]int),
	}
	for _, row := range rows {
		s.TotalInvoices++

		vendor := row.Vendor
		if vendor == "" {
			vendor = "Unknown Vendor"
		}
		s.VendorCounts[vendor]++

		if t, err := time.Parse("02.01.2006", row.Date); err == nil {
			s.MonthCounts[t.Format("2006-01")]++
		}
		if g, err := decimal.NewFromString(row.Gross); err == nil {
			s.TotalGross = s.TotalGross.Add(g)
		}
		if st := constants.Status(row.Status); st == constants.StatusOK ||
			st == constants.StatusUncertain || st == constants.StatusManualReview {
			s.StatusCounts[st]++
		}
	}
	return s
}

// TopVendors returns the n most frequent vendors, ties broken by name.
func (s Summary) TopVendors(n int) []Count {
	return topCounts(s.VendorCounts, n, false)
}

// RecentMonths returns up to n months, most recent first.
func (s Summary) RecentMonths(n int) []Count {
	out := topCounts(s.MonthCounts, len(s.MonthCounts), true)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func topCounts(m map[string]int, n int, byKeyDesc bool) []Count {
	out := make([]Count, 0, len(m))
	for k, c := range m {
		out = append(out, Count{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if byKeyDesc {
			return out[i].Key > out[j].Key
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
