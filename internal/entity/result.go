package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/steuertools/invoice-extractor/constants"
)

// ExtractionResult is the finalized record for one invoice. Built once per
// document and never mutated afterwards; the ledger persists it verbatim.
//
// Invariant: Status == OK implies Net, VATAmount and Gross are all set and
// Net + VATAmount equals Gross within the reconciliation tolerance.
type ExtractionResult struct {
	Filename      string
	InvoiceNumber string
	Date          *time.Time
	Vendor        string
	Net           *decimal.Decimal
	VATRate       *decimal.Decimal // percent, e.g. 19
	VATAmount     *decimal.Decimal
	Gross         *decimal.Decimal
	Category      string // user-editable, left empty by extraction
	Status        constants.Status
	Notes         string
}

// DisplayVendor returns the vendor name or the fixed placeholder when no
// vendor could be extracted.
func (r ExtractionResult) DisplayVendor() string {
	if r.Vendor == "" {
		return "Unknown Vendor"
	}
	return r.Vendor
}
