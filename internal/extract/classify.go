package extract

import (
	"github.com/steuertools/invoice-extractor/constants"
)

// FieldConfidences collects the final per-field provenance tags feeding the
// overall status decision.
type FieldConfidences struct {
	InvoiceNumber constants.Confidence
	Date          constants.Confidence
	Vendor        constants.Confidence
	Net           constants.Confidence
	VATAmount     constants.Confidence
	Gross         constants.Confidence
}

// Classify aggregates field confidences and the reconciliation outcome into
// the overall status. The policy is an ordered decision table, first match
// wins:
//
//  1. every field exact and the amounts reconcile        -> OK
//  2. net and gross present, vendor and date present     -> UNCERTAIN
//  3. anything else                                      -> MANUAL_REVIEW_NEEDED
//
// The VAT amount is not required for UNCERTAIN: it is derivable from net and
// gross, so its absence alone does not force a manual review.
//
// Pure function of its inputs; no hidden state.
func Classify(f FieldConfidences, reconciled bool) constants.Status {
	exact := constants.ConfidenceExact
	rules := []struct {
		match  func() bool
		status constants.Status
	}{
		{
			match: func() bool {
				return reconciled &&
					f.InvoiceNumber == exact && f.Date == exact && f.Vendor == exact &&
					f.Net == exact && f.VATAmount == exact && f.Gross == exact
			},
			status: constants.StatusOK,
		},
		{
			match: func() bool {
				return f.Net.Present() && f.Gross.Present() &&
					f.Vendor.Present() && f.Date.Present()
			},
			status: constants.StatusUncertain,
		},
	}
	for _, r := range rules {
		if r.match() {
			return r.status
		}
	}
	return constants.StatusManualReview
}
