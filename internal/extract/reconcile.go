package extract

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/steuertools/invoice-extractor/constants"
)

// DefaultTolerance is how far net + VAT may drift from gross (rounding on the
// invoice itself) before the amounts count as inconsistent: two cents.
var DefaultTolerance = decimal.New(2, -2)

// Reconciliation is the outcome of cross-checking net, VAT amount and gross.
// Consistent is true only when all three values are present (extracted or
// derived) and net + VAT equals gross within tolerance.
type Reconciliation struct {
	Consistent bool
	Notes      []string
}

// Reconcile cross-checks the candidate amounts and mutates them in place:
//
//   - all three present: verify net + VAT = gross; on failure every monetary
//     confidence drops to heuristic and a note records the discrepancy. The
//     values themselves are never silently corrected.
//   - exactly one missing and the VAT rate known: derive it algebraically
//     (net = gross / (1 + rate), VAT = gross - net) and tag it heuristic.
//   - otherwise: nothing to derive, reconciliation fails.
func Reconcile(a *Amounts, tolerance decimal.Decimal) Reconciliation {
	if tolerance.Sign() <= 0 {
		tolerance = DefaultTolerance
	}

	missing := 0
	for _, c := range []AmountCandidate{a.Net, a.VATAmount, a.Gross} {
		if !c.Confidence.Present() {
			missing++
		}
	}

	switch {
	case missing == 0:
		return checkSum(a, tolerance)
	case missing == 1 && a.VATRate.Confidence.Present():
		rec := derive(a)
		if !rec.Consistent {
			return rec
		}
		sum := checkSum(a, tolerance)
		sum.Notes = append(rec.Notes, sum.Notes...)
		return sum
	default:
		return Reconciliation{}
	}
}

func checkSum(a *Amounts, tolerance decimal.Decimal) Reconciliation {
	diff := a.Net.Value.Add(a.VATAmount.Value).Sub(a.Gross.Value).Abs()
	if diff.LessThanOrEqual(tolerance) {
		return Reconciliation{Consistent: true}
	}
	a.Net.Confidence = constants.ConfidenceHeuristic
	a.VATAmount.Confidence = constants.ConfidenceHeuristic
	a.Gross.Confidence = constants.ConfidenceHeuristic
	return Reconciliation{
		Notes: []string{fmt.Sprintf(
			"Amount validation failed: net %s + VAT %s differs from gross %s by %s",
			a.Net.Value.StringFixed(2), a.VATAmount.Value.StringFixed(2),
			a.Gross.Value.StringFixed(2), diff.StringFixed(2))},
	}
}

// derive fills in the single absent amount from the VAT rate.
func derive(a *Amounts) Reconciliation {
	factor := decimal.NewFromInt(1).Add(a.VATRate.Value.Div(decimal.NewFromInt(100)))
	switch {
	case !a.Net.Confidence.Present():
		if !a.Gross.Confidence.Present() {
			return Reconciliation{}
		}
		a.Net = AmountCandidate{
			Value:      a.Gross.Value.DivRound(factor, 2),
			Confidence: constants.ConfidenceHeuristic,
		}
		return Reconciliation{
			Consistent: true,
			Notes:      []string{fmt.Sprintf("Net %s derived from gross via %s%% rate", a.Net.Value.StringFixed(2), a.VATRate.Value.String())},
		}
	case !a.VATAmount.Confidence.Present():
		a.VATAmount = AmountCandidate{
			Value:      a.Gross.Value.Sub(a.Net.Value),
			Confidence: constants.ConfidenceHeuristic,
		}
		return Reconciliation{
			Consistent: true,
			Notes:      []string{fmt.Sprintf("VAT amount %s derived as gross minus net", a.VATAmount.Value.StringFixed(2))},
		}
	default:
		a.Gross = AmountCandidate{
			Value:      a.Net.Value.Add(a.VATAmount.Value),
			Confidence: constants.ConfidenceHeuristic,
		}
		return Reconciliation{
			Consistent: true,
			Notes:      []string{fmt.Sprintf("Gross %s derived as net plus VAT", a.Gross.Value.StringFixed(2))},
		}
	}
}
