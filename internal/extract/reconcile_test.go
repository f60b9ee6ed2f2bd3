package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuertools/invoice-extractor/constants"
)

func exactAmt(s string) AmountCandidate {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return AmountCandidate{Raw: s, Value: v, Confidence: constants.ConfidenceExact}
}

func TestReconcile_AllPresentConsistent(t *testing.T) {
	a := Amounts{Net: exactAmt("100.00"), VATAmount: exactAmt("19.00"), Gross: exactAmt("119.00")}
	rec := Reconcile(&a, DefaultTolerance)

	assert.True(t, rec.Consistent)
	assert.Empty(t, rec.Notes)
	assert.Equal(t, constants.ConfidenceExact, a.Net.Confidence)
}

func TestReconcile_WithinTolerance(t *testing.T) {
	// One cent of rounding drift on the invoice itself.
	a := Amounts{Net: exactAmt("84.03"), VATAmount: exactAmt("15.96"), Gross: exactAmt("100.00")}
	rec := Reconcile(&a, DefaultTolerance)
	assert.True(t, rec.Consistent)
}

func TestReconcile_MismatchDowngradesConfidence(t *testing.T) {
	a := Amounts{Net: exactAmt("100.00"), VATAmount: exactAmt("19.00"), Gross: exactAmt("130.00")}
	rec := Reconcile(&a, DefaultTolerance)

	assert.False(t, rec.Consistent)
	require.Len(t, rec.Notes, 1)
	assert.Contains(t, rec.Notes[0], "Amount validation failed")
	assert.Equal(t, constants.ConfidenceHeuristic, a.Net.Confidence)
	assert.Equal(t, constants.ConfidenceHeuristic, a.VATAmount.Confidence)
	assert.Equal(t, constants.ConfidenceHeuristic, a.Gross.Confidence)
	assert.Equal(t, "130.00", a.Gross.Value.StringFixed(2), "values are never corrected")
}

func TestReconcile_DerivesVATAmountFromRate(t *testing.T) {
	a := Amounts{
		Net:     exactAmt("100.00"),
		Gross:   exactAmt("119.00"),
		VATRate: exactAmt("19"),
	}
	rec := Reconcile(&a, DefaultTolerance)

	assert.True(t, rec.Consistent)
	assert.Equal(t, constants.ConfidenceHeuristic, a.VATAmount.Confidence)
	assert.Equal(t, "19.00", a.VATAmount.Value.StringFixed(2))
	require.Len(t, rec.Notes, 1)
	assert.Contains(t, rec.Notes[0], "derived")
}

func TestReconcile_DerivesNetFromRate(t *testing.T) {
	a := Amounts{
		VATAmount: exactAmt("19.00"),
		Gross:     exactAmt("119.00"),
		VATRate:   exactAmt("19"),
	}
	rec := Reconcile(&a, DefaultTolerance)

	assert.True(t, rec.Consistent)
	assert.Equal(t, constants.ConfidenceHeuristic, a.Net.Confidence)
	assert.Equal(t, "100.00", a.Net.Value.StringFixed(2))
}

func TestReconcile_DerivesGrossFromRate(t *testing.T) {
	a := Amounts{
		Net:       exactAmt("100.00"),
		VATAmount: exactAmt("19.00"),
		VATRate:   exactAmt("19"),
	}
	rec := Reconcile(&a, DefaultTolerance)

	assert.True(t, rec.Consistent)
	assert.Equal(t, constants.ConfidenceHeuristic, a.Gross.Confidence)
	assert.Equal(t, "119.00", a.Gross.Value.StringFixed(2))
}

func TestReconcile_OneMissingNoRate(t *testing.T) {
	a := Amounts{Net: exactAmt("100.00"), Gross: exactAmt("119.00")}
	rec := Reconcile(&a, DefaultTolerance)

	assert.False(t, rec.Consistent)
	assert.False(t, a.VATAmount.Confidence.Present(), "nothing derivable without a rate")
}

func TestReconcile_TwoMissing(t *testing.T) {
	a := Amounts{Gross: exactAmt("119.00"), VATRate: exactAmt("19")}
	rec := Reconcile(&a, DefaultTolerance)
	assert.False(t, rec.Consistent)
}
