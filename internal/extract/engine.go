package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/steuertools/invoice-extractor/constants"
	"github.com/steuertools/invoice-extractor/internal/entity"
)

// Config holds the engine's tunables.
type Config struct {
	SearchWindow int             // bytes scanned around a keyword anchor, default 80
	Tolerance    decimal.Decimal // reconciliation tolerance, default 0.02
}

// Engine runs the full matcher chain over one document. It is stateless and
// side-effect free: identical input text yields an identical result.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.SearchWindow <= 0 {
		cfg.SearchWindow = 80
	}
	if cfg.Tolerance.Sign() <= 0 {
		cfg.Tolerance = DefaultTolerance
	}
	return &Engine{cfg: cfg}
}

// Extract normalizes the document text, runs the field matchers, reconciles
// the amounts and classifies the result. It never fails; degraded input
// surfaces as missing fields and a MANUAL_REVIEW_NEEDED status.
func (e *Engine) Extract(doc entity.RawDocument) entity.ExtractionResult {
	res := entity.ExtractionResult{Filename: doc.Filename}

	text := Normalize(doc.Text)
	if text == "" {
		res.Status = constants.StatusManualReview
		res.Notes = "No text extracted from document"
		return res
	}

	inv := MatchInvoiceNumber(text)
	date := MatchDate(text, e.cfg.SearchWindow)
	vendor := MatchVendor(text)
	amounts := MatchAmounts(text, e.cfg.SearchWindow)
	rec := Reconcile(&amounts, e.cfg.Tolerance)

	var notes []string
	if inv.Confidence == constants.ConfidenceNone {
		notes = append(notes, "Invoice number not found")
	}
	if date.Confidence == constants.ConfidenceNone {
		notes = append(notes, "Date not found")
	}
	if vendor.Confidence == constants.ConfidenceNone {
		notes = append(notes, "Vendor name unclear")
	}
	notes = append(notes, rec.Notes...)
	if !amounts.Net.Confidence.Present() || !amounts.VATAmount.Confidence.Present() || !amounts.Gross.Confidence.Present() {
		notes = append(notes, "Missing amount data")
	}

	res.InvoiceNumber = inv.Value
	if date.Confidence.Present() {
		d := date.Value
		res.Date = &d
	}
	res.Vendor = vendor.Value
	res.Net = amountPtr(amounts.Net)
	res.VATRate = amountPtr(amounts.VATRate)
	res.VATAmount = amountPtr(amounts.VATAmount)
	res.Gross = amountPtr(amounts.Gross)
	res.Status = Classify(FieldConfidences{
		InvoiceNumber: inv.Confidence,
		Date:          date.Confidence,
		Vendor:        vendor.Confidence,
		Net:           amounts.Net.Confidence,
		VATAmount:     amounts.VATAmount.Confidence,
		Gross:         amounts.Gross.Confidence,
	}, rec.Consistent)
	res.Notes = strings.Join(notes, "; ")
	return res
}

func amountPtr(c AmountCandidate) *decimal.Decimal {
	if !c.Confidence.Present() {
		return nil
	}
	v := c.Value
	return &v
}
