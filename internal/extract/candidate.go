package extract

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/steuertools/invoice-extractor/constants"
)

// TextCandidate is a matched substring with a string value, e.g. an invoice
// number or vendor name. Candidates are transient; the engine keeps exactly
// one per field in the final result.
type TextCandidate struct {
	Raw        string
	Value      string
	Offset     int
	Confidence constants.Confidence
}

// DateCandidate is a matched date token.
type DateCandidate struct {
	Raw        string
	Value      time.Time
	Offset     int
	Confidence constants.Confidence
}

// AmountCandidate is a matched monetary or percentage token.
type AmountCandidate struct {
	Raw        string
	Value      decimal.Decimal
	Offset     int
	Confidence constants.Confidence
}

func noText() TextCandidate     { return TextCandidate{Confidence: constants.ConfidenceNone} }
func noDate() DateCandidate     { return DateCandidate{Confidence: constants.ConfidenceNone} }
func noAmount() AmountCandidate { return AmountCandidate{Confidence: constants.ConfidenceNone} }
