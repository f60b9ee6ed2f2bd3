package extract

import (
	"regexp"
	"strings"

	"github.com/steuertools/invoice-extractor/constants"
)

// Labeled invoice numbers: "Rechnungsnummer: RE-2024-001", "Rechnungs-Nr. 4711",
// "Rechnung Nr: 2024/17", "Invoice No. INV-9".
var reInvoiceLabel = regexp.MustCompile(
	`(?i)(?:Rechnungs?[-\s]?(?:Nr\.?|Nummer)|Invoice\s+(?:No\.?|Number))\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9\-/]+)`)

// Generic invoice-number shape used when no label is present: a letter prefix
// with digit groups, or dashed digit groups ("RE-2024-001", "2024-0815").
var reInvoiceShape = regexp.MustCompile(
	`\b(?:[A-Z]{1,5}[-/]?\d{3,}(?:[-/]\d+)*|\d{4,}[-/]\d+(?:[-/]\d+)*)\b`)

// MatchInvoiceNumber prefers a label-anchored token; without one it falls
// back to the first standalone token matching the generic shape.
func MatchInvoiceNumber(text string) TextCandidate {
	for _, loc := range reInvoiceLabel.FindAllStringSubmatchIndex(text, -1) {
		token := text[loc[2]:loc[3]]
		if !containsDigit(token) {
			continue
		}
		return TextCandidate{
			Raw:        token,
			Value:      strings.TrimRight(token, ".,:"),
			Offset:     loc[2],
			Confidence: constants.ConfidenceExact,
		}
	}
	if loc := reInvoiceShape.FindStringIndex(text); loc != nil {
		raw := text[loc[0]:loc[1]]
		return TextCandidate{
			Raw:        raw,
			Value:      raw,
			Offset:     loc[0],
			Confidence: constants.ConfidenceHeuristic,
		}
	}
	return noText()
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
