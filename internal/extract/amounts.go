package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/steuertools/invoice-extractor/constants"
)

// Monetary tokens in German locale: "1.234,56", "1 234,56", "1234,56" and the
// occasional dot-decimal "1234.56". The percent pattern covers VAT rates.
var (
	reCurrency = regexp.MustCompile(`\d{1,3}(?:[. ]\d{3})+,\d{2}|\d+,\d{2}|\d+\.\d{2}`)
	rePercent  = regexp.MustCompile(`\b\d{1,2}\s*%`)
)

// Anchor keywords per amount kind, most specific first so "Summe Netto" is
// tried before the bare "Summe" fallback of the gross list.
var (
	grossKeywords = []string{
		"SUMME EUR", "Gesamtbetrag", "Rechnungsbetrag", "Bruttobetrag",
		"Endbetrag", "Brutto", "Gesamt", "Summe", "Total",
	}
	netKeywords = []string{
		"Summe Netto", "Nettobetrag", "Zwischensumme", "Netto",
	}
	vatKeywords = []string{
		"Mehrwertsteuer", "Umsatzsteuer", "MwSt", "USt",
	}
)

// Amounts bundles the monetary candidates for one document. Absent fields
// carry none confidence.
type Amounts struct {
	Net       AmountCandidate
	VATAmount AmountCandidate
	Gross     AmountCandidate
	VATRate   AmountCandidate // percent value, e.g. 19
}

// ParseGermanAmount converts a matched monetary token to a decimal. The comma
// is the decimal separator; dots and spaces inside comma-style numbers are
// thousands separators.
func ParseGermanAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "€", ""))
	if s == "" {
		return decimal.Zero, false
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, " ", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// MatchAmounts runs the keyword-proximity search for gross, net and VAT
// amount plus the VAT rate. When no gross keyword yields a value, the largest
// monetary token in the whole document is used as a heuristic gross guess;
// net and VAT amount are never guessed.
func MatchAmounts(text string, window int) Amounts {
	a := Amounts{
		Net:       anchoredAmount(text, netKeywords, window),
		VATAmount: anchoredAmount(text, vatKeywords, window),
		Gross:     anchoredAmount(text, grossKeywords, window),
		VATRate:   matchVATRate(text, window),
	}
	if a.Gross.Confidence == constants.ConfidenceNone {
		a.Gross = largestAmount(text)
	}
	return a
}

func anchoredAmount(text string, anchors []string, window int) AmountCandidate {
	for _, c := range SearchAnchored(text, anchors, reCurrency, window) {
		v, ok := ParseGermanAmount(c.Raw)
		if !ok || v.Sign() <= 0 {
			continue
		}
		return AmountCandidate{Raw: c.Raw, Value: v, Offset: c.Offset, Confidence: c.Confidence}
	}
	return noAmount()
}

// largestAmount scans the entire document for monetary tokens and returns the
// largest as a heuristic candidate. This is the last resort when no keyword
// anchored the gross amount; it is deliberately never preferred over an
// anchored match, which would re-introduce the line-item-price failure mode.
func largestAmount(text string) AmountCandidate {
	best := noAmount()
	for _, loc := range reCurrency.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		v, ok := ParseGermanAmount(raw)
		if !ok || v.Sign() <= 0 {
			continue
		}
		if best.Confidence == constants.ConfidenceNone || v.GreaterThan(best.Value) {
			best = AmountCandidate{
				Raw:        raw,
				Value:      v,
				Offset:     loc[0],
				Confidence: constants.ConfidenceHeuristic,
			}
		}
	}
	return best
}

// matchVATRate picks the percentage token nearest to any VAT keyword, looking
// both before and after the keyword within the search window. With no VAT
// keyword in sight the rate stays unset rather than guessed.
func matchVATRate(text string, window int) AmountCandidate {
	anchors := anchorOffsets(text, vatKeywords)
	if len(anchors) == 0 {
		return noAmount()
	}
	best := noAmount()
	bestDist := window + 1
	for _, loc := range rePercent.FindAllStringIndex(text, -1) {
		for _, a := range anchors {
			dist := loc[0] - a
			if dist < 0 {
				dist = a - loc[1]
			}
			if dist < 0 {
				dist = 0
			}
			if dist >= bestDist {
				continue
			}
			raw := text[loc[0]:loc[1]]
			v, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(raw, "%")))
			if err != nil {
				continue
			}
			best = AmountCandidate{
				Raw:        raw,
				Value:      v,
				Offset:     loc[0],
				Confidence: constants.ConfidenceExact,
			}
			bestDist = dist
		}
	}
	return best
}
