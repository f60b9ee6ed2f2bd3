package extract

import (
	"regexp"
	"strings"

	"github.com/steuertools/invoice-extractor/constants"
)

// vendorScanLines bounds the vendor search to the letterhead region.
const vendorScanLines = 15

// A vendor is a run of capitalized words immediately followed by a German
// legal-entity suffix. Compound forms ("GmbH & Co. KG") are tried before
// their prefixes so the full suffix is captured.
var reVendor = regexp.MustCompile(
	`(?:(?:[A-ZÄÖÜ][\pL\d&'.\-]*|&)\s+)+` +
		`(?:(?:GmbH|AG|UG)\s*&\s*Co\.\s*(?:KGaA|KG)\b|GmbH\b|KGaA\b|AG\b|KG\b|GbR\b|UG\b|OHG\b|e\.K\.|e\.V\.)`)

// Sender labels sometimes prefix the letterhead line.
var reSenderPrefix = regexp.MustCompile(`(?i)^(?:Von|From|Lieferant|Aussteller|Verkäufer)\s*:\s*`)

// MatchVendor scans the top of the document for a capitalized sequence ending
// in a legal-entity suffix. The first line with a match wins; within that
// line, the longest match. No qualifying sequence means no vendor.
func MatchVendor(text string) TextCandidate {
	offset := 0
	for i, line := range strings.Split(text, "\n") {
		if i >= vendorScanLines {
			break
		}
		stripped := reSenderPrefix.ReplaceAllString(line, "")
		shift := len(line) - len(stripped)

		best := noText()
		for _, loc := range reVendor.FindAllStringIndex(stripped, -1) {
			raw := strings.TrimSpace(stripped[loc[0]:loc[1]])
			if len(raw) <= len(best.Raw) {
				continue
			}
			best = TextCandidate{
				Raw:        raw,
				Value:      normalizeVendorSpacing(raw),
				Offset:     offset + shift + loc[0],
				Confidence: constants.ConfidenceExact,
			}
		}
		if best.Confidence == constants.ConfidenceExact {
			return best
		}
		offset += len(line) + 1
	}
	return noText()
}

var reInnerSpace = regexp.MustCompile(`\s+`)

func normalizeVendorSpacing(s string) string {
	return reInnerSpace.ReplaceAllString(s, " ")
}
