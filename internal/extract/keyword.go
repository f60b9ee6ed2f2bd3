package extract

import (
	"regexp"
	"sort"

	"github.com/steuertools/invoice-extractor/constants"
)

// anchorPattern compiles a keyword into a case-insensitive whole-word pattern.
func anchorPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// SearchAnchored is the keyword-proximity search shared by the anchored
// matchers. For every anchor keyword, in priority order, each occurrence in
// text is scanned for the nearest valueRe match within window bytes after the
// anchor. Candidates are returned in (anchor priority, occurrence) order and
// carry exact confidence, since the anchor vouches for the value's meaning.
func SearchAnchored(text string, anchors []string, valueRe *regexp.Regexp, window int) []TextCandidate {
	var out []TextCandidate
	for _, anchor := range anchors {
		for _, loc := range anchorPattern(anchor).FindAllStringIndex(text, -1) {
			start := loc[1]
			end := start + window
			if end > len(text) {
				end = len(text)
			}
			v := valueRe.FindStringIndex(text[start:end])
			if v == nil {
				continue
			}
			raw := text[start+v[0] : start+v[1]]
			out = append(out, TextCandidate{
				Raw:        raw,
				Value:      raw,
				Offset:     start + v[0],
				Confidence: constants.ConfidenceExact,
			})
		}
	}
	return out
}

// anchorOffsets returns the starting offsets of every occurrence of every
// anchor keyword, sorted ascending.
func anchorOffsets(text string, anchors []string) []int {
	var offs []int
	for _, anchor := range anchors {
		for _, loc := range anchorPattern(anchor).FindAllStringIndex(text, -1) {
			offs = append(offs, loc[0])
		}
	}
	sort.Ints(offs)
	return offs
}

// anchorSpans returns the [start, end) span of every occurrence of every
// anchor keyword, sorted by start.
func anchorSpans(text string, anchors []string) [][2]int {
	var spans [][2]int
	for _, anchor := range anchors {
		for _, loc := range anchorPattern(anchor).FindAllStringIndex(text, -1) {
			spans = append(spans, [2]int{loc[0], loc[1]})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })
	return spans
}
