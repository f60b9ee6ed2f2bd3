package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/steuertools/invoice-extractor/constants"
)

// German date shapes: "15.03.2024", "15.03.24" and spelled months such as
// "15. März 2024".
var (
	reNumericDate = regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{4}|\d{2})\b`)
	reSpelledDate = regexp.MustCompile(`(?i)\b(\d{1,2})\.?\s*(Januar|Februar|März|Maerz|April|Mai|Juni|Juli|August|September|Oktober|November|Dezember)\s+(\d{4})\b`)
)

var germanMonths = map[string]time.Month{
	"januar": time.January, "februar": time.February,
	"märz": time.March, "maerz": time.March,
	"april": time.April, "mai": time.May, "juni": time.June,
	"juli": time.July, "august": time.August, "september": time.September,
	"oktober": time.October, "november": time.November, "dezember": time.December,
}

// dateLabels anchor the invoice date among other dates on the document
// (delivery date, due date). "Lieferdatum" etc. never match because the bare
// "Datum" pattern is word-bounded.
var dateLabels = []string{"Rechnungsdatum", "Rechnungs-Datum", "Belegdatum", "Invoice Date", "Datum"}

// MatchDate finds every recognizable date and picks the one closest after a
// date label (exact). Dates before a label never count as labeled; the
// invoice date always follows its caption. Without any label in range, the
// first date in the document wins (heuristic).
func MatchDate(text string, window int) DateCandidate {
	dates := findDates(text)
	if len(dates) == 0 {
		return noDate()
	}

	best := noDate()
	bestDist := window + 1
	for _, span := range anchorSpans(text, dateLabels) {
		for _, d := range dates {
			dist := d.Offset - span[1]
			if dist < 0 || dist >= bestDist {
				continue
			}
			d.Confidence = constants.ConfidenceExact
			best = d
			bestDist = dist
		}
	}
	if best.Confidence == constants.ConfidenceExact {
		return best
	}
	return dates[0]
}

// findDates returns every parseable date with its offset, in document order,
// tagged heuristic. Calendar-invalid tokens like 31.02. are dropped.
func findDates(text string) []DateCandidate {
	var out []DateCandidate
	for _, loc := range reNumericDate.FindAllStringSubmatchIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		parts := strings.Split(raw, ".")
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		if len(parts[2]) == 2 {
			if year < 70 {
				year += 2000
			} else {
				year += 1900
			}
		}
		if t, ok := calendarDate(year, month, day); ok {
			out = append(out, DateCandidate{Raw: raw, Value: t, Offset: loc[0], Confidence: constants.ConfidenceHeuristic})
		}
	}
	for _, loc := range reSpelledDate.FindAllStringSubmatchIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		day, _ := strconv.Atoi(text[loc[2]:loc[3]])
		month, ok := germanMonths[strings.ToLower(text[loc[4]:loc[5]])]
		if !ok {
			continue
		}
		year, _ := strconv.Atoi(text[loc[6]:loc[7]])
		if t, ok := calendarDate(year, int(month), day); ok {
			out = append(out, DateCandidate{Raw: raw, Value: t, Offset: loc[0], Confidence: constants.ConfidenceHeuristic})
		}
	}
	// document order, regardless of which pattern matched
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Offset < out[j-1].Offset; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// calendarDate validates day/month/year by round-tripping through time.Date.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}
