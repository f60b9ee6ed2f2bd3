package extract

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

// mojibake repairs the usual UTF-8-read-as-Latin-1 encodings of German
// special characters that text extraction sometimes produces.
var mojibake = strings.NewReplacer(
	"Ã¤", "ä", "Ã„", "Ä",
	"Ã¶", "ö", "Ã–", "Ö",
	"Ã¼", "ü", "Ãœ", "Ü",
	"ÃŸ", "ß",
	"â‚¬", "€",
)

// Normalize collapses noisy whitespace and repairs common encoding damage.
// Conservative: keeps line breaks; collapses >2 newlines into a single blank
// line. Always returns a string, possibly empty.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = mojibake.Replace(s)
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.Join(lines, "\n")
	return strings.TrimSpace(s)
}
