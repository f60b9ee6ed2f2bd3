package extract

import (
	"regexp"
	"strings"
)

// UnknownVendorSlug is the sentinel used when no vendor was extracted.
const UnknownVendorSlug = "unknown_vendor"

var umlauts = strings.NewReplacer(
	"ä", "ae", "Ä", "ae",
	"ö", "oe", "Ö", "oe",
	"ü", "ue", "Ü", "ue",
	"ß", "ss",
)

var reSlugJunk = regexp.MustCompile(`[^a-z0-9]+`)

// VendorSlug derives the filesystem-safe archive folder name from a vendor
// name: lowercase, umlauts transliterated, everything else collapsed to
// single underscores. Deterministic; empty input maps to the sentinel.
func VendorSlug(vendor string) string {
	s := umlauts.Replace(strings.TrimSpace(vendor))
	s = strings.ToLower(s)
	s = reSlugJunk.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return UnknownVendorSlug
	}
	return s
}
