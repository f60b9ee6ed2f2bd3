package constants

import (
	"strings"
)

type Category string

// German expense categories offered in the ledger's dropdown. The category
// column is user-editable; extraction never fills it in.
const (
	Bueromaterial   Category = "Büromaterial"
	Software        Category = "Software"
	Reisekosten     Category = "Reisekosten"
	Marketing       Category = "Marketing"
	TelefonInternet Category = "Telefon/Internet"
	Miete           Category = "Miete"
	Versicherung    Category = "Versicherung"
	Weiterbildung   Category = "Weiterbildung"
	Beratung        Category = "Beratung"
	Sonstiges       Category = "Sonstiges"
)

var allCategories = []Category{
	Bueromaterial,
	Software,
	Reisekosten,
	Marketing,
	TelefonInternet,
	Miete,
	Versicherung,
	Weiterbildung,
	Beratung,
	Sonstiges,
}

func CategoriesAsStrings() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form user input onto a known category.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Sonstiges, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"büro":          Bueromaterial,
		"buero":         Bueromaterial,
		"office":        Bueromaterial,
		"saas":          Software,
		"lizenz":        Software,
		"reise":         Reisekosten,
		"travel":        Reisekosten,
		"hotel":         Reisekosten,
		"bahn":          Reisekosten,
		"werbung":       Marketing,
		"telefon":       TelefonInternet,
		"internet":      TelefonInternet,
		"mobilfunk":     TelefonInternet,
		"schulung":      Weiterbildung,
		"seminar":       Weiterbildung,
		"consulting":    Beratung,
		"steuerberater": Beratung,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Sonstiges, false
}
