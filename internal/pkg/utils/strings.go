package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// CategoryLabel turns a category tag into its user-facing label.
// Hyphenated tags are split into space-joined title-cased words:
// "city-break" -> "City Break", "rooms" -> "Rooms".
func CategoryLabel(category string) string {
	if category == "" {
		return ""
	}
	words := strings.Split(category, "-")
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}

// SplitDestination normalizes a search destination. A comma splits the
// query into a location and a country part, each trimmed; without a
// comma both parts carry the whole trimmed text.
func SplitDestination(dest string) (location, country string) {
	dest = strings.TrimSpace(dest)
	if strings.Contains(dest, ",") {
		parts := strings.Split(dest, ",")
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return dest, dest
}

// ValidateCoordinates reports whether lat/lon form a valid WGS84 pair.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
