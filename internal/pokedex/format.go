package pokedex

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxBaseStat is the upper bound used to scale stat bars.
const MaxBaseStat = 255

// DisplayName title-cases an API slug such as "mr-mime" for display.
func DisplayName(slug string) string {
	if slug == "" {
		return slug
	}
	return cases.Title(language.English).String(slug)
}

// FormatHeight renders a height in decimetres as metres.
func FormatHeight(decimetres int) string {
	return message.NewPrinter(language.English).Sprintf("%.1f m", float64(decimetres)/10) //nolint:mnd // dm -> m
}

// FormatWeight renders a weight in hectograms as kilograms.
func FormatWeight(hectograms int) string {
	return message.NewPrinter(language.English).Sprintf("%.1f kg", float64(hectograms)/10) //nolint:mnd // hg -> kg
}

// StatFraction returns base/MaxBaseStat clamped to [0, 1].
func StatFraction(base int) float64 {
	switch {
	case base <= 0:
		return 0
	case base >= MaxBaseStat:
		return 1
	default:
		return float64(base) / MaxBaseStat
	}
}

// JoinNames title-cases and joins slugs with ", ".
func JoinNames(slugs []string) string {
	parts := make([]string, len(slugs))
	for i, s := range slugs {
		parts[i] = DisplayName(s)
	}
	return strings.Join(parts, ", ")
}
