// Package pokedex holds the catalog records shown by the browser and the
// client-side logic that works on them: deduplicating accumulation of list
// pages, the name/type filter, the type colour table and the paginator that
// tracks which page fetch is authoritative.
package pokedex

import (
	"context"
	"slices"
)

// PageSize is the number of summary entries requested per list page.
const PageSize = 20

// MaxDisplayedMoves caps the moves rendered for a single Detail.
const MaxDisplayedMoves = 10

// Summary is the lightweight record shown as a card in the list view.
type Summary struct {
	Name  string   `json:"name"`
	URL   string   `json:"url"`
	ID    int      `json:"id"`
	Types []string `json:"types"`
}

// NewSummary builds a Summary, copying types so the record does not alias
// caller-owned memory.
func NewSummary(name, url string, id int, types []string) Summary {
	return Summary{
		Name:  name,
		URL:   url,
		ID:    id,
		Types: slices.Clone(types),
	}
}

// HasType reports whether the record carries the given type name.
func (s Summary) HasType(name string) bool {
	return slices.Contains(s.Types, name)
}

// Stat is a single base stat entry of a Detail.
type Stat struct {
	Name     string `json:"name"`
	BaseStat int    `json:"base_stat"`
}

// Detail is the full record shown in the detail view. Height is in
// decimetres and Weight in hectograms, as served by the API.
type Detail struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Height    int      `json:"height"`
	Weight    int      `json:"weight"`
	Types     []string `json:"types"`
	Abilities []string `json:"abilities"`
	SpriteURL string   `json:"sprite_url,omitempty"`
	Stats     []Stat   `json:"stats"`
	Moves     []string `json:"moves"`
}

// DisplayedMoves returns at most MaxDisplayedMoves moves in API order.
func (d Detail) DisplayedMoves() []string {
	if len(d.Moves) <= MaxDisplayedMoves {
		return d.Moves
	}
	return d.Moves[:MaxDisplayedMoves]
}

// Summary projects the detail record onto the list representation.
func (d Detail) Summary(name, url string) Summary {
	if name == "" {
		name = d.Name
	}
	return NewSummary(name, url, d.ID, d.Types)
}

// PageResult is the outcome of fetching one list page and enriching each
// of its entries.
type PageResult struct {
	Records []Summary
	HasMore bool
}

// PageFetcher retrieves one enriched list page. Implementations must honour
// ctx cancellation.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) (PageResult, error)
}

// DetailFetcher retrieves one full record by numeric id, name or resource URL.
type DetailFetcher interface {
	Pokemon(ctx context.Context, ref string) (Detail, error)
}
