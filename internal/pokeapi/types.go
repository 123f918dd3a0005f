package pokeapi

// Wire shapes of the PokeAPI responses. Only the fields pokedex reads are
// declared; pointer fields distinguish "absent" from "zero".

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listResponse struct {
	Count   int              `json:"count"`
	Next    *string          `json:"next"`
	Results *[]namedResource `json:"results"`
}

type pokemonResponse struct {
	ID     *int   `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
	} `json:"abilities"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Moves []struct {
		Move namedResource `json:"move"`
	} `json:"moves"`
}

// ListEntry is one {name, url} pair of a list page.
type ListEntry struct {
	Name string
	URL  string
}

// ListPage is a validated list page.
type ListPage struct {
	Entries []ListEntry
	HasNext bool
	Count   int
}
