package pokeapi

import (
	"github.com/rshade/pokedex/internal/pokedex"
)

func toListPage(raw listResponse) (ListPage, error) {
	if raw.Results == nil {
		return ListPage{}, malformed("list response has no results")
	}

	entries := make([]ListEntry, 0, len(*raw.Results))
	for i, r := range *raw.Results {
		if r.Name == "" || r.URL == "" {
			return ListPage{}, malformed("list entry %d lacks name or url", i)
		}
		entries = append(entries, ListEntry{Name: r.Name, URL: r.URL})
	}

	return ListPage{
		Entries: entries,
		HasNext: raw.Next != nil && *raw.Next != "",
		Count:   raw.Count,
	}, nil
}

func toDetail(raw pokemonResponse) (pokedex.Detail, error) {
	if raw.ID == nil || *raw.ID <= 0 {
		return pokedex.Detail{}, malformed("pokemon response has no valid id")
	}
	if raw.Name == "" {
		return pokedex.Detail{}, malformed("pokemon %d has no name", *raw.ID)
	}

	d := pokedex.Detail{
		ID:        *raw.ID,
		Name:      raw.Name,
		Height:    raw.Height,
		Weight:    raw.Weight,
		Types:     make([]string, 0, len(raw.Types)),
		Abilities: make([]string, 0, len(raw.Abilities)),
		Stats:     make([]pokedex.Stat, 0, len(raw.Stats)),
		Moves:     make([]string, 0, len(raw.Moves)),
	}

	for _, t := range raw.Types {
		if t.Type.Name == "" {
			return pokedex.Detail{}, malformed("pokemon %d has an unnamed type", d.ID)
		}
		d.Types = append(d.Types, t.Type.Name)
	}
	for _, a := range raw.Abilities {
		if a.Ability.Name != "" {
			d.Abilities = append(d.Abilities, a.Ability.Name)
		}
	}
	for _, s := range raw.Stats {
		if s.Stat.Name == "" {
			return pokedex.Detail{}, malformed("pokemon %d has an unnamed stat", d.ID)
		}
		d.Stats = append(d.Stats, pokedex.Stat{Name: s.Stat.Name, BaseStat: s.BaseStat})
	}
	for _, m := range raw.Moves {
		if m.Move.Name != "" {
			d.Moves = append(d.Moves, m.Move.Name)
		}
	}

	if raw.Sprites.FrontDefault != nil && *raw.Sprites.FrontDefault != "" {
		d.SpriteURL = *raw.Sprites.FrontDefault
	} else {
		d.SpriteURL = SpriteURL(d.ID)
	}

	return d, nil
}
