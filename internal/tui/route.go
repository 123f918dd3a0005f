package tui

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRoute is returned by ParseRoute for paths the browser does not serve.
var ErrUnknownRoute = errors.New("unknown route")

// RouteKind identifies a screen.
type RouteKind int

const (
	// RouteList is the list screen, "/".
	RouteList RouteKind = iota
	// RoutePokemon is the detail screen, "/pokemon/:id".
	RoutePokemon
)

const pokemonPrefix = "/pokemon"

// Route is a parsed location.
type Route struct {
	Kind RouteKind
	// ID is the id or name for RoutePokemon.
	ID string
}

// ListRoute returns the list location.
func ListRoute() Route {
	return Route{Kind: RouteList}
}

// PokemonRoute returns the detail location for id.
func PokemonRoute(id int) Route {
	return Route{Kind: RoutePokemon, ID: fmt.Sprint(id)}
}

// ParseRoute accepts "/", "/pokemon" and "/pokemon/:id". Trailing slashes
// are ignored.
func ParseRoute(path string) (Route, error) {
	p := strings.TrimRight(strings.TrimSpace(path), "/")
	if p == "" || p == pokemonPrefix {
		return ListRoute(), nil
	}

	rest, ok := strings.CutPrefix(p, pokemonPrefix+"/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}
	return Route{Kind: RoutePokemon, ID: rest}, nil
}

// String returns the path form of r.
func (r Route) String() string {
	if r.Kind == RoutePokemon {
		return pokemonPrefix + "/" + r.ID
	}
	return "/"
}
