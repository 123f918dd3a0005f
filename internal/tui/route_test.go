package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"", ListRoute()},
		{"/", ListRoute()},
		{"/pokemon", ListRoute()},
		{"/pokemon/", ListRoute()},
		{"/pokemon/25", Route{Kind: RoutePokemon, ID: "25"}},
		{"/pokemon/pikachu/", Route{Kind: RoutePokemon, ID: "pikachu"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ParseRoute(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoute_Unknown(t *testing.T) {
	for _, path := range []string{"/berries", "/pokemon/25/moves", "pokemon/25"} {
		_, err := ParseRoute(path)
		require.ErrorIs(t, err, ErrUnknownRoute, path)
	}
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "/", ListRoute().String())
	assert.Equal(t, "/pokemon/25", PokemonRoute(25).String())

	r, err := ParseRoute(PokemonRoute(151).String())
	require.NoError(t, err)
	assert.Equal(t, PokemonRoute(151), r)
}

func TestDetectOutputMode(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}
	none := env(nil)

	assert.Equal(t, OutputModeInteractive, detectOutputMode(true, none, false, false, false))
	assert.Equal(t, OutputModePlain, detectOutputMode(true, none, false, false, true))
	assert.Equal(t, OutputModePlain, detectOutputMode(true, none, false, true, false))
	assert.Equal(t, OutputModePlain, detectOutputMode(true, env(map[string]string{"NO_COLOR": "1"}), false, false, false))
	assert.Equal(t, OutputModePlain, detectOutputMode(false, none, false, false, false))
	assert.Equal(t, OutputModeStyled, detectOutputMode(false, none, true, false, false))
	assert.Equal(t, OutputModeStyled, detectOutputMode(true, env(map[string]string{"TERM": "dumb"}), false, false, false))
	assert.Equal(t, "interactive", OutputModeInteractive.String())
}
