package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pokedex/internal/cli/pagination"
	"github.com/rshade/pokedex/internal/pokedex"
)

func rows() []pokedex.Summary {
	return []pokedex.Summary{
		pokedex.NewSummary("squirtle", "", 7, []string{"water"}),
		pokedex.NewSummary("bulbasaur", "", 1, []string{"grass", "poison"}),
		pokedex.NewSummary("charmander", "", 4, []string{"fire"}),
		pokedex.NewSummary("vulpix", "", 37, []string{"fire"}),
	}
}

func ids(in []pokedex.Summary) []int {
	out := make([]int, len(in))
	for i, s := range in {
		out[i] = s.ID
	}
	return out
}

func TestSummarySorter(t *testing.T) {
	s := pagination.NewSummarySorter()

	tests := []struct {
		field, order string
		want         []int
	}{
		{"id", "asc", []int{1, 4, 7, 37}},
		{"id", "desc", []int{37, 7, 4, 1}},
		{"name", "asc", []int{1, 4, 7, 37}},
		{"type", "asc", []int{4, 37, 1, 7}},
		{"type", "desc", []int{7, 1, 4, 37}},
		{"weight", "asc", []int{7, 1, 4, 37}},
	}

	for _, tt := range tests {
		t.Run(tt.field+":"+tt.order, func(t *testing.T) {
			in := rows()
			got := s.Sort(in, tt.field, tt.order)
			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, []int{7, 1, 4, 37}, ids(in), "input must not be modified")
		})
	}

	assert.Equal(t, []string{"id", "name", "type"}, s.GetValidFields())
}

func TestParseSortExpression(t *testing.T) {
	field, order, err := pagination.ParseSortExpression("name")
	require.NoError(t, err)
	assert.Equal(t, "name", field)
	assert.Equal(t, pagination.SortOrderAsc, order)

	field, order, err = pagination.ParseSortExpression(" ID : DESC ")
	require.NoError(t, err)
	assert.Equal(t, "id", field)
	assert.Equal(t, pagination.SortOrderDesc, order)

	for _, bad := range []string{"", ":asc", "id:up", "id:asc:x"} {
		_, _, err = pagination.ParseSortExpression(bad)
		require.Error(t, err, bad)
	}
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, items, pagination.Apply(items, pagination.Window{}))
	assert.Equal(t, []int{3, 4}, pagination.Apply(items, pagination.Window{Offset: 2, Limit: 2}))
	assert.Equal(t, []int{5}, pagination.Apply(items, pagination.Window{Offset: 4, Limit: 10}))
	assert.Empty(t, pagination.Apply(items, pagination.Window{Offset: 9}))

	require.ErrorIs(t, pagination.Window{Limit: -1}.Validate(), pagination.ErrInvalidLimit)
	require.ErrorIs(t, pagination.Window{Offset: -1}.Validate(), pagination.ErrInvalidOffset)
	require.NoError(t, pagination.Window{Limit: 3, Offset: 1}.Validate())
}
