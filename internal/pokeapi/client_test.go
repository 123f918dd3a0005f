package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pokedex/internal/pokedex"
)

var _ pokedex.PageFetcher = (*Client)(nil)
var _ pokedex.DetailFetcher = (*Client)(nil)

type fakeMon struct {
	id    int
	name  string
	types []string
}

// fakeAPI serves a small PokeAPI-shaped catalog.
type fakeAPI struct {
	t        *testing.T
	mons     []fakeMon
	requests atomic.Int32
	server   *httptest.Server
	// detail overrides the body for a given id.
	detail map[int]string
	// status overrides the HTTP status for a given id.
	status map[int]int
	// block, when set, makes detail requests wait for the client to go away.
	block chan struct{}
}

func newFakeAPI(t *testing.T, mons ...fakeMon) *fakeAPI {
	t.Helper()
	f := &fakeAPI{t: t, mons: mons, detail: map[int]string{}, status: map[int]int{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) baseURL() string {
	return f.server.URL + "/api/v2"
}

func (f *fakeAPI) client() *Client {
	return NewClient(WithBaseURL(f.baseURL()), WithHTTPClient(f.server.Client()), WithUserAgent("pokedex-test"))
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)
	assert.Equal(f.t, "pokedex-test", r.Header.Get("User-Agent"))

	path := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/v2/pokemon"), "/")
	if path == "" {
		f.handleList(w, r)
		return
	}
	f.handleDetail(w, r, strings.TrimPrefix(path, "/"))
}

func (f *fakeAPI) handleList(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	type entry struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	results := []entry{}
	for i := offset; i < len(f.mons) && i < offset+limit; i++ {
		m := f.mons[i]
		results = append(results, entry{Name: m.name, URL: fmt.Sprintf("%s/pokemon/%d/", f.baseURL(), m.id)})
	}

	var next *string
	if offset+limit < len(f.mons) {
		n := fmt.Sprintf("%s/pokemon?offset=%d&limit=%d", f.baseURL(), offset+limit, limit)
		next = &n
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"count": len(f.mons), "next": next, "results": results})
}

func (f *fakeAPI) handleDetail(w http.ResponseWriter, r *http.Request, ref string) {
	if f.block != nil {
		f.block <- struct{}{}
		<-r.Context().Done()
		return
	}

	var mon *fakeMon
	for i := range f.mons {
		if strconv.Itoa(f.mons[i].id) == ref || f.mons[i].name == ref {
			mon = &f.mons[i]
		}
	}
	if mon == nil {
		http.NotFound(w, r)
		return
	}
	if code, ok := f.status[mon.id]; ok {
		w.WriteHeader(code)
		return
	}
	if body, ok := f.detail[mon.id]; ok {
		_, _ = w.Write([]byte(body))
		return
	}

	_, _ = w.Write([]byte(pokemonJSON(*mon)))
}

func pokemonJSON(m fakeMon) string {
	types := make([]string, len(m.types))
	for i, t := range m.types {
		types[i] = fmt.Sprintf(`{"slot":%d,"type":{"name":%q,"url":""}}`, i+1, t)
	}
	return fmt.Sprintf(`{
		"id": %d,
		"name": %q,
		"height": 7,
		"weight": 69,
		"types": [%s],
		"abilities": [{"ability": {"name": "overgrow"}, "is_hidden": false}],
		"sprites": {"front_default": "https://sprites.example/%d.png"},
		"stats": [{"base_stat": 45, "stat": {"name": "hp"}}],
		"moves": [{"move": {"name": "tackle"}}, {"move": {"name": "growl"}}]
	}`, m.id, m.name, strings.Join(types, ","), m.id)
}

func catalog(n int) []fakeMon {
	mons := make([]fakeMon, n)
	for i := range mons {
		mons[i] = fakeMon{id: i + 1, name: fmt.Sprintf("mon-%d", i+1), types: []string{"normal"}}
	}
	return mons
}

func TestClient_Pokemon(t *testing.T) {
	api := newFakeAPI(t, fakeMon{id: 1, name: "bulbasaur", types: []string{"grass", "poison"}})
	client := api.client()

	for _, ref := range []string{"1", "bulbasaur", "BULBASAUR", api.baseURL() + "/pokemon/1/"} {
		t.Run(ref, func(t *testing.T) {
			d, err := client.Pokemon(context.Background(), ref)
			require.NoError(t, err)

			assert.Equal(t, 1, d.ID)
			assert.Equal(t, "bulbasaur", d.Name)
			assert.Equal(t, 7, d.Height)
			assert.Equal(t, 69, d.Weight)
			assert.Equal(t, []string{"grass", "poison"}, d.Types)
			assert.Equal(t, []string{"overgrow"}, d.Abilities)
			assert.Equal(t, []pokedex.Stat{{Name: "hp", BaseStat: 45}}, d.Stats)
			assert.Equal(t, []string{"tackle", "growl"}, d.Moves)
			assert.Equal(t, "https://sprites.example/1.png", d.SpriteURL)
		})
	}
}

func TestClient_PokemonErrors(t *testing.T) {
	api := newFakeAPI(t,
		fakeMon{id: 1, name: "one"},
		fakeMon{id: 2, name: "two"},
		fakeMon{id: 3, name: "three"},
		fakeMon{id: 4, name: "four"},
	)
	api.detail[1] = `{"name": "one"}`
	api.detail[2] = `not json`
	api.status[3] = http.StatusInternalServerError
	api.detail[4] = `{"id": 4, "name": "four", "types": [{"slot": 1, "type": {"name": ""}}]}`
	client := api.client()

	tests := []struct {
		ref  string
		want error
	}{
		{"one", ErrMalformedResponse},
		{"two", ErrMalformedResponse},
		{"three", ErrTransport},
		{"four", ErrMalformedResponse},
		{"missingno", ErrNotFound},
		{"", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			_, err := client.Pokemon(context.Background(), tt.ref)
			require.ErrorIs(t, err, tt.want)
			assert.False(t, IsCanceled(err))
		})
	}
}

func TestClient_SpriteFallback(t *testing.T) {
	api := newFakeAPI(t, fakeMon{id: 132, name: "ditto"})
	api.detail[132] = `{"id": 132, "name": "ditto", "sprites": {"front_default": null}}`

	d, err := api.client().Pokemon(context.Background(), "132")
	require.NoError(t, err)
	assert.Equal(t, SpriteURL(132), d.SpriteURL)
	assert.Equal(t, "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/132.png", SpriteURL(132))
}

func TestClient_ListPage(t *testing.T) {
	api := newFakeAPI(t, catalog(25)...)
	client := api.client()

	first, err := client.ListPage(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.Len(t, first.Entries, 20)
	assert.True(t, first.HasNext)
	assert.Equal(t, 25, first.Count)
	assert.Equal(t, "mon-1", first.Entries[0].Name)

	last, err := client.ListPage(context.Background(), 20, 20)
	require.NoError(t, err)
	assert.Len(t, last.Entries, 5)
	assert.False(t, last.HasNext)
}

func TestToListPage_Malformed(t *testing.T) {
	_, err := toListPage(listResponse{})
	require.ErrorIs(t, err, ErrMalformedResponse)

	results := []namedResource{{Name: "x"}}
	_, err = toListPage(listResponse{Results: &results})
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClient_FetchPage(t *testing.T) {
	mons := catalog(22)
	mons[3].types = []string{"fire", "flying"}
	api := newFakeAPI(t, mons...)
	client := api.client()

	res, err := client.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, res.Records, pokedex.PageSize)
	assert.True(t, res.HasMore)

	// Page order is preserved regardless of completion order.
	for i, rec := range res.Records {
		assert.Equal(t, i+1, rec.ID)
		assert.Equal(t, fmt.Sprintf("mon-%d", i+1), rec.Name)
	}
	assert.Equal(t, []string{"fire", "flying"}, res.Records[3].Types)
	assert.Equal(t, api.baseURL()+"/pokemon/4/", res.Records[3].URL)

	// One list request plus one per entry.
	assert.EqualValues(t, 1+pokedex.PageSize, api.requests.Load())

	res, err = client.FetchPage(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
	assert.False(t, res.HasMore)

	_, err = client.FetchPage(context.Background(), 0)
	require.Error(t, err)
}

func TestClient_FetchPageFailsWholeBatch(t *testing.T) {
	api := newFakeAPI(t, catalog(5)...)
	api.detail[3] = `{"id": 0}`

	_, err := api.client().FetchPage(context.Background(), 1)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClient_FetchPageCancelled(t *testing.T) {
	api := newFakeAPI(t, catalog(3)...)
	api.block = make(chan struct{}, 3)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-api.block
		cancel()
	}()

	_, err := api.client().FetchPage(ctx, 1)
	require.Error(t, err)
	assert.True(t, IsCanceled(err))
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(WithBaseURL(""), WithHTTPClient(nil), WithUserAgent(""))
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c = NewClient(WithBaseURL("http://localhost:8000/api/v2/"))
	assert.Equal(t, "http://localhost:8000/api/v2", c.BaseURL())
}
