package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pokedex/internal/pokedex"
)

var firstGen = []struct {
	name  string
	types []string
}{
	{"bulbasaur", []string{"grass", "poison"}},
	{"ivysaur", []string{"grass", "poison"}},
	{"venusaur", []string{"grass", "poison"}},
	{"charmander", []string{"fire"}},
	{"charmeleon", []string{"fire"}},
	{"charizard", []string{"fire", "flying"}},
	{"squirtle", []string{"water"}},
	{"wartortle", []string{"water"}},
	{"blastoise", []string{"water"}},
	{"caterpie", []string{"bug"}},
	{"metapod", []string{"bug"}},
	{"butterfree", []string{"bug", "flying"}},
	{"weedle", []string{"bug", "poison"}},
	{"kakuna", []string{"bug", "poison"}},
	{"beedrill", []string{"bug", "poison"}},
	{"pidgey", []string{"normal", "flying"}},
	{"pidgeotto", []string{"normal", "flying"}},
	{"pidgeot", []string{"normal", "flying"}},
	{"rattata", []string{"normal"}},
	{"raticate", []string{"normal"}},
	{"spearow", []string{"normal", "flying"}},
	{"fearow", []string{"normal", "flying"}},
}

func summary(id int) pokedex.Summary {
	mon := firstGen[id-1]
	return pokedex.NewSummary(mon.name, fmt.Sprintf("https://pokeapi.test/pokemon/%d/", id), id, mon.types)
}

func pageOf(hasMore bool, ids ...int) pokedex.PageResult {
	res := pokedex.PageResult{HasMore: hasMore}
	for _, id := range ids {
		res.Records = append(res.Records, summary(id))
	}
	return res
}

func span(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

var errBoom = errors.New("boom")

// fakeDex is an in-memory Fetcher.
type fakeDex struct {
	mu      sync.Mutex
	pages   map[int]pokedex.PageResult
	pageErr map[int]error
	details map[string]pokedex.Detail
	fetched []int
}

func newFakeDex() *fakeDex {
	return &fakeDex{
		pages: map[int]pokedex.PageResult{
			1: pageOf(true, span(1, 20)...),
			2: pageOf(false, span(19, 22)...),
		},
		pageErr: map[int]error{},
		details: map[string]pokedex.Detail{
			"25": {ID: 25, Name: "pikachu", Types: []string{"electric"}, Height: 4, Weight: 60},
		},
	}
}

func (f *fakeDex) FetchPage(ctx context.Context, page int) (pokedex.PageResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, page)
	if err := ctx.Err(); err != nil {
		return pokedex.PageResult{}, err
	}
	if err := f.pageErr[page]; err != nil {
		return pokedex.PageResult{}, err
	}
	return f.pages[page], nil
}

func (f *fakeDex) Pokemon(ctx context.Context, ref string) (pokedex.Detail, error) {
	if err := ctx.Err(); err != nil {
		return pokedex.Detail{}, err
	}
	d, ok := f.details[ref]
	if !ok {
		return pokedex.Detail{}, errors.New("pokemon not found")
	}
	return d, nil
}

// collect runs cmd, flattening batches, and returns every message produced.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func find[T any](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	require.FailNowf(t, "message not found", "%T", zero)
	return zero
}

func has[T any](msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(T); ok {
			return true
		}
	}
	return false
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}
