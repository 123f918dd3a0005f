package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pokedex/internal/pokedex"
	"github.com/rshade/pokedex/internal/tui/components"
)

// SearchBar is a controlled query input and type selector. It keeps no
// filter of its own: every edit calls the matching setter synchronously and
// the owner pushes the resulting state back with SetValue.
type SearchBar struct {
	input    textinput.Model
	value    pokedex.FilterState
	setQuery func(string)
	setType  func(string)
}

// NewSearchBar returns a bar wired to the given setters.
func NewSearchBar(setQuery, setType func(string)) SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search Pokémon..."
	ti.Prompt = "Search: "
	ti.CharLimit = searchCharLimit
	ti.Width = searchWidth
	return SearchBar{input: ti, setQuery: setQuery, setType: setType}
}

// SetValue displays f.
func (s *SearchBar) SetValue(f pokedex.FilterState) {
	s.value = f
	if s.input.Value() != f.Query {
		s.input.SetValue(f.Query)
	}
}

// Value returns the state last pushed by the owner.
func (s *SearchBar) Value() pokedex.FilterState {
	return s.value
}

// Focus gives the query input keyboard focus.
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur releases keyboard focus.
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the query input has focus.
func (s *SearchBar) Focused() bool {
	return s.input.Focused()
}

// CycleType selects the next (step > 0) or previous type, wrapping through
// "All Types".
func (s *SearchBar) CycleType(step int) {
	s.setType(pokedex.NextType(s.value.Type, step))
}

// Clear resets both the query and the type.
func (s *SearchBar) Clear() {
	s.setQuery("")
	s.setType("")
}

// Update forwards keystrokes to the focused input and reports edits.
func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	if !s.input.Focused() {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if q := s.input.Value(); q != s.value.Query {
		s.setQuery(q)
	}
	return cmd
}

// View renders the input and the selected type.
func (s *SearchBar) View() string {
	typeLabel := components.SubtleStyle.Render("All Types")
	if s.value.Type != "" {
		typeLabel = components.TypeBadge(s.value.Type)
	}
	return s.input.View() + "  " + components.LabelStyle.Render("Type: ") + typeLabel
}
