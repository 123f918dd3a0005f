package listview_test

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listview "github.com/rshade/pokedex/internal/tui/list"
)

func render(item string, selected bool) string {
	if selected {
		return "> " + item
	}
	return "  " + item
}

func itemsN(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}
	return items
}

func press(m *listview.VirtualListModel[string], msg tea.KeyMsg) {
	_, _ = m.Update(msg)
}

func TestVirtualListModel_New(t *testing.T) {
	m := listview.NewVirtualListModel(itemsN(5), 20, 80, render)

	assert.Equal(t, 5, m.ItemCount())
	assert.Equal(t, 20, m.Height())
	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 5, m.VisibleTo())
	assert.Nil(t, m.Init())
}

func TestVirtualListModel_Navigation(t *testing.T) {
	m := listview.NewVirtualListModel(itemsN(30), 10, 80, render)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, m.Selected())

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 1, m.Selected())

	press(m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 11, m.Selected())
	assert.Equal(t, 2, m.VisibleFrom())
	assert.Equal(t, 12, m.VisibleTo())

	press(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 29, m.Selected())
	assert.True(t, m.AtEnd())
	assert.Equal(t, 20, m.VisibleFrom())

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 29, m.Selected())

	press(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.VisibleFrom())

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected())
}

func TestVirtualListModel_ViewRendersWindowOnly(t *testing.T) {
	m := listview.NewVirtualListModel(itemsN(100), 3, 80, render)
	m.SetSelected(50)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  item-48", lines[0])
	assert.Equal(t, "> item-50", lines[2])
}

func TestVirtualListModel_SetItemsKeepsSelection(t *testing.T) {
	m := listview.NewVirtualListModel(itemsN(20), 5, 80, render)
	m.SetSelected(19)
	require.True(t, m.AtEnd())

	m.SetItems(itemsN(40))
	assert.Equal(t, 19, m.Selected())
	assert.False(t, m.AtEnd())
	assert.Equal(t, "item-19", *m.GetSelectedItem())

	m.SetItems(itemsN(3))
	assert.Equal(t, 2, m.Selected())
	assert.True(t, m.AtEnd())
}

func TestVirtualListModel_Empty(t *testing.T) {
	m := listview.NewVirtualListModel[string](nil, 5, 80, render)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Selected())
	assert.False(t, m.AtEnd())
	assert.Nil(t, m.GetSelectedItem())
	assert.Empty(t, m.View())
}

func TestVirtualListModel_Resize(t *testing.T) {
	m := listview.NewVirtualListModel(itemsN(50), 20, 80, render)
	m.SetSelected(30)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	assert.Equal(t, 5, m.Height())
	assert.Equal(t, 40, m.Width())
	assert.LessOrEqual(t, m.VisibleFrom(), 30)
	assert.Greater(t, m.VisibleTo(), 30)
}
