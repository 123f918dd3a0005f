package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one item. selected is true for the cursor row.
type RenderFunc[T any] func(item T, selected bool) string

// VirtualListModel renders the window of items that fits in height rows and
// scrolls only as far as needed to keep the cursor visible.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected int
	offset   int

	height int
	width  int
}

// NewVirtualListModel returns a list over items sized height x width.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 1),
		width:      width,
	}
	m.scroll()
	return m
}

// Init implements tea.Model.
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Height, msg.Width)
	}
	return m, nil
}

//nolint:exhaustive // Only navigation keys move the cursor.
func (m *VirtualListModel[T]) handleKey(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyPgUp:
		m.move(-m.height)
	case tea.KeyPgDown:
		m.move(m.height)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "j":
			m.move(1)
		case "k":
			m.move(-1)
		case "g":
			m.SetSelected(0)
		case "G":
			m.SetSelected(len(m.items) - 1)
		}
	default:
	}
}

func (m *VirtualListModel[T]) move(delta int) {
	m.SetSelected(m.selected + delta)
}

// scroll adjusts offset so the cursor row is inside the window.
func (m *VirtualListModel[T]) scroll() {
	if len(m.items) == 0 {
		m.selected, m.offset = 0, 0
		return
	}
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+m.height {
		m.offset = m.selected - m.height + 1
	}
	if maxOffset := max(len(m.items)-m.height, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
	m.offset = max(m.offset, 0)
}

// View renders the visible window.
func (m *VirtualListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	rows := make([]string, 0, m.VisibleTo()-m.offset)
	for i := m.offset; i < m.VisibleTo(); i++ {
		rows = append(rows, m.renderFunc(m.items[i], i == m.selected))
	}
	return strings.Join(rows, "\n")
}

// SetItems replaces the items. The cursor stays on the same index, clamped
// to the new length, so appending a page does not move it.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.SetSelected(m.selected)
}

// SetSize changes the viewport dimensions.
func (m *VirtualListModel[T]) SetSize(height, width int) {
	m.height = max(height, 1)
	m.width = width
	m.scroll()
}

// SetSelected moves the cursor to index, clamped to the item range.
func (m *VirtualListModel[T]) SetSelected(index int) {
	m.selected = min(max(index, 0), max(len(m.items)-1, 0))
	m.scroll()
}

// Items returns the current items.
func (m *VirtualListModel[T]) Items() []T {
	return m.items
}

// ItemCount returns the number of items.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the cursor index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// AtEnd reports whether the cursor is on the last item.
func (m *VirtualListModel[T]) AtEnd() bool {
	return len(m.items) > 0 && m.selected == len(m.items)-1
}

// VisibleFrom returns the first rendered index.
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.offset
}

// VisibleTo returns one past the last rendered index.
func (m *VirtualListModel[T]) VisibleTo() int {
	return min(m.offset+m.height, len(m.items))
}

// Height returns the viewport height in rows.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width in columns.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}

// GetSelectedItem returns the item under the cursor, or nil when empty.
func (m *VirtualListModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}
