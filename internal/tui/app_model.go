// Package tui implements the interactive Pokémon browser: a shell with a
// header and footer that routes between the incremental list and the
// single-record view.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/internal/pokedex"
	"github.com/rshade/pokedex/internal/tui/components"
	"github.com/rshade/pokedex/internal/tui/detail"
)

// Shell text.
const (
	AppTitle     = "Pokédex"
	FooterNotice = "Data from PokéAPI. Pokémon and Pokémon character names are trademarks of Nintendo."
)

// ViewState is the screen the shell is showing.
type ViewState int

const (
	// ViewStateList shows the list.
	ViewStateList ViewState = iota
	// ViewStateDetail shows one record.
	ViewStateDetail
	// ViewStateQuitting means the program is exiting.
	ViewStateQuitting
)

// Fetcher serves both screens.
type Fetcher interface {
	pokedex.PageFetcher
	pokedex.DetailFetcher
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx     context.Context
	fetcher Fetcher
	sprites detail.SpriteSource

	state  ViewState
	route  Route
	list   *ListModel
	detail *detail.Model

	width  int
	height int
}

// NewAppModel returns a shell opened at start. sprites may be nil.
func NewAppModel(ctx context.Context, fetcher Fetcher, sprites detail.SpriteSource, start Route) *AppModel {
	return &AppModel{
		ctx:     ctx,
		fetcher: fetcher,
		sprites: sprites,
		route:   start,
		list:    NewListModel(ctx, fetcher),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Init starts the list fetch and, for a detail start route, the record fetch.
func (m *AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.list.Init()}
	if m.route.Kind == RoutePokemon {
		cmds = append(cmds, m.openDetail(m.route))
	}
	return tea.Batch(cmds...)
}

// Update dispatches messages to the screen that owns them.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		return m, m.navigate(msg.Route)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case pageLoadedMsg:
		_, cmd := m.list.Update(msg)
		return m, cmd

	case detail.ResultMsg[pokedex.Detail], detail.ResultMsg[string]:
		if m.detail == nil {
			return m, nil
		}
		_, cmd := m.detail.Update(msg)
		return m, cmd
	}

	// Spinner ticks and the like go to both screens.
	_, listCmd := m.list.Update(msg)
	var detailCmd tea.Cmd
	if m.detail != nil {
		_, detailCmd = m.detail.Update(msg)
	}
	return m, tea.Batch(listCmd, detailCmd)
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == keyCtrlC {
		return m.quit()
	}

	if m.route.Kind == RoutePokemon {
		switch key {
		case keyQuit:
			return m.quit()
		case keyEsc, keyBackspace:
			return m.navigate(ListRoute())
		}
		_, cmd := m.detail.Update(msg)
		return cmd
	}

	if key == keyQuit && !m.list.Searching() {
		return m.quit()
	}
	_, cmd := m.list.Update(msg)
	return cmd
}

func (m *AppModel) navigate(r Route) tea.Cmd {
	logging.FromContext(m.ctx).Debug().Ctx(m.ctx).
		Str("component", "tui").
		Str("from", m.route.String()).
		Str("to", r.String()).
		Msg("navigate")

	m.closeDetail()
	m.route = r
	if r.Kind == RoutePokemon {
		return m.openDetail(r)
	}
	m.state = ViewStateList
	return nil
}

func (m *AppModel) openDetail(r Route) tea.Cmd {
	m.closeDetail()
	m.detail = detail.New(m.ctx, r.ID, m.fetcher, m.sprites)
	m.detail.SetSize(m.bodyWidth(), m.bodyHeight())
	m.state = ViewStateDetail
	return m.detail.Init()
}

func (m *AppModel) closeDetail() {
	if m.detail != nil {
		m.detail.Close()
		m.detail = nil
	}
}

func (m *AppModel) quit() tea.Cmd {
	m.list.Close()
	m.closeDetail()
	m.state = ViewStateQuitting
	return tea.Quit
}

// SetSize lays both screens out for a width x height terminal.
func (m *AppModel) SetSize(width, height int) {
	m.width, m.height = width, height
	m.list.SetSize(m.bodyWidth(), m.bodyHeight())
	if m.detail != nil {
		m.detail.SetSize(m.bodyWidth(), m.bodyHeight())
	}
}

// State returns the current screen.
func (m *AppModel) State() ViewState {
	return m.state
}

// Route returns the current location.
func (m *AppModel) Route() Route {
	return m.route
}

// List returns the list screen.
func (m *AppModel) List() *ListModel {
	return m.list
}

// Detail returns the record screen, or nil on the list route.
func (m *AppModel) Detail() *detail.Model {
	return m.detail
}

func (m *AppModel) bodyWidth() int {
	return max(m.width-2, 1)
}

func (m *AppModel) bodyHeight() int {
	return max(m.height-chromeHeight, minHeight)
}

// View renders header, breadcrumbs, the active screen and the footer.
func (m *AppModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	var body string
	if m.route.Kind == RoutePokemon && m.detail != nil {
		body = m.detail.View()
	} else {
		body = m.list.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.HeaderStyle.Render(AppTitle)+"  "+components.SubtleStyle.Render(m.breadcrumbs()),
		"",
		body,
		components.SubtleStyle.Render(FooterNotice),
	)
}

func (m *AppModel) breadcrumbs() string {
	crumbs := "Home / Pokémon"
	if m.route.Kind != RoutePokemon {
		return crumbs
	}
	name := "#" + m.route.ID
	if m.detail != nil {
		if d, ok := m.detail.Record(); ok {
			name = pokedex.DisplayName(d.Name)
		}
	}
	return crumbs + " / " + name
}
