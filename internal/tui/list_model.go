package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/internal/pokedex"
	"github.com/rshade/pokedex/internal/tui/components"
	listview "github.com/rshade/pokedex/internal/tui/list"
)

const (
	cardNameWidth = 16
	cardIDWidth   = 6
)

// pageLoadedMsg carries a page fetch outcome tagged with its ticket.
type pageLoadedMsg struct {
	ticket pokedex.Ticket
	result pokedex.PageResult
	err    error
}

// NavigateMsg asks the shell to switch to Route.
type NavigateMsg struct {
	Route Route
}

// Navigate returns a command emitting NavigateMsg for r.
func Navigate(r Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: r} }
}

// ListModel is the incremental list screen. It owns the filter and the
// paginator; the records shown are always Filter(paginator records, filter).
type ListModel struct {
	ctx       context.Context
	fetcher   pokedex.PageFetcher
	paginator *pokedex.Paginator

	filter  pokedex.FilterState
	search  SearchBar
	list    *listview.VirtualListModel[pokedex.Summary]
	loading *components.LoadingState

	width  int
	height int
}

// NewListModel returns a list screen fetching through fetcher. Fetches are
// bound to ctx.
func NewListModel(ctx context.Context, fetcher pokedex.PageFetcher) *ListModel {
	m := &ListModel{
		ctx:       ctx,
		fetcher:   fetcher,
		paginator: pokedex.NewPaginator(),
		loading:   components.NewLoadingState("Loading Pokémon..."),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.search = NewSearchBar(m.SetQuery, m.SetType)
	m.list = listview.NewVirtualListModel[pokedex.Summary](nil, m.listHeight(), m.width, renderCard)
	return m
}

// Init fetches page 1.
func (m *ListModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetch())
}

func (m *ListModel) fetch() tea.Cmd {
	t := m.paginator.Begin(m.ctx)
	fetcher := m.fetcher
	return func() tea.Msg {
		res, err := fetcher.FetchPage(t.Context(), t.Page)
		return pageLoadedMsg{ticket: t, result: res, err: err}
	}
}

// LoadMore advances to the next page and fetches it. It does nothing while
// a fetch is in flight or when the last page has been reached.
func (m *ListModel) LoadMore() tea.Cmd {
	if m.paginator.Loading() || !m.paginator.NextPage() {
		return nil
	}
	return tea.Batch(m.loading.Init(), m.fetch())
}

// Update handles page results, keys and resizes.
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		m.handlePage(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.paginator.Loading() {
		return m, m.loading.Update(msg)
	}
	return m, nil
}

func (m *ListModel) handlePage(msg pageLoadedMsg) {
	log := logging.FromContext(m.ctx)

	if msg.err != nil {
		if !m.paginator.Fail(msg.ticket, msg.err) {
			return
		}
		if errors.Is(msg.err, context.Canceled) {
			log.Debug().Ctx(m.ctx).Str("component", "tui.list").
				Int("page", msg.ticket.Page).Msg("page fetch cancelled")
			return
		}
		log.Error().Ctx(m.ctx).Str("component", "tui.list").
			Int("page", msg.ticket.Page).Err(msg.err).Msg("page fetch failed")
		return
	}

	added, ok := m.paginator.Apply(msg.ticket, msg.result)
	if !ok {
		log.Debug().Ctx(m.ctx).Str("component", "tui.list").
			Int("page", msg.ticket.Page).Msg("dropped superseded page")
		return
	}
	log.Debug().Ctx(m.ctx).Str("component", "tui.list").
		Int("page", msg.ticket.Page).Int("added", added).Msg("page applied")
	m.refresh()
}

func (m *ListModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.search.Focused() {
		switch msg.String() {
		case keyEnter, keyEsc:
			m.search.Blur()
			return nil
		}
		return m.search.Update(msg)
	}

	switch msg.String() {
	case keySlash:
		return m.search.Focus()
	case keyTypeNext:
		m.search.CycleType(1)
		return nil
	case keyTypePrev:
		m.search.CycleType(-1)
		return nil
	case keyMore:
		return m.LoadMore()
	case keyEnter:
		if sel := m.list.GetSelectedItem(); sel != nil {
			return Navigate(PokemonRoute(sel.ID))
		}
		return nil
	case keyEsc:
		if !m.filter.IsZero() {
			m.search.Clear()
		}
		return nil
	}

	_, cmd := m.list.Update(msg)
	return cmd
}

// SetQuery is the query setter handed to the search bar.
func (m *ListModel) SetQuery(q string) {
	m.filter = m.filter.WithQuery(q)
	m.search.SetValue(m.filter)
	m.refresh()
}

// SetType is the type setter handed to the search bar.
func (m *ListModel) SetType(t string) {
	m.filter = m.filter.WithType(t)
	m.search.SetValue(m.filter)
	m.refresh()
}

func (m *ListModel) refresh() {
	m.list.SetItems(pokedex.Filter(m.paginator.Records(), m.filter))
}

// SetSize resizes the list area.
func (m *ListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(m.listHeight(), width)
}

func (m *ListModel) listHeight() int {
	return max(m.height-listChromeHeight, minHeight)
}

// Close cancels the fetch in flight.
func (m *ListModel) Close() {
	m.paginator.Close()
}

// Filter returns the current filter.
func (m *ListModel) Filter() pokedex.FilterState {
	return m.filter
}

// Visible returns the records currently displayed.
func (m *ListModel) Visible() []pokedex.Summary {
	return m.list.Items()
}

// Paginator exposes the underlying paginator.
func (m *ListModel) Paginator() *pokedex.Paginator {
	return m.paginator
}

// Searching reports whether the query input has focus.
func (m *ListModel) Searching() bool {
	return m.search.Focused()
}

// View renders the search bar, the cards and the status line.
func (m *ListModel) View() string {
	parts := []string{m.search.View(), ""}

	switch {
	case m.list.ItemCount() > 0:
		parts = append(parts, m.list.View())
	case !m.paginator.Loading():
		parts = append(parts, components.SubtleStyle.Render("No Pokémon match the current filter."))
	}

	parts = append(parts, "", m.statusLine())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *ListModel) statusLine() string {
	if m.paginator.Loading() {
		return components.RenderLoading(m.loading)
	}

	var segs []string
	segs = append(segs, components.LabelStyle.Render(
		fmt.Sprintf("%d shown / %d loaded", m.list.ItemCount(), len(m.paginator.Records()))))
	if m.paginator.HasMore() {
		segs = append(segs, components.InfoStyle.Render("[m] Load more"))
	}
	segs = append(segs, components.SubtleStyle.Render("[/] Search  [t/T] Type  [Enter] Details  [q] Quit"))
	return strings.Join(segs, "  ")
}

func renderCard(s pokedex.Summary, selected bool) string {
	name := fmt.Sprintf("%-*s", cardNameWidth, pokedex.DisplayName(s.Name))
	id := fmt.Sprintf("%-*s", cardIDWidth, fmt.Sprintf("#%03d", s.ID))

	if selected {
		return components.SelectedStyle.Render("> "+id+name) + " " + components.TypeBadges(s.Types)
	}
	return "  " + components.SubtleStyle.Render(id) + components.ValueStyle.Render(name) + " " +
		components.TypeBadges(s.Types)
}
