package detail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/internal/pokedex"
	"github.com/rshade/pokedex/internal/tui/components"
)

// NotFoundMessage is shown when the record could not be fetched.
const NotFoundMessage = "Pokémon not found"

const (
	labelWidth    = 16
	statBarWidth  = 24
	spriteGap     = 3
	defaultWidth  = 80
	defaultHeight = 20
)

// SpriteSource renders a sprite URL into terminal text.
type SpriteSource interface {
	Thumbnail(ctx context.Context, url string) (string, error)
}

// Model shows one record. Create it with New and call Close when leaving.
type Model struct {
	ctx     context.Context
	ref     string
	fetcher pokedex.DetailFetcher
	sprites SpriteSource

	record  Loader[pokedex.Detail]
	sprite  Loader[string]
	loading *components.LoadingState

	viewport viewport.Model
	width    int
	height   int
}

// New returns a view for ref. sprites may be nil to disable thumbnails.
func New(ctx context.Context, ref string, fetcher pokedex.DetailFetcher, sprites SpriteSource) *Model {
	return &Model{
		ctx:      ctx,
		ref:      ref,
		fetcher:  fetcher,
		sprites:  sprites,
		loading:  components.NewLoadingState("Loading Pokémon..."),
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Init starts the record fetch.
func (m *Model) Init() tea.Cmd {
	ref := m.ref
	fetch := m.record.Start(m.ctx, func(ctx context.Context) (pokedex.Detail, error) {
		return m.fetcher.Pokemon(ctx, ref)
	})
	return tea.Batch(m.loading.Init(), fetch)
}

// Update handles fetch results, resizes and scrolling.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg[pokedex.Detail]:
		return m, m.handleRecord(msg)

	case ResultMsg[string]:
		if m.sprite.Handle(msg) {
			if err := m.sprite.Err(); err != nil {
				m.logFailure(err, "sprite fetch failed")
			}
			m.refresh()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	if m.record.Status() == StatusLoading {
		return m, m.loading.Update(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleRecord(msg ResultMsg[pokedex.Detail]) tea.Cmd {
	if !m.record.Handle(msg) {
		return nil
	}

	if err := m.record.Err(); err != nil {
		m.logFailure(err, "pokemon fetch failed")
		return nil
	}

	m.refresh()
	m.viewport.GotoTop()

	d := m.record.Value()
	if m.sprites == nil || d.SpriteURL == "" {
		return nil
	}
	sprites, url := m.sprites, d.SpriteURL
	return m.sprite.Start(m.ctx, func(ctx context.Context) (string, error) {
		return sprites.Thumbnail(ctx, url)
	})
}

func (m *Model) logFailure(err error, msg string) {
	log := logging.FromContext(m.ctx)
	ev := log.Error()
	if errors.Is(err, context.Canceled) {
		ev = log.Debug()
	}
	ev.Ctx(m.ctx).
		Str("component", "tui.detail").
		Str("ref", m.ref).
		Err(err).
		Msg(msg)
}

// SetSize resizes the scrollable area.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.viewport.Width = m.width
	m.viewport.Height = m.height
	m.refresh()
}

// Close cancels every fetch this view started.
func (m *Model) Close() {
	m.record.Close()
	m.sprite.Close()
}

// Ref returns the id or name the view was opened for.
func (m *Model) Ref() string {
	return m.ref
}

// Status returns the state of the record fetch.
func (m *Model) Status() Status {
	return m.record.Status()
}

// Record returns the loaded record and whether it is available.
func (m *Model) Record() (pokedex.Detail, bool) {
	return m.record.Value(), m.record.Status() == StatusLoaded
}

// View renders the current state.
func (m *Model) View() string {
	switch m.record.Status() {
	case StatusLoading, StatusIdle:
		return components.RenderLoading(m.loading)
	case StatusFailed:
		return components.WarningStyle.Render(NotFoundMessage) + "\n\n" +
			components.SubtleStyle.Render("[Esc] Back to list")
	default:
		return m.viewport.View()
	}
}

func (m *Model) refresh() {
	if m.record.Status() != StatusLoaded {
		return
	}
	m.viewport.SetContent(RenderDetail(m.record.Value(), m.sprite.Value(), m.width))
}

// RenderDetail renders a record. thumbnail may be empty.
func RenderDetail(d pokedex.Detail, thumbnail string, width int) string {
	var facts strings.Builder
	facts.WriteString(components.HeaderStyle.Render(fmt.Sprintf("#%03d %s", d.ID, pokedex.DisplayName(d.Name))))
	facts.WriteString("\n\n")
	writeField(&facts, "Height", pokedex.FormatHeight(d.Height))
	writeField(&facts, "Weight", pokedex.FormatWeight(d.Weight))
	facts.WriteString(components.LabelStyle.Render(pad("Types")))
	facts.WriteString(components.TypeBadges(d.Types))
	facts.WriteString("\n")
	writeField(&facts, "Abilities", pokedex.JoinNames(d.Abilities))

	top := facts.String()
	if thumbnail != "" && width >= lipgloss.Width(thumbnail)+lipgloss.Width(top)+spriteGap {
		top = lipgloss.JoinHorizontal(lipgloss.Top, thumbnail, strings.Repeat(" ", spriteGap), top)
	}

	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString("\n\n")

	sb.WriteString(components.HeaderStyle.Render("Base stats"))
	sb.WriteString("\n")
	for _, s := range d.Stats {
		sb.WriteString(components.LabelStyle.Render(pad(pokedex.DisplayName(s.Name))))
		sb.WriteString(components.ValueStyle.Render(fmt.Sprintf("%3d ", s.BaseStat)))
		sb.WriteString(components.StatBar(s.BaseStat, statBarWidth))
		sb.WriteString("\n")
	}

	moves := d.DisplayedMoves()
	sb.WriteString("\n")
	sb.WriteString(components.HeaderStyle.Render(fmt.Sprintf("Moves (%d of %d)", len(moves), len(d.Moves))))
	sb.WriteString("\n")
	if len(moves) == 0 {
		sb.WriteString(components.SubtleStyle.Render("none"))
	}
	for i, mv := range moves {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  " + pokedex.DisplayName(mv))
	}

	return sb.String()
}

func writeField(sb *strings.Builder, label, value string) {
	sb.WriteString(components.LabelStyle.Render(pad(label)))
	sb.WriteString(components.ValueStyle.Render(value))
	sb.WriteString("\n")
}

func pad(label string) string {
	return fmt.Sprintf("%-*s", labelWidth, label)
}
