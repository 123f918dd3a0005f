package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pokedex/internal/pokeapi"
	"github.com/rshade/pokedex/internal/sprite"
	"github.com/rshade/pokedex/internal/tui"
	"github.com/rshade/pokedex/internal/tui/detail"
)

func newBrowseCmd(s *session) *cobra.Command {
	var route string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive browser",
		Long: `Open the full-screen browser at a route: "/" for the list or
"/pokemon/<id>" for one record. When stdout is not a terminal the route is
printed as plain text instead.`,
		Example: `  pokedex browse
  pokedex browse --route /pokemon/150`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.browse(cmd, route)
		},
	}

	cmd.Flags().StringVar(&route, "route", "/", `start route ("/" or "/pokemon/<id>")`)
	return cmd
}

func (s *session) browse(cmd *cobra.Command, path string) error {
	route, err := tui.ParseRoute(path)
	if err != nil {
		return err
	}

	if s.outputMode() != tui.OutputModeInteractive {
		logger.Debug().Ctx(cmd.Context()).Str("route", route.String()).
			Msg("stdout is not interactive, printing route")
		if route.Kind == tui.RoutePokemon {
			return s.printDetail(cmd, route.ID, s.cfg.Output.DefaultFormat)
		}
		return s.printList(cmd, listOptions{pages: 1, output: s.cfg.Output.DefaultFormat})
	}

	return s.runTUI(cmd, route)
}

// spriteSource returns the thumbnail fetcher, or nil when sprites are off.
// It sends the same User-Agent as the API client.
func (s *session) spriteSource() detail.SpriteSource {
	if !s.cfg.UI.Sprites {
		return nil
	}
	return sprite.NewFetcher(nil, s.agent)
}

func (s *session) runTUI(cmd *cobra.Command, route tui.Route) error {
	ctx := commandContext(cmd)

	model := tui.NewAppModel(ctx, s.client, s.spriteSource(), route)
	model.SetSize(tui.TerminalSize(os.Stdout))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !pokeapi.IsCanceled(err) {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
