package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/pokedex/internal/pokeapi"
	"github.com/rshade/pokedex/internal/pokedex"
)

func newShowCmd(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Print one Pokémon",
		Example: `  pokedex show 25
  pokedex show mewtwo --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				output = s.cfg.Output.DefaultFormat
			}
			return s.printDetail(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	return cmd
}

func (s *session) printDetail(cmd *cobra.Command, ref, output string) error {
	format, err := validateOutput(output)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	d, err := s.client.Pokemon(ctx, ref)
	if err != nil {
		if errors.Is(err, pokeapi.ErrNotFound) || errors.Is(err, pokeapi.ErrMalformedResponse) {
			logger.Debug().Ctx(ctx).Str("ref", ref).Err(err).Msg("pokemon not found")
			return &ExitError{Code: ExitNotFound, Err: fmt.Errorf("pokemon %s not found", ref)}
		}
		logger.Error().Ctx(ctx).Str("ref", ref).Err(err).Msg("pokemon fetch failed")
		return fmt.Errorf("fetching pokemon %s: %w", ref, err)
	}

	if format == outputJSON {
		return writeJSON(cmd.OutOrStdout(), d)
	}
	return writeDetail(cmd.OutOrStdout(), d)
}

func writeDetail(w io.Writer, d pokedex.Detail) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintf(tw, "ID\t%d\n", d.ID)
	fmt.Fprintf(tw, "Name\t%s\n", pokedex.DisplayName(d.Name))
	fmt.Fprintf(tw, "Height\t%s\n", pokedex.FormatHeight(d.Height))
	fmt.Fprintf(tw, "Weight\t%s\n", pokedex.FormatWeight(d.Weight))
	fmt.Fprintf(tw, "Types\t%s\n", strings.Join(d.Types, ", "))
	fmt.Fprintf(tw, "Abilities\t%s\n", pokedex.JoinNames(d.Abilities))
	fmt.Fprintf(tw, "Sprite\t%s\n", d.SpriteURL)
	for _, st := range d.Stats {
		fmt.Fprintf(tw, "%s\t%d\n", pokedex.DisplayName(st.Name), st.BaseStat)
	}
	fmt.Fprintf(tw, "Moves\t%s\n", pokedex.JoinNames(d.DisplayedMoves()))
	return tw.Flush()
}
