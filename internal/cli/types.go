package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/pokedex/internal/pokedex"
	"github.com/rshade/pokedex/internal/tui"
	"github.com/rshade/pokedex/internal/tui/components"
)

const swatch = "    "

func newTypesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the Pokémon types and their colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			styled := s.outputMode() != tui.OutputModePlain
			return writeTypes(cmd, styled)
		},
	}
}

func writeTypes(cmd *cobra.Command, styled bool) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, "Type\tColour\t")
	fmt.Fprintln(tw, "----\t------\t")
	for _, name := range pokedex.Types() {
		hex := pokedex.TypeColor(name)
		sample := ""
		if styled {
			sample = components.TypeBadge(name) + " " +
				lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(swatch)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, hex, sample)
	}
	return tw.Flush()
}
