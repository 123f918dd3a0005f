package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rshade/pokedex/internal/cli/pagination"
	"github.com/rshade/pokedex/internal/pokeapi"
	"github.com/rshade/pokedex/internal/pokedex"
)

const (
	tabPadding = 2

	outputTable = "table"
	outputJSON  = "json"
)

type listOptions struct {
	pages  int
	query  string
	kind   string
	output string
	sort   string
	window pagination.Window
}

func newListCmd(s *session) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print Pokémon page by page",
		Long: `Fetch the first N pages of 20 records, drop duplicates, apply the
search and type filter and print id, name and types.`,
		Example: `  pokedex list
  pokedex list --pages 5 --query saur
  pokedex list --type dragon --output json
  pokedex list --pages 3 --sort name:desc --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("output") {
				opts.output = s.cfg.Output.DefaultFormat
			}
			return s.printList(cmd, opts)
		},
	}

	opts.bind(cmd.Flags())
	return cmd
}

func (o *listOptions) bind(fs *pflag.FlagSet) {
	fs.IntVar(&o.pages, "pages", 1, "number of pages to fetch")
	fs.StringVar(&o.query, "query", "", "case-insensitive name substring")
	fs.StringVar(&o.kind, "type", "", "only records having this type")
	fs.StringVarP(&o.output, "output", "o", outputTable, "output format: table or json")
	fs.StringVar(&o.sort, "sort", "", "sort rows by field[:asc|desc] (id, name, type)")
	fs.IntVar(&o.window.Limit, "limit", 0, "print at most this many rows (0 for all)")
	fs.IntVar(&o.window.Offset, "offset", 0, "skip this many rows before printing")
}

func validateOutput(format string) (string, error) {
	f := strings.ToLower(format)
	if f != outputTable && f != outputJSON {
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
	return f, nil
}

func validateType(name string) error {
	if name == "" || slices.Contains(pokedex.Types(), name) {
		return nil
	}
	return fmt.Errorf("unknown type %q (see 'pokedex types')", name)
}

func (s *session) printList(cmd *cobra.Command, opts listOptions) error {
	format, err := validateOutput(opts.output)
	if err != nil {
		return err
	}
	opts.kind = strings.ToLower(opts.kind)
	if err = validateType(opts.kind); err != nil {
		return err
	}
	if opts.pages < 1 {
		return fmt.Errorf("--pages must be >= 1, got %d", opts.pages)
	}
	if err = opts.window.Validate(); err != nil {
		return err
	}

	sorter := pagination.NewSummarySorter()
	var field, order string
	if opts.sort != "" {
		if field, order, err = pagination.ParseSortExpression(opts.sort); err != nil {
			return err
		}
		if !sorter.IsValidField(field) {
			return fmt.Errorf("%w: %q (valid: %s)", pagination.ErrInvalidSortField, field,
				strings.Join(sorter.GetValidFields(), ", "))
		}
	}

	records, err := s.collectPages(cmd, opts.pages)
	if err != nil {
		return err
	}

	filter := pokedex.FilterState{}.WithQuery(opts.query).WithType(opts.kind)
	rows := pokedex.Filter(records, filter)
	if field != "" {
		rows = sorter.Sort(rows, field, order)
	}
	rows = pagination.Apply(rows, opts.window)

	if format == outputJSON {
		return writeJSON(cmd.OutOrStdout(), rows)
	}
	return writeSummaryTable(cmd.OutOrStdout(), rows)
}

// collectPages drives a Paginator through up to pages pages. A cancelled
// run returns what was gathered so far.
func (s *session) collectPages(cmd *cobra.Command, pages int) ([]pokedex.Summary, error) {
	ctx := commandContext(cmd)
	p := pokedex.NewPaginator()
	defer p.Close()

	for i := range pages {
		if i > 0 && !p.NextPage() {
			break
		}

		t := p.Begin(ctx)
		res, err := s.client.FetchPage(t.Context(), t.Page)
		if err != nil {
			p.Fail(t, err)
			if pokeapi.IsCanceled(err) {
				logger.Debug().Ctx(ctx).Int("page", t.Page).Msg("listing cancelled")
				break
			}
			logger.Error().Ctx(ctx).Int("page", t.Page).Err(err).Msg("page fetch failed")
			return nil, fmt.Errorf("fetching page %d: %w", t.Page, err)
		}

		added, _ := p.Apply(t, res)
		logger.Debug().Ctx(ctx).Int("page", t.Page).Int("added", added).Msg("page applied")
	}

	return p.Records(), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSummaryTable(w io.Writer, rows []pokedex.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, "ID\tName\tTypes")
	fmt.Fprintln(tw, "--\t----\t-----")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.ID, r.Name, strings.Join(r.Types, ", "))
	}
	return tw.Flush()
}
