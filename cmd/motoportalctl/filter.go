package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/motoportal-api/internal/catalog"
	"github.com/aanand-mishra/motoportal-api/internal/hours"
	"github.com/aanand-mishra/motoportal-api/internal/seed"
	"github.com/aanand-mishra/motoportal-api/internal/storage/memory"
	"github.com/aanand-mishra/motoportal-api/internal/types"
	"github.com/aanand-mishra/motoportal-api/internal/validation"
)

func newFilterCmd(g *globalOptions) *cobra.Command {
	var (
		file     string
		kind     string
		sortKey  string
		criteria catalog.ListingCriteria
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Run the catalog filters over a seed file",
		Long: `Load a seed file into memory, apply the same filters and sort the
/api/listings endpoint uses and print the result with current badges.`,
		Example: `  motoportalctl filter --kind=service --tags=ТО,Диагностика
  motoportalctl filter --q=мото --search-tags --sort=name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria.Kind = types.Kind(kind)
			if criteria.Kind != "" && !criteria.Kind.Valid() {
				return fmt.Errorf("unknown kind %q: use school, service or shop", kind)
			}
			switch sortKey {
			case catalog.SortNone, catalog.SortRating, catalog.SortName, catalog.SortNewest:
			default:
				return fmt.Errorf("unknown sort %q: use rating, name or newest", sortKey)
			}

			f, err := seed.Load(file)
			if err != nil {
				return err
			}

			store := memory.New(nil)
			if _, err := seed.Import(store, f, validation.New()); err != nil {
				return err
			}

			listings, err := store.GetListings(criteria.Kind)
			if err != nil {
				return err
			}

			ev, err := g.evaluator(nil)
			if err != nil {
				return err
			}

			result := catalog.SortListings(catalog.FilterListings(listings, criteria), sortKey)
			g.logger(cmd).Debug("filter applied",
				slog.Int("loaded", len(listings)),
				slog.Int("matched", len(result)),
			)

			now := ev.Now()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tNAME\tCATEGORY\tLOCATION\tRATING\tSTATUS")
			for _, l := range result {
				st := ev.StatusAt(l, now)
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.1f\t%s\n",
					l.ID, l.Kind, l.Name, l.Category, l.Location, l.Rating, hours.Label(st.Open))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d listings\n", len(result), len(listings))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "config/seed.yaml", "Seed YAML file to load")
	flags.StringVar(&kind, "kind", "", "Listing kind: school, service or shop")
	flags.StringVarP(&criteria.Search, "q", "q", "", "Case-insensitive search in name and description")
	flags.BoolVar(&criteria.SearchTags, "search-tags", false, "Also search tags, courses, services and features")
	flags.StringVar(&criteria.Category, "category", "", `Exact category ("Все" means any)`)
	flags.StringSliceVar(&criteria.Tags, "tags", nil, "Comma separated tags; a listing needs at least one")
	flags.StringVar(&criteria.Location, "location", "", "Exact location")
	flags.Float64Var(&criteria.MinRating, "min-rating", 0, "Lowest rating to keep")
	flags.StringVar(&sortKey, "sort", "", "Sort: rating, name or newest")

	return cmd
}
