package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pageza/recipefinder/backend/internal/service"
	"github.com/pageza/recipefinder/backend/internal/types"
)

func newSearchCommand(opts *rootOptions) *cobra.Command {
	var name, cuisine string

	cmd := &cobra.Command{
		Use:   "search [ingredient...]",
		Short: "Search recipes by ingredients, name or cuisine",
		Long: `Search recipes by ingredients, name or cuisine.

With ingredients, every ingredient is looked up concurrently and the
results are ranked by how many of the ingredients each recipe matched.
An ingredient whose lookup fails is reported and skipped.`,
		Example: `  recipefinder search chicken rice
  recipefinder search --name curry
  recipefinder search --cuisine Italian --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewSearchService(opts.lookup(), opts.log)
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			var (
				recipes []types.CandidateRecipe
				err     error
			)
			switch {
			case cuisine != "":
				recipes, err = svc.SearchByCuisine(ctx, cuisine)
			case name != "":
				recipes, err = svc.SearchByName(ctx, name)
			default:
				var report *service.SearchReport
				report, err = svc.SearchByIngredientsWithReport(ctx, args)
				if err != nil {
					return err
				}
				if opts.jsonOutput {
					return writeJSON(out, types.IngredientSearchResponse{Recipes: report.Candidates, FailedTerms: report.FailedTerms})
				}
				if len(report.FailedTerms) > 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: lookup failed for %s\n", strings.Join(report.FailedTerms, ", "))
				}
				return printCandidates(out, report.Candidates, true)
			}
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(out, recipes)
			}
			return printCandidates(out, recipes, false)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "search recipe names instead of ingredients")
	cmd.Flags().StringVar(&cuisine, "cuisine", "", "list recipes of a cuisine (e.g. Italian)")
	cmd.MarkFlagsMutuallyExclusive("name", "cuisine")
	return cmd
}

func printCandidates(w io.Writer, recipes []types.CandidateRecipe, withMatches bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if withMatches {
		fmt.Fprintln(tw, "ID\tTITLE\tMATCHES\tINGREDIENTS")
	} else {
		fmt.Fprintln(tw, "ID\tTITLE")
	}
	for _, r := range recipes {
		if withMatches {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.ID, r.Title, r.UsedIngredientCount, strings.Join(r.MatchedIngredients, ", "))
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", r.ID, r.Title)
		}
	}
	return tw.Flush()
}
