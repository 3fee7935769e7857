package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/recipefinder/backend/internal/database"
	"github.com/pageza/recipefinder/backend/internal/service"
	"github.com/pageza/recipefinder/backend/internal/storage"
	"github.com/pageza/recipefinder/backend/internal/types"
)

func newShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe, from the saved collection or TheMealDB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(opts.cfg, opts.log)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()
			if err := database.RunMigrations(db, opts.log); err != nil {
				return err
			}

			svc := service.NewRecipeService(storage.NewLocal(db), opts.lookup(), opts.log)
			recipe, err := svc.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), recipe)
			}
			printRecipe(cmd.OutOrStdout(), recipe)
			return nil
		},
	}
}

func printRecipe(w io.Writer, r *types.Recipe) {
	fmt.Fprintf(w, "%s (%s)\n", r.Title, r.ID)
	if len(r.Cuisines) > 0 {
		fmt.Fprintf(w, "Cuisine: %s\n", strings.Join(r.Cuisines, ", "))
	}
	fmt.Fprintf(w, "Ready in %d mins, serves %d\n", r.ReadyInMinutes, r.Servings)
	if r.DateAdded != "" {
		fmt.Fprintf(w, "Saved on %s\n", r.DateAdded)
	}

	fmt.Fprintln(w, "\nIngredients:")
	for _, ing := range r.Ingredients {
		qty := strings.TrimSpace(ing.Amount + " " + ing.Unit)
		if qty == "" {
			fmt.Fprintf(w, "  - %s\n", ing.Name)
			continue
		}
		fmt.Fprintf(w, "  - %s %s\n", qty, ing.Name)
	}

	if r.Instructions != "" {
		fmt.Fprintf(w, "\nInstructions:\n%s\n", r.Instructions)
	}
}
