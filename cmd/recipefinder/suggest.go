package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/recipefinder/backend/internal/service"
)

func newSuggestCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <text>",
		Short: "Suggest ingredient names containing text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions := service.NewIngredientSuggester().Suggest(strings.Join(args, " "))
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), suggestions)
			}
			for _, s := range suggestions {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
