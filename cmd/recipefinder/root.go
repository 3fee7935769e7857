package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/recipefinder/backend/config"
	"github.com/pageza/recipefinder/backend/internal/logger"
	"github.com/pageza/recipefinder/backend/internal/mealdb"
)

// rootOptions holds the global flags. Empty values fall back to the
// environment configuration.
type rootOptions struct {
	baseURL     string
	storagePath string
	timeout     time.Duration
	jsonOutput  bool
	verbose     bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "recipefinder",
		Short: "Find recipes by the ingredients you have",
		Long: `recipefinder searches TheMealDB for recipes that use the ingredients
you have on hand and ranks them by how many of those ingredients they match.

Saved recipes are read from the same local store the API server uses.`,
		Example: `  recipefinder search chicken rice
  recipefinder search --cuisine Italian
  recipefinder show 52940
  recipefinder suggest gar`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.baseURL, "base-url", "", "TheMealDB API root (default from MEALDB_BASE_URL)")
	flags.StringVar(&opts.storagePath, "storage", "", "local store path (default from STORAGE_PATH)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout (default from MEALDB_TIMEOUT)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of a table")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(
		newSearchCommand(opts),
		newShowCommand(opts),
		newSuggestCommand(opts),
	)
	return cmd
}

func (o *rootOptions) load() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if o.baseURL != "" {
		cfg.MealDBBaseURL = o.baseURL
	}
	if o.storagePath != "" {
		cfg.StoragePath = o.storagePath
	}
	if o.timeout > 0 {
		cfg.MealDBTimeout = o.timeout
	}
	o.cfg = cfg

	if !o.verbose {
		o.log = zap.NewNop()
		return nil
	}
	o.log, err = logger.New(config.Development, "debug")
	return err
}

func (o *rootOptions) lookup() mealdb.Lookup {
	return mealdb.NewClient(o.cfg.MealDBBaseURL, o.cfg.MealDBTimeout, o.log)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
