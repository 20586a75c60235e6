package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gitrdm/covopt/internal/config"
	"github.com/gitrdm/covopt/internal/ingest"
	"github.com/gitrdm/covopt/internal/report"
	"github.com/gitrdm/covopt/internal/telemetry"
	"github.com/gitrdm/covopt/pkg/maxcover"
)

// rootCmd is the covopt CLI's single operation — spec.md §6's "example
// main that wires input to core and prints the result" — exposed as a
// cobra command so its flags can also be bound through viper (flag or
// env var).
var rootCmd = &cobra.Command{
	Use:   "covopt",
	Short: "Select an ingredient budget maximizing recipe coverage",
	Long: `covopt runs a branch-and-bound search over a recipe catalog to find the
best recipe coverage for an ingredient budget: given a CSV of recipes
(one per row, recipe name then ingredient names) and an ingredient budget
k, it reports the largest set of recipes that can be fully made from at
most k distinct ingredients.`,
	RunE: runSearch,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.InputPath, "input", "", "path to the recipe CSV file (required)")
	flags.IntVar(&opts.Ingredients, "ingredients", config.DefaultIngredients, "ingredient budget k")
	flags.IntVar(&opts.MaxCalls, "max-calls", config.DefaultMaxCalls, "search call budget")
	flags.StringVar(&opts.Format, "format", config.DefaultFormat, "output format: table, json, or simple")
	flags.StringVar(&opts.BoundProfile, "bound-profile", "", "optional YAML file selecting/ordering bound functions")
	flags.StringVar(&opts.MetricsAddr, "metrics-addr", "", "optional host:port to serve Prometheus metrics after the search completes")
	flags.BoolVar(&opts.Verbose, "verbose", false, "enable development-mode (human-readable, debug-level) logging")

	_ = rootCmd.MarkFlagRequired("input")

	viper.SetEnvPrefix("covopt")
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)
}

// opts is populated by cobra flag parsing above; viper additionally
// allows every flag to be overridden by a COVOPT_* environment
// variable (e.g. COVOPT_INGREDIENTS=16).
var opts config.Options

func runSearch(cmd *cobra.Command, args []string) error {
	opts.InputPath = viper.GetString("input")
	opts.Ingredients = viper.GetInt("ingredients")
	opts.MaxCalls = viper.GetInt("max-calls")
	opts.Format = viper.GetString("format")
	opts.BoundProfile = viper.GetString("bound-profile")
	opts.MetricsAddr = viper.GetString("metrics-addr")
	opts.Verbose = viper.GetBool("verbose")

	log := telemetry.New(opts.Verbose)
	defer log.Sync()

	if err := config.ValidateIngredients(opts.Ingredients); err != nil {
		return exitError{err: err, code: 1}
	}
	if err := config.ValidateFormat(opts.Format); err != nil {
		return exitError{err: err, code: 1}
	}

	f, err := os.Open(opts.InputPath)
	if err != nil {
		return exitError{err: fmt.Errorf("opening input: %w", err), code: 1}
	}
	defer f.Close()

	catalog, err := ingest.LoadCSV(f)
	if err != nil {
		return exitError{err: err, code: 1}
	}

	builder := maxcover.NewBuilder(opts.MaxCalls, opts.Ingredients)
	if opts.BoundProfile != "" {
		profile, err := config.LoadBoundProfile(opts.BoundProfile)
		if err != nil {
			return exitError{err: err, code: 1}
		}
		bounds, err := profile.Resolve()
		if err != nil {
			return exitError{err: err, code: 1}
		}
		for _, b := range bounds {
			builder.WithBound(b)
		}
	} else {
		builder.WithDefaultBounds()
	}
	engine := builder.Build()

	log.Infow("starting search",
		"ingredients", opts.Ingredients,
		"max_calls", opts.MaxCalls,
		"recipes", len(catalog.Recipes),
		"universe", catalog.Ingredients.Len(),
	)

	start := time.Now()
	res := engine.Search(catalog.Recipes, nil)
	elapsed := time.Since(start)

	if res.BudgetExhausted {
		log.BudgetExhausted(res.Counter, res.Score)
	}

	if opts.MetricsAddr != "" {
		metrics := telemetry.NewMetrics()
		metrics.Observe(res.Counter, elapsed)
		shutdown, err := metrics.Serve(opts.MetricsAddr)
		if err != nil {
			log.Warnw("failed to serve metrics", "error", err)
		} else {
			defer shutdown()
			log.Infow("serving metrics", "addr", opts.MetricsAddr)
		}
	}

	return report.Render(opts.Format, res.Incumbent, catalog.Ingredients, catalog.Names, res.Counter, res.BudgetExhausted, cmd.OutOrStdout())
}

// exitError carries the process exit code a usage or I/O failure
// should produce, per spec.md §6's exit-code contract (0 success, 1
// invalid k or I/O failure).
type exitError struct {
	err  error
	code int
}

func (e exitError) Error() string { return e.err.Error() }
