package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nekomori/animeseek/internal/cache"
	"github.com/nekomori/animeseek/internal/config"
	"github.com/nekomori/animeseek/internal/fetch"
	"github.com/nekomori/animeseek/internal/fuzzy"
	"github.com/nekomori/animeseek/internal/logging"
	"github.com/nekomori/animeseek/internal/metrics"
	"github.com/nekomori/animeseek/internal/provider"
	"github.com/nekomori/animeseek/internal/resolver"
	"github.com/nekomori/animeseek/internal/torrent"
)

var (
	version = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"
	cfgFile string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "animeseek",
		Short: "Anime torrent search with fuzzy title matching",
		Long: `Animeseek searches a torrent index for anime, resolves the best-matching
page for a query even when titles differ in romanization or compound-word
spelling, and extracts release metadata from the results.

Features:
  - Multi-strategy fuzzy title matching (exact, edit distance, normalized, phonetic)
  - Romanization-aware normalization: "Shounen" matches "Shonen"
  - Batch and episode detection from release names
  - HTTP API for external integrations`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/animeseek/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMetricsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles the wired search pipeline for the CLI commands.
type app struct {
	cfg      *config.Config
	log      *logging.Logger
	metrics  *metrics.Metrics
	resolver *resolver.Resolver
	provider *provider.Provider
}

func buildApp() (*app, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to init logging: %w", err)
	}

	met := metrics.New()
	matcher := fuzzy.NewMatcher(cfg.Matcher, met)
	pageCache := cache.New[string](cfg.Cache.Capacity, cfg.Cache.TTL, met)
	res := resolver.New(matcher, pageCache, cfg.Resolver, log)
	client := fetch.NewClient(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, log)
	listingCache := cache.New[[]torrent.Metadata](cfg.Cache.Capacity, cfg.Cache.TTL, met)
	prov := provider.New(cfg.Source, client, res, listingCache, met, log)

	return &app{
		cfg:      cfg,
		log:      log,
		metrics:  met,
		resolver: res,
		provider: prov,
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("animeseek %s\n", version)
		},
	}
}
