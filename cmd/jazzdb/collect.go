package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/jazzdb/internal/collect"
	"github.com/pdiddy/jazzdb/pkg/types"
)

const (
	defaultCollectTimeout = 30 * time.Second
	defaultUserAgent      = "jazzdb/0.1"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Build or refresh the dataset from public song databases",
	Long: `Collect looks up song titles in public databases (Wikipedia,
jazzstandards.com) and fills missing composer, key, rhythm, and time
signature fields in the dataset JSON. Existing values are kept unless
--refresh is given. Lookups are cached in SQLite, so an interrupted run
resumes where it stopped.

Without --titles the titles already in the dataset are refreshed. The
run ends with a YAML report of coverage statistics.

Settings live under the collect: key of the config file; flags override
them.`,
	Args: cobra.NoArgs,
	RunE: runCollect,
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg := collectConfig()

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := newCollectLogger(verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ds, err := collect.OpenDataset(cfg.DatasetPath)
	if err != nil {
		return err
	}

	var titles []string
	if cfg.TitlesFile != "" {
		titles, err = collect.ReadTitles(cfg.TitlesFile)
		if err != nil {
			return err
		}
	} else {
		for _, s := range ds.Songs {
			titles = append(titles, s.Title)
		}
	}
	if len(titles) == 0 {
		return fmt.Errorf("nothing to collect: dataset %s is empty and no --titles file was given", cfg.DatasetPath)
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}
	sources, err := collect.BuildSources(client, cfg)
	if err != nil {
		return err
	}

	cache, err := collect.OpenCache(cfg.CachePath)
	if err != nil {
		return err
	}
	defer cache.Close()

	logger.Info("starting collect run",
		zap.String("dataset", cfg.DatasetPath),
		zap.Int("titles", len(titles)),
		zap.Strings("sources", cfg.Sources),
		zap.Bool("refresh", cfg.Refresh))

	pipeline := collect.NewPipeline(cfg, sources, cache, logger, os.Stdout)
	sum, err := pipeline.Run(cmd.Context(), titles, ds)
	if err != nil {
		return err
	}

	report := collect.BuildReport(cfg, sum, ds.Songs)
	if err := collect.WriteReport(cfg.ReportPath, report); err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", cfg.ReportPath)
	return nil
}

// collectConfig reads the collect settings with flag > config file >
// default precedence. Flags are bound to the collect.* viper keys in
// init, so viper resolves the precedence.
func collectConfig() types.CollectConfig {
	cfg := types.CollectConfig{
		TitlesFile:     viper.GetString("collect.titles_file"),
		DatasetPath:    viper.GetString("collect.dataset_path"),
		ReportPath:     viper.GetString("collect.report_path"),
		CachePath:      viper.GetString("collect.cache_path"),
		Sources:        viper.GetStringSlice("collect.sources"),
		WikipediaDelay: viper.GetDuration("collect.wikipedia_delay"),
		JazzRefDelay:   viper.GetDuration("collect.jazzref_delay"),
		SaveEvery:      viper.GetInt("collect.save_every"),
		Limit:          viper.GetInt("collect.limit"),
		Refresh:        viper.GetBool("collect.refresh"),
	}
	cfg.Timeout = viper.GetDuration("collect.timeout")
	cfg.UserAgent = viper.GetString("collect.user_agent")
	cfg.Contact = viper.GetString("collect.contact")
	return cfg
}

func newCollectLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func init() {
	f := collectCmd.Flags()
	f.String("titles", "", "file with one song title per line (default: titles already in the dataset)")
	f.String("dataset", "", "dataset JSON to create or refresh")
	f.String("report", "", "where to write the YAML run report")
	f.String("cache", "", "SQLite fetch cache path")
	f.StringSlice("source", nil, "sources to query in priority order (wikipedia, jazzstandards)")
	f.Int("limit", 0, "process at most N titles (0 = all)")
	f.Bool("refresh", false, "refetch and overwrite songs that already have complete entries")
	f.Duration("timeout", 0, "HTTP request timeout")
	f.Bool("verbose", false, "enable debug logging")

	viper.SetDefault("collect.dataset_path", "data/JazzStandards.json")
	viper.SetDefault("collect.report_path", "collect-report.yaml")
	viper.SetDefault("collect.cache_path", "collect-cache.db")
	viper.SetDefault("collect.sources", collect.SourceNames)
	viper.SetDefault("collect.wikipedia_delay", 500*time.Millisecond)
	viper.SetDefault("collect.jazzref_delay", 2*time.Second)
	viper.SetDefault("collect.save_every", 20)
	viper.SetDefault("collect.timeout", defaultCollectTimeout)
	viper.SetDefault("collect.user_agent", defaultUserAgent)

	viper.BindPFlag("collect.titles_file", f.Lookup("titles"))
	viper.BindPFlag("collect.dataset_path", f.Lookup("dataset"))
	viper.BindPFlag("collect.report_path", f.Lookup("report"))
	viper.BindPFlag("collect.cache_path", f.Lookup("cache"))
	viper.BindPFlag("collect.sources", f.Lookup("source"))
	viper.BindPFlag("collect.limit", f.Lookup("limit"))
	viper.BindPFlag("collect.refresh", f.Lookup("refresh"))
	viper.BindPFlag("collect.timeout", f.Lookup("timeout"))

	rootCmd.AddCommand(collectCmd)
}
