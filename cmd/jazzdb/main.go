// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the jazzdb CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/jazzdb/internal/catalog"
	"github.com/pdiddy/jazzdb/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// songs is the loaded catalog. The root command fills it before any
// subcommand runs; everything after that treats it as read-only.
var songs []types.Song

// rootCmd is the base command for the jazzdb CLI.
var rootCmd = &cobra.Command{
	Use:   "jazzdb",
	Short: "Query a curated catalog of jazz standards",
	Long: `jazzdb answers questions about an embedded catalog of jazz standards:
substring search over titles and composers, multi-criterion filtering,
coverage statistics, distinct-value listings, and exact-title lookup.

The catalog ships inside the binary and never changes at runtime. The
collect subcommand rebuilds the dataset file from public song databases;
a rebuilt binary picks up the new data.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := catalog.Load()
		if err != nil {
			return err
		}
		songs = loaded
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./jazzdb.yaml or ~/.config/jazzdb/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("jazzdb")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "jazzdb"))
		}
	}

	viper.SetEnvPrefix("JAZZDB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
