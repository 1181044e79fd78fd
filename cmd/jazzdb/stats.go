package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/jazzdb/internal/query"
	"github.com/pdiddy/jazzdb/internal/render"
	"github.com/pdiddy/jazzdb/pkg/types"
)

// topEntries caps the detailed-statistics frequency tables.
const topEntries = 10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog coverage statistics",
	Long: `Stats reports how many songs carry each optional field and what share
of the catalog that is. With --detailed it adds the ten most frequent
keys, rhythms, and composers.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	detailed, _ := cmd.Flags().GetBool("detailed")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	st := query.Stats(songs)
	if !detailed {
		if jsonOutput {
			return render.JSONTo(os.Stdout, st)
		}
		render.StatsReport(os.Stdout, st)
		return nil
	}

	keys, err := query.TopValues(songs, "keys", topEntries)
	if err != nil {
		return err
	}
	rhythms, err := query.TopValues(songs, "rhythms", topEntries)
	if err != nil {
		return err
	}
	composers, err := query.TopValues(songs, "composers", topEntries)
	if err != nil {
		return err
	}

	if jsonOutput {
		out := struct {
			types.CatalogStats
			KeyDistribution    []types.ValueCount `json:"key_distribution"`
			RhythmDistribution []types.ValueCount `json:"rhythm_distribution"`
			TopComposers       []types.ValueCount `json:"top_composers"`
		}{st, keys, rhythms, composers}
		return render.JSONTo(os.Stdout, out)
	}

	render.StatsReport(os.Stdout, st)
	render.StatsDetailed(os.Stdout, keys, rhythms, composers)
	return nil
}

func init() {
	statsCmd.Flags().Bool("detailed", false, "add value frequency tables for keys, rhythms, and composers")
	statsCmd.Flags().Bool("json", false, "output statistics as JSON")

	rootCmd.AddCommand(statsCmd)
}
