package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/jazzdb/internal/query"
	"github.com/pdiddy/jazzdb/internal/render"
	"github.com/pdiddy/jazzdb/pkg/types"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter songs by key, rhythm, time signature, or composer",
	Long: `Filter returns songs satisfying every given criterion. Key compares
exactly ignoring case, rhythm and composer match as case-insensitive
substrings, and time signature compares exactly. A song missing a field
never matches a criterion on that field. With no flags the whole catalog
comes back.`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	detailed, _ := cmd.Flags().GetBool("detailed")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	results := query.Filter(songs, criteriaFromFlags(cmd))

	if jsonOutput {
		if results == nil {
			results = []*types.Song{}
		}
		return render.JSONTo(os.Stdout, results)
	}
	render.FilterResults(os.Stdout, results, detailed)
	return nil
}

// criteriaFromFlags treats a flag as a criterion only when the user set
// it, so an unset flag imposes no constraint while an explicitly empty
// one still filters.
func criteriaFromFlags(cmd *cobra.Command) types.FilterCriteria {
	var c types.FilterCriteria
	if cmd.Flags().Changed("key") {
		v, _ := cmd.Flags().GetString("key")
		c.Key = &v
	}
	if cmd.Flags().Changed("rhythm") {
		v, _ := cmd.Flags().GetString("rhythm")
		c.Rhythm = &v
	}
	if cmd.Flags().Changed("time") {
		v, _ := cmd.Flags().GetString("time")
		c.TimeSignature = &v
	}
	if cmd.Flags().Changed("composer") {
		v, _ := cmd.Flags().GetString("composer")
		c.Composer = &v
	}
	return c
}

func init() {
	filterCmd.Flags().String("key", "", "song key, exact match ignoring case (e.g. Bb)")
	filterCmd.Flags().String("rhythm", "", "rhythm substring, ignoring case (e.g. swing)")
	filterCmd.Flags().String("time", "", "time signature, exact match (e.g. 3/4)")
	filterCmd.Flags().String("composer", "", "composer substring, ignoring case")
	filterCmd.Flags().Bool("detailed", false, "show the full song structure for each match")
	filterCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(filterCmd)
}
