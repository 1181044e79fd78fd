package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/jazzdb/internal/query"
	"github.com/pdiddy/jazzdb/internal/render"
	"github.com/pdiddy/jazzdb/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search songs by title or composer",
	Long: `Search matches the term as a case-insensitive substring of each song's
title or composer. Songs without a composer match on title only. Matches
come back in catalog order; finding nothing is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	detailed, _ := cmd.Flags().GetBool("detailed")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	results := query.Search(songs, args[0])

	if jsonOutput {
		if results == nil {
			results = []*types.Song{}
		}
		return render.JSONTo(os.Stdout, results)
	}
	render.SearchResults(os.Stdout, args[0], results, detailed)
	return nil
}

func init() {
	searchCmd.Flags().Bool("detailed", false, "show the full song structure for each match")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
