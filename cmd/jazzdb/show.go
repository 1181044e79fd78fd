package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/jazzdb/internal/query"
	"github.com/pdiddy/jazzdb/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show one song by its exact title",
	Long: `Show looks a song up by exact title, ignoring case, and prints its full
structure. When nothing matches it suggests a substring search with the
same term; a miss is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	song := query.FindByTitle(songs, args[0])
	if song == nil {
		if jsonOutput {
			// JSON callers get an explicit null for a miss.
			return render.JSONTo(os.Stdout, nil)
		}
		render.NotFound(os.Stdout, args[0])
		return nil
	}

	if jsonOutput {
		return render.JSONTo(os.Stdout, song)
	}
	render.SongDetail(os.Stdout, song)
	return nil
}

func init() {
	showCmd.Flags().Bool("json", false, "output the song as JSON")

	rootCmd.AddCommand(showCmd)
}
