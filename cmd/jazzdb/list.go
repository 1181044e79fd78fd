package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/jazzdb/internal/query"
	"github.com/pdiddy/jazzdb/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list <field>",
	Short: "List the distinct values of a catalog field",
	Long: `List prints every distinct value of one field across the catalog in
ascending order, duplicates collapsed. Field is one of keys, rhythms,
composers, or time-signatures; the singular forms and "time" work too.

An unrecognized field prints the valid names and exits cleanly.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	values, err := query.DistinctValues(songs, args[0])
	if err != nil {
		var unknown *query.UnknownFieldError
		if errors.As(err, &unknown) {
			render.UnknownField(os.Stdout, unknown.Field, query.ValidFields)
			return nil
		}
		return err
	}

	if jsonOutput {
		if values == nil {
			values = []string{}
		}
		return render.JSONTo(os.Stdout, values)
	}
	render.ValueList(os.Stdout, listHeading(args[0]), values)
	return nil
}

// listHeading maps a field selector to its display heading.
func listHeading(field string) string {
	switch strings.ToLower(field) {
	case "keys", "key":
		return "Keys"
	case "rhythms", "rhythm":
		return "Rhythms"
	case "composers", "composer":
		return "Composers"
	default:
		return "Time Signatures"
	}
}

func init() {
	listCmd.Flags().Bool("json", false, "output values as JSON")

	rootCmd.AddCommand(listCmd)
}
