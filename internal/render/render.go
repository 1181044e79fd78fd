// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes query results as human-readable text.
//
// Every formatter takes an io.Writer so commands can print to stdout and
// tests can capture output. Absent song fields produce no output line at
// all; there are no placeholder values.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/jazzdb/pkg/types"
)

const (
	bannerLine  = "============================================="
	dividerLine = "---------------------------------------------"
)

// SongSummary writes the one-block summary form: title, then each
// present field indented beneath it. Sections show as a count only.
func SongSummary(w io.Writer, s *types.Song) {
	fmt.Fprintln(w, s.Title)
	if s.Composer != nil {
		fmt.Fprintf(w, "  Composer: %s\n", *s.Composer)
	}
	if s.Key != nil {
		fmt.Fprintf(w, "  Key: %s\n", *s.Key)
	}
	if s.Rhythm != nil {
		fmt.Fprintf(w, "  Rhythm: %s\n", *s.Rhythm)
	}
	if s.TimeSignature != nil {
		fmt.Fprintf(w, "  Time: %s\n", *s.TimeSignature)
	}
	if s.Sections != nil {
		fmt.Fprintf(w, "  Sections: %d\n", len(s.Sections))
	}
}

// SongDetail writes the full form walk: header fields plus every
// section with its chords. Unlabeled sections are numbered from 1 in
// form order, endings likewise.
func SongDetail(w io.Writer, s *types.Song) {
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", bannerLine, s.Title, bannerLine)

	if s.Composer != nil {
		fmt.Fprintf(w, "Composer: %s\n", *s.Composer)
	}
	if s.Key != nil {
		fmt.Fprintf(w, "Key: %s\n", *s.Key)
	}
	if s.Rhythm != nil {
		fmt.Fprintf(w, "Rhythm: %s\n", *s.Rhythm)
	}
	if s.TimeSignature != nil {
		fmt.Fprintf(w, "Time Signature: %s\n", *s.TimeSignature)
	}

	if s.Sections == nil {
		return
	}
	fmt.Fprintf(w, "\nSong Structure (%d sections):\n%s\n", len(s.Sections), dividerLine)
	for i, sec := range s.Sections {
		if sec.Label != nil {
			fmt.Fprintf(w, "  Section %s", *sec.Label)
		} else {
			fmt.Fprintf(w, "  Section %d", i+1)
		}
		if sec.Repeats != nil {
			fmt.Fprintf(w, " (repeats: %d)", *sec.Repeats)
		}
		fmt.Fprintln(w)

		if sec.MainSegment != nil && sec.MainSegment.Chords != nil {
			fmt.Fprintf(w, "    Main: %s\n", *sec.MainSegment.Chords)
		}
		for j, ending := range sec.Endings {
			if ending.Chords != nil {
				fmt.Fprintf(w, "    Ending %d: %s\n", j+1, *ending.Chords)
			}
		}
		fmt.Fprintln(w)
	}
}

// SearchResults writes search output: a count header echoing the term,
// then one block per match.
func SearchResults(w io.Writer, term string, songs []*types.Song, detailed bool) {
	if len(songs) == 0 {
		fmt.Fprintf(w, "No songs found matching '%s'\n", term)
		return
	}
	fmt.Fprintf(w, "Found %d song(s) matching '%s':\n%s\n", len(songs), term, dividerLine)
	writeSongBlocks(w, songs, detailed)
}

// FilterResults writes filter output with the same layout as search but
// without a term to echo.
func FilterResults(w io.Writer, songs []*types.Song, detailed bool) {
	if len(songs) == 0 {
		fmt.Fprintln(w, "No songs found matching the filter criteria")
		return
	}
	fmt.Fprintf(w, "Found %d song(s) matching filter criteria:\n%s\n", len(songs), dividerLine)
	writeSongBlocks(w, songs, detailed)
}

func writeSongBlocks(w io.Writer, songs []*types.Song, detailed bool) {
	for _, s := range songs {
		if detailed {
			SongDetail(w, s)
			continue
		}
		SongSummary(w, s)
		fmt.Fprintln(w)
	}
}

// StatsReport writes the coverage summary: total plus count/percent per
// optional field.
func StatsReport(w io.Writer, st types.CatalogStats) {
	fmt.Fprintf(w, "\nJazz Standards Database Statistics\n%s\n", bannerLine)
	fmt.Fprintf(w, "Total songs: %d\n", st.Total)
	writeFieldStat(w, "composers", st.Composers, st.Total)
	writeFieldStat(w, "keys", st.Keys, st.Total)
	writeFieldStat(w, "rhythms", st.Rhythms, st.Total)
	writeFieldStat(w, "time signatures", st.TimeSignatures, st.Total)
	writeFieldStat(w, "sections", st.Sections, st.Total)
}

func writeFieldStat(w io.Writer, name string, fs types.FieldStat, total int) {
	fmt.Fprintf(w, "Songs with %s: %d/%d (%.1f%%)\n", name, fs.Count, total, fs.Percent)
}

// StatsDetailed writes the three frequency tables that follow the
// coverage summary in detailed mode.
func StatsDetailed(w io.Writer, keys, rhythms, composers []types.ValueCount) {
	writeDistribution(w, "Key Distribution:", keys, 6)
	writeDistribution(w, "Rhythm Distribution:", rhythms, 20)
	writeDistribution(w, "Top Composers:", composers, 25)
}

func writeDistribution(w io.Writer, heading string, entries []types.ValueCount, width int) {
	fmt.Fprintf(w, "\n%s\n%s\n", heading, strings.Repeat("-", len(heading)))
	for _, e := range entries {
		fmt.Fprintf(w, "  %-*s: %4d songs\n", width, e.Value, e.Count)
	}
}

// ValueList writes a distinct-values listing under a count heading, one
// value per line.
func ValueList(w io.Writer, heading string, values []string) {
	fmt.Fprintf(w, "Available %s (%d):\n", heading, len(values))
	for _, v := range values {
		fmt.Fprintf(w, "  %s\n", v)
	}
}

// UnknownField reports an unrecognized list selector and names the
// accepted ones.
func UnknownField(w io.Writer, field string, valid []string) {
	fmt.Fprintf(w, "Unknown field '%s'. Available fields: %s\n", field, strings.Join(valid, ", "))
}

// NotFound reports a failed exact-title lookup and suggests the search
// command with the same term the user gave.
func NotFound(w io.Writer, title string) {
	fmt.Fprintf(w, "Song '%s' not found\n", title)
	fmt.Fprintf(w, "Try using 'jazzdb search \"%s\"' for partial matches\n", title)
}

// JSONTo writes v as indented JSON, for the --json output mode.
func JSONTo(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
