// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"sort"

	"github.com/pdiddy/jazzdb/pkg/types"
)

// Stats computes field coverage across the catalog: how many songs carry
// each optional field, and what share of the total that is. An empty
// catalog yields zero counts and zero percentages.
func Stats(songs []types.Song) types.CatalogStats {
	st := types.CatalogStats{Total: len(songs)}
	for i := range songs {
		s := &songs[i]
		if s.Composer != nil {
			st.Composers.Count++
		}
		if s.Key != nil {
			st.Keys.Count++
		}
		if s.Rhythm != nil {
			st.Rhythms.Count++
		}
		if s.TimeSignature != nil {
			st.TimeSignatures.Count++
		}
		if s.Sections != nil {
			st.Sections.Count++
		}
	}
	st.Composers.Percent = percent(st.Composers.Count, st.Total)
	st.Keys.Percent = percent(st.Keys.Count, st.Total)
	st.Rhythms.Percent = percent(st.Rhythms.Count, st.Total)
	st.TimeSignatures.Percent = percent(st.TimeSignatures.Count, st.Total)
	st.Sections.Percent = percent(st.Sections.Count, st.Total)
	return st
}

// TopValues returns the most frequent values of a field, grouped
// case-sensitively, sorted by descending count with ties broken by
// ascending value so the order is reproducible. At most limit entries
// come back; limit <= 0 means no cap. The field selector follows the
// same rules as DistinctValues.
func TopValues(songs []types.Song, field string, limit int) ([]types.ValueCount, error) {
	get, ok := fieldAccessor(field)
	if !ok {
		return nil, &UnknownFieldError{Field: field}
	}

	counts := make(map[string]int)
	for i := range songs {
		if v := get(&songs[i]); v != nil {
			counts[*v]++
		}
	}

	entries := make([]types.ValueCount, 0, len(counts))
	for v, n := range counts {
		entries = append(entries, types.ValueCount{Value: v, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// percent is count over total in percent. Zero total means zero percent,
// never a division by zero.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
