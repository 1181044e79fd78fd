// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query answers read-only questions about the loaded catalog.
//
// All functions are pure: they take the catalog explicitly, never modify
// it, and return pointers into it rather than copies. Result order is
// catalog order throughout.
//
// Comparison rules are deliberately uneven, matching the dataset's
// conventions: title, composer, and rhythm matching folds case; key
// matching is an exact comparison ignoring case; time signatures compare
// byte-for-byte ("4/4" and "4/4 " are different meters as far as the
// catalog is concerned).
package query

import (
	"strings"

	"github.com/pdiddy/jazzdb/pkg/types"
)

// Search returns every song whose title or composer contains term,
// ignoring case. An empty term matches the whole catalog. Songs without
// a composer match on title only.
func Search(songs []types.Song, term string) []*types.Song {
	needle := strings.ToLower(term)
	var matches []*types.Song
	for i := range songs {
		s := &songs[i]
		if strings.Contains(strings.ToLower(s.Title), needle) {
			matches = append(matches, s)
			continue
		}
		if s.Composer != nil && strings.Contains(strings.ToLower(*s.Composer), needle) {
			matches = append(matches, s)
		}
	}
	return matches
}

// Filter returns every song satisfying all present criteria. Absent
// criteria impose no constraint; a song whose field is absent fails any
// criterion naming that field. With no criteria set the whole catalog
// comes back.
func Filter(songs []types.Song, c types.FilterCriteria) []*types.Song {
	var matches []*types.Song
	for i := range songs {
		s := &songs[i]
		if matchesCriteria(s, c) {
			matches = append(matches, s)
		}
	}
	return matches
}

func matchesCriteria(s *types.Song, c types.FilterCriteria) bool {
	if c.Key != nil {
		if s.Key == nil || !strings.EqualFold(*s.Key, *c.Key) {
			return false
		}
	}
	if c.Rhythm != nil {
		if s.Rhythm == nil || !containsFold(*s.Rhythm, *c.Rhythm) {
			return false
		}
	}
	if c.TimeSignature != nil {
		if s.TimeSignature == nil || *s.TimeSignature != *c.TimeSignature {
			return false
		}
	}
	if c.Composer != nil {
		if s.Composer == nil || !containsFold(*s.Composer, *c.Composer) {
			return false
		}
	}
	return true
}

// FindByTitle returns the first song whose title equals title ignoring
// case, or nil when no song matches.
func FindByTitle(songs []types.Song, title string) *types.Song {
	for i := range songs {
		if strings.EqualFold(songs[i].Title, title) {
			return &songs[i]
		}
	}
	return nil
}

// containsFold reports whether needle occurs in haystack ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
