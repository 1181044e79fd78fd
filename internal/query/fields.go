// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/jazzdb/pkg/types"
)

// ValidFields lists the canonical field selectors accepted by
// DistinctValues and TopValues. Each also accepts a singular or short
// alias: "key", "rhythm", "composer", and "time".
var ValidFields = []string{"keys", "rhythms", "composers", "time-signatures"}

// UnknownFieldError reports a field selector that names no catalog field.
// It is recoverable: commands print it and exit cleanly.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q: valid fields are %s",
		e.Field, strings.Join(ValidFields, ", "))
}

// DistinctValues returns the distinct present values of a field across
// the catalog in ascending lexical order. Equality is case-sensitive,
// so "Swing" and "swing" are separate entries. The selector is matched
// ignoring case.
func DistinctValues(songs []types.Song, field string) ([]string, error) {
	get, ok := fieldAccessor(field)
	if !ok {
		return nil, &UnknownFieldError{Field: field}
	}

	seen := make(map[string]struct{})
	var values []string
	for i := range songs {
		v := get(&songs[i])
		if v == nil {
			continue
		}
		if _, dup := seen[*v]; dup {
			continue
		}
		seen[*v] = struct{}{}
		values = append(values, *v)
	}
	sort.Strings(values)
	return values, nil
}

// fieldAccessor resolves a selector to the accessor for that song field.
// Selectors are matched ignoring case, plural or alias form.
func fieldAccessor(field string) (func(*types.Song) *string, bool) {
	switch strings.ToLower(field) {
	case "keys", "key":
		return func(s *types.Song) *string { return s.Key }, true
	case "rhythms", "rhythm":
		return func(s *types.Song) *string { return s.Rhythm }, true
	case "composers", "composer":
		return func(s *types.Song) *string { return s.Composer }, true
	case "time-signatures", "time":
		return func(s *types.Song) *string { return s.TimeSignature }, true
	}
	return nil, false
}
