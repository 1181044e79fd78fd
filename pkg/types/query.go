// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FilterCriteria holds the four independently optional filter conditions.
// A nil field imposes no constraint. Matching rules differ per field:
// Key is an exact case-insensitive match, Rhythm and Composer are
// case-insensitive substring matches, and TimeSignature is an exact
// case-sensitive match.
type FilterCriteria struct {
	// Key filters on the song key, exact match ignoring case.
	Key *string `json:"key,omitempty" yaml:"key,omitempty"`

	// Rhythm filters on the rhythm descriptor, substring match ignoring case.
	Rhythm *string `json:"rhythm,omitempty" yaml:"rhythm,omitempty"`

	// TimeSignature filters on the meter, exact match respecting case.
	TimeSignature *string `json:"time_signature,omitempty" yaml:"time_signature,omitempty"`

	// Composer filters on the composer, substring match ignoring case.
	Composer *string `json:"composer,omitempty" yaml:"composer,omitempty"`
}

// Empty reports whether no criterion is set, in which case a filter
// returns the whole catalog.
func (c FilterCriteria) Empty() bool {
	return c.Key == nil && c.Rhythm == nil && c.TimeSignature == nil && c.Composer == nil
}

// FieldStat reports how many songs carry a given optional field.
type FieldStat struct {
	// Count is the number of songs where the field is present.
	Count int `json:"count" yaml:"count"`

	// Percent is Count over the catalog total, in percent with one
	// decimal of meaningful precision. Zero for an empty catalog.
	Percent float64 `json:"percent" yaml:"percent"`
}

// CatalogStats summarizes field coverage across the catalog.
type CatalogStats struct {
	// Total is the number of songs in the catalog.
	Total int `json:"total" yaml:"total"`

	// Composers counts songs with a composer.
	Composers FieldStat `json:"composers" yaml:"composers"`

	// Keys counts songs with a key.
	Keys FieldStat `json:"keys" yaml:"keys"`

	// Rhythms counts songs with a rhythm descriptor.
	Rhythms FieldStat `json:"rhythms" yaml:"rhythms"`

	// TimeSignatures counts songs with a time signature.
	TimeSignatures FieldStat `json:"time_signatures" yaml:"time_signatures"`

	// Sections counts songs with at least one form section.
	Sections FieldStat `json:"sections" yaml:"sections"`
}

// ValueCount is one entry in a value-frequency table.
type ValueCount struct {
	// Value is the field value as it appears in the catalog. Grouping is
	// case-sensitive, so distinct casings count separately.
	Value string `json:"value" yaml:"value"`

	// Count is the number of songs carrying exactly this value.
	Count int `json:"count" yaml:"count"`
}
