// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the jazzdb catalog
// and the collect pipeline.
//
// The JSON tags on Song, Section, and Segment match the embedded dataset
// (data/JazzStandards.json), which uses PascalCase keys. Optional fields
// are pointers so that an absent field stays distinct from an empty one.
package types

// Song is one musical standard in the catalog.
type Song struct {
	// Title is the display name and de facto lookup key. Always present.
	Title string `json:"Title" yaml:"title"`

	// Composer is the credited composer, when known.
	Composer *string `json:"Composer,omitempty" yaml:"composer,omitempty"`

	// Key is the nominal key (e.g. "Bb", "F-"). Free-form text.
	Key *string `json:"Key,omitempty" yaml:"key,omitempty"`

	// Rhythm is a style or feel descriptor (e.g. "Medium Swing", "Bossa Nova").
	Rhythm *string `json:"Rhythm,omitempty" yaml:"rhythm,omitempty"`

	// TimeSignature is the meter (e.g. "4/4"). Compared case-sensitively,
	// unlike the other text fields.
	TimeSignature *string `json:"TimeSignature,omitempty" yaml:"time_signature,omitempty"`

	// Sections is the song form in order, when the chart is available.
	Sections []Section `json:"Sections,omitempty" yaml:"sections,omitempty"`
}

// Section is one structural part of a song's form.
type Section struct {
	// Label names the part (e.g. "A", "Bridge"), when the chart labels it.
	Label *string `json:"Label,omitempty" yaml:"label,omitempty"`

	// Repeats is how many times the section is played, when marked.
	Repeats *uint `json:"Repeats,omitempty" yaml:"repeats,omitempty"`

	// MainSegment holds the primary chord content for the section.
	MainSegment *Segment `json:"MainSegment,omitempty" yaml:"main_segment,omitempty"`

	// Endings holds alternate endings in order (first ending, second ending).
	Endings []Segment `json:"Endings,omitempty" yaml:"endings,omitempty"`
}

// Segment is a block of chord content.
type Segment struct {
	// Chords is a serialized chord progression. jazzdb treats it as opaque
	// text; it is never parsed.
	Chords *string `json:"Chords,omitempty" yaml:"chords,omitempty"`
}
