// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the embedded jazz-standards dataset into memory.
//
// The dataset is compiled into the binary, so a build either always loads
// or always fails. Load order is file order; the query functions depend on
// it staying stable across calls.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/pdiddy/jazzdb/pkg/types"
)

//go:embed data/JazzStandards.json
var datasetJSON []byte

// Load decodes the embedded dataset. The returned slice is the catalog for
// the rest of the process; callers treat it as read-only.
func Load() ([]types.Song, error) {
	songs, err := Decode(datasetJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	return songs, nil
}

// Decode parses a JSON dataset into songs and validates required fields.
// Unknown JSON keys are ignored. Every song must have a non-empty title;
// all other fields may be absent.
func Decode(data []byte) ([]types.Song, error) {
	var songs []types.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i, s := range songs {
		if s.Title == "" {
			return nil, fmt.Errorf("decode catalog: song at index %d has no Title", i)
		}
	}
	return songs, nil
}
