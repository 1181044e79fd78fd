// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/jazzdb/internal/catalog"
	"github.com/pdiddy/jazzdb/pkg/types"
)

// Dataset is the on-disk JSON catalog a collect run builds or refreshes.
// Songs keep their file order; new songs are appended.
type Dataset struct {
	Path  string
	Songs []types.Song

	index map[string]int
}

// OpenDataset reads the dataset at path. A missing file yields an empty
// dataset so a first run can start from nothing.
func OpenDataset(path string) (*Dataset, error) {
	ds := &Dataset{Path: path, index: make(map[string]int)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ds, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	songs, err := catalog.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	ds.Songs = songs
	for i := range ds.Songs {
		ds.index[strings.ToLower(ds.Songs[i].Title)] = i
	}
	return ds, nil
}

// Len returns the number of songs in the dataset.
func (d *Dataset) Len() int { return len(d.Songs) }

// Find returns the song whose title matches ignoring case, or nil.
func (d *Dataset) Find(title string) *types.Song {
	i, ok := d.index[strings.ToLower(title)]
	if !ok {
		return nil
	}
	return &d.Songs[i]
}

// Upsert replaces the song with the same title (ignoring case) or
// appends it.
func (d *Dataset) Upsert(song types.Song) {
	key := strings.ToLower(song.Title)
	if i, ok := d.index[key]; ok {
		d.Songs[i] = song
		return
	}
	d.index[key] = len(d.Songs)
	d.Songs = append(d.Songs, song)
}

// Save writes the dataset as indented JSON. The write goes to a temp
// file in the same directory followed by a rename, so a crash never
// leaves a truncated dataset behind.
func (d *Dataset) Save() error {
	if err := os.MkdirAll(filepath.Dir(d.Path), 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}

	songs := d.Songs
	if songs == nil {
		songs = []types.Song{}
	}
	data, err := json.MarshalIndent(songs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(d.Path), ".jazzdb-*.json")
	if err != nil {
		return fmt.Errorf("create temp dataset: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close dataset: %w", err)
	}
	if err := os.Rename(tmpPath, d.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}
