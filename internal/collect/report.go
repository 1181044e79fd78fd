// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/jazzdb/internal/query"
	"github.com/pdiddy/jazzdb/pkg/types"
)

// Report is the YAML summary written at the end of a collect run. It
// pairs the run counts with coverage statistics over the dataset the
// run left behind.
type Report struct {
	GeneratedAt time.Time          `yaml:"generated_at"`
	Dataset     string             `yaml:"dataset"`
	Sources     []string           `yaml:"sources"`
	Run         Summary            `yaml:"run"`
	Coverage    types.CatalogStats `yaml:"coverage"`
	TopKeys     []types.ValueCount `yaml:"top_keys,omitempty"`
	TopRhythms  []types.ValueCount `yaml:"top_rhythms,omitempty"`
}

const reportTopEntries = 5

// BuildReport assembles the report for a finished run.
func BuildReport(cfg types.CollectConfig, sum Summary, songs []types.Song) Report {
	r := Report{
		GeneratedAt: time.Now().UTC(),
		Dataset:     cfg.DatasetPath,
		Sources:     cfg.Sources,
		Run:         sum,
		Coverage:    query.Stats(songs),
	}
	if keys, err := query.TopValues(songs, "keys", reportTopEntries); err == nil {
		r.TopKeys = keys
	}
	if rhythms, err := query.TopValues(songs, "rhythms", reportTopEntries); err == nil {
		r.TopRhythms = rhythms
	}
	return r
}

// WriteReport writes the report as YAML.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
