package types

import "time"

// HTTPConfig holds shared HTTP settings for the collect sources.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "jazzdb/0.1"). Remote song databases ask scrapers to
	// identify themselves.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// Contact is an optional email appended to the User-Agent so site
	// operators can reach whoever runs the collector.
	Contact string `json:"contact,omitempty" yaml:"contact,omitempty"`
}

// CollectConfig holds settings for the collect pipeline.
type CollectConfig struct {
	HTTPConfig `yaml:",inline"`

	// TitlesFile is the path to a text file with one song title per line.
	TitlesFile string `json:"titles_file" yaml:"titles_file"`

	// DatasetPath is the JSON dataset to create or refresh
	// (default "data/JazzStandards.json").
	DatasetPath string `json:"dataset_path" yaml:"dataset_path"`

	// ReportPath is where the YAML summary report is written
	// (default "collect-report.yaml").
	ReportPath string `json:"report_path" yaml:"report_path"`

	// CachePath is the SQLite fetch cache (default "collect-cache.db").
	// Deleting the file forces a full refetch.
	CachePath string `json:"cache_path" yaml:"cache_path"`

	// Sources lists enabled source names in priority order
	// (default ["wikipedia", "jazzstandards"]).
	Sources []string `json:"sources" yaml:"sources"`

	// WikipediaDelay is the pause between Wikipedia requests (default 500ms).
	WikipediaDelay time.Duration `json:"wikipedia_delay" yaml:"wikipedia_delay"`

	// JazzRefDelay is the pause between jazzstandards.com requests
	// (default 2s; the site is small, be polite).
	JazzRefDelay time.Duration `json:"jazzref_delay" yaml:"jazzref_delay"`

	// SaveEvery writes the dataset to disk after this many processed
	// titles so an interrupted run loses little work (default 20).
	SaveEvery int `json:"save_every" yaml:"save_every"`

	// Limit caps how many titles are processed; 0 means no cap.
	Limit int `json:"limit" yaml:"limit"`

	// Refresh refetches titles that already have complete entries.
	Refresh bool `json:"refresh" yaml:"refresh"`
}
