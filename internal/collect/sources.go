// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/jazzdb/pkg/types"
)

// SourceNames lists the sources BuildSources accepts, in default
// priority order.
var SourceNames = []string{"wikipedia", "jazzstandards"}

// BuildSources instantiates the sources named in cfg.Sources, keeping
// their order. The order matters: earlier sources win field conflicts.
func BuildSources(client *http.Client, cfg types.CollectConfig) ([]Source, error) {
	var sources []Source
	for _, name := range cfg.Sources {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "wikipedia":
			sources = append(sources, NewWikipediaSource(client, cfg))
		case "jazzstandards":
			sources = append(sources, NewJazzRefSource(client, cfg))
		default:
			return nil, fmt.Errorf("unknown source %q: valid sources are %s",
				name, strings.Join(SourceNames, ", "))
		}
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources enabled")
	}
	return sources, nil
}
