// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/jazzdb/pkg/types"
)

func TestBuildSources_KeepsOrder(t *testing.T) {
	cfg := types.CollectConfig{Sources: []string{"jazzstandards", "wikipedia"}}

	sources, err := BuildSources(http.DefaultClient, cfg)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "jazzstandards", sources[0].Name())
	assert.Equal(t, "wikipedia", sources[1].Name())
}

func TestBuildSources_FoldsCase(t *testing.T) {
	cfg := types.CollectConfig{Sources: []string{" Wikipedia "}}

	sources, err := BuildSources(http.DefaultClient, cfg)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "wikipedia", sources[0].Name())
}

func TestBuildSources_UnknownName(t *testing.T) {
	cfg := types.CollectConfig{Sources: []string{"musescore"}}

	_, err := BuildSources(http.DefaultClient, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "musescore")
	assert.Contains(t, err.Error(), "wikipedia, jazzstandards")
}

func TestBuildSources_NoneEnabled(t *testing.T) {
	_, err := BuildSources(http.DefaultClient, types.CollectConfig{})
	assert.Error(t, err)
}
