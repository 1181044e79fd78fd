// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTitles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.txt")
	content := `# favorites first
All of Me

  Misty
Take Five
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	titles, err := ReadTitles(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"All of Me", "Misty", "Take Five"}, titles)
}

func TestReadTitles_MissingFile(t *testing.T) {
	_, err := ReadTitles(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestReadTitles_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	titles, err := ReadTitles(path)
	require.NoError(t, err)
	assert.Empty(t, titles)
}
