// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	songs, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, songs)

	assert.Equal(t, 80, len(songs), "curated dataset size")

	for _, s := range songs {
		assert.NotEmpty(t, s.Title)
	}

	// File order is load order.
	assert.Equal(t, "A Night in Tunisia", songs[0].Title)
	assert.Equal(t, "Yesterdays", songs[len(songs)-1].Title)
}

func TestLoadIsDeterministic(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadKnownSong(t *testing.T) {
	songs, err := Load()
	require.NoError(t, err)

	var found bool
	for _, s := range songs {
		if s.Title != "All Blues" {
			continue
		}
		found = true
		require.NotNil(t, s.Composer)
		assert.Equal(t, "Miles Davis", *s.Composer)
		require.NotNil(t, s.Key)
		assert.Equal(t, "G", *s.Key)
		require.NotNil(t, s.TimeSignature)
		assert.Equal(t, "6/8", *s.TimeSignature)
	}
	assert.True(t, found, "All Blues should be in the dataset")
}

func TestDecodeOptionalFieldsStayAbsent(t *testing.T) {
	songs, err := Decode([]byte(`[{"Title": "Untitled Blues"}]`))
	require.NoError(t, err)
	require.Len(t, songs, 1)

	s := songs[0]
	assert.Nil(t, s.Composer)
	assert.Nil(t, s.Key)
	assert.Nil(t, s.Rhythm)
	assert.Nil(t, s.TimeSignature)
	assert.Nil(t, s.Sections)
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	songs, err := Decode([]byte(`[{"Title": "Misterioso", "Year": 1948}]`))
	require.NoError(t, err)
	require.Len(t, songs, 1)
	assert.Equal(t, "Misterioso", songs[0].Title)
}

func TestDecodeRejectsMissingTitle(t *testing.T) {
	_, err := Decode([]byte(`[{"Title": "Solar"}, {"Composer": "Miles Davis"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 1")
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"Title": "not an array"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

func TestDecodeSectionStructure(t *testing.T) {
	raw := `[
	  {
	    "Title": "Minor Blues",
	    "Sections": [
	      {
	        "Label": "A",
	        "Repeats": 2,
	        "MainSegment": {"Chords": "| C-7 | F-7 | C-7 | C-7 |"},
	        "Endings": [
	          {"Chords": "| G7 | C-7 |"},
	          {"Chords": "| C-7 | C-7 |"}
	        ]
	      },
	      {}
	    ]
	  }
	]`
	songs, err := Decode([]byte(raw))
	require.NoError(t, err)
	require.Len(t, songs, 1)
	require.Len(t, songs[0].Sections, 2)

	first := songs[0].Sections[0]
	require.NotNil(t, first.Label)
	assert.Equal(t, "A", *first.Label)
	require.NotNil(t, first.Repeats)
	assert.Equal(t, uint(2), *first.Repeats)
	require.NotNil(t, first.MainSegment)
	require.NotNil(t, first.MainSegment.Chords)
	assert.Contains(t, *first.MainSegment.Chords, "C-7")
	require.Len(t, first.Endings, 2)

	second := songs[0].Sections[1]
	assert.Nil(t, second.Label)
	assert.Nil(t, second.Repeats)
	assert.Nil(t, second.MainSegment)
	assert.Nil(t, second.Endings)
}
