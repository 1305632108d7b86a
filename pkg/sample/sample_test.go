package sample

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundledDataset(t *testing.T) {
	ds, err := Load("../../data/sample_chapters.json")
	require.NoError(t, err)

	chapters := ds.Chapters()
	require.Len(t, chapters, 18)

	first := ds.Chapter(1)
	require.NotNil(t, first)
	assert.Equal(t, "Arjuna Vishada Yoga", first.Title)
	assert.Equal(t, 47, first.TotalVerses)
	assert.NotEmpty(t, first.Verses)

	last := ds.Chapter(18)
	require.NotNil(t, last)
	assert.Equal(t, 78, last.TotalVerses)

	assert.Nil(t, ds.Chapter(19))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
