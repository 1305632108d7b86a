package gita

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleVisibility(t *testing.T) {
	next, err := ToggleVisibility(VisibilityPublished)
	require.NoError(t, err)
	assert.Equal(t, VisibilityHidden, next)

	next, err = ToggleVisibility(VisibilityHidden)
	require.NoError(t, err)
	assert.Equal(t, VisibilityPublished, next)
}

func TestToggleVisibilityDraft(t *testing.T) {
	// Draft is only reachable and leavable through an explicit edit.
	_, err := ToggleVisibility(VisibilityDraft)
	assert.Error(t, err)
}

func TestToggleVisibilityRoundTrip(t *testing.T) {
	start := VisibilityPublished
	once, err := ToggleVisibility(start)
	require.NoError(t, err)
	twice, err := ToggleVisibility(once)
	require.NoError(t, err)
	assert.Equal(t, start, twice)
}

func TestParseVisibility(t *testing.T) {
	for _, s := range []string{"draft", "hidden", "published"} {
		v, err := ParseVisibility(s)
		require.NoError(t, err)
		assert.True(t, v.Valid())
	}
	_, err := ParseVisibility("archived")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "uploaded", "processing", "published"} {
		st, err := ParseStatus(s)
		require.NoError(t, err)
		assert.True(t, st.Valid())
	}
	_, err := ParseStatus("rendering")
	assert.Error(t, err)
}
