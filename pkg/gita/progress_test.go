package gita

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCount(t *testing.T) {
	// Unset manual counter falls back to the derived row count.
	assert.Equal(t, 42, ResolveCount(0, 42))
	// A saved manual value is authoritative, even when it diverges.
	assert.Equal(t, 150, ResolveCount(150, 42))
	assert.Equal(t, 150, ResolveCount(150, 0))
	assert.Equal(t, 0, ResolveCount(0, 0))
}

func TestLanguageProgressHindi(t *testing.T) {
	// Hindi with manual counters 150 verses / 10 chapters.
	p := LanguageProgress(150, 3, 10, 1)
	assert.Equal(t, 150, p.VerseCount)
	assert.Equal(t, 10, p.ChapterCount)
	assert.Equal(t, 21, p.VersePercent)
	assert.Equal(t, 56, p.ChapterPercent)
}

func TestLanguageProgressDerivedFallback(t *testing.T) {
	p := LanguageProgress(0, 700, 0, 18)
	assert.Equal(t, 700, p.VerseCount)
	assert.Equal(t, 18, p.ChapterCount)
	assert.Equal(t, 100, p.VersePercent)
	assert.Equal(t, 100, p.ChapterPercent)
}

func TestLanguageProgressClamp(t *testing.T) {
	// A manual counter above the maximum must not overflow the bar.
	p := LanguageProgress(900, 0, 25, 0)
	assert.Equal(t, 100, p.VersePercent)
	assert.Equal(t, 100, p.ChapterPercent)
}

func TestLanguageProgressEmpty(t *testing.T) {
	p := LanguageProgress(0, 0, 0, 0)
	assert.Equal(t, 0, p.VersePercent)
	assert.Equal(t, 0, p.ChapterPercent)
}
