package gita

// The Gita has 18 chapters and 700 verses in total. Translation progress for
// a language is always reported against these maxima.
const (
	TotalChapters = 18
	TotalVerses   = 700
)

// ResolveCount implements the manual-override policy for progress counters:
// an editor-entered value beats the count derived from actual verse rows, and
// the derived value is only a default for languages nobody has curated yet.
// There is no reconciliation; a stale manual value stays until re-saved.
func ResolveCount(manual, derived int) int {
	if manual > 0 {
		return manual
	}
	return derived
}

// Progress is the resolved translation progress of one language.
type Progress struct {
	VerseCount     int `json:"verse_count"`
	ChapterCount   int `json:"chapter_count"`
	VersePercent   int `json:"verse_percent"`
	ChapterPercent int `json:"chapter_percent"`
}

func LanguageProgress(manualVerses, derivedVerses, manualChapters, derivedChapters int) Progress {
	verses := ResolveCount(manualVerses, derivedVerses)
	chapters := ResolveCount(manualChapters, derivedChapters)
	return Progress{
		VerseCount:     verses,
		ChapterCount:   chapters,
		VersePercent:   percent(verses, TotalVerses),
		ChapterPercent: percent(chapters, TotalChapters),
	}
}

// percent rounds to the nearest whole percent and clamps at 100 so a manual
// counter above the maximum never renders an overfull progress bar.
func percent(n, max int) int {
	if n <= 0 {
		return 0
	}
	p := (n*100 + max/2) / max
	if p > 100 {
		p = 100
	}
	return p
}
