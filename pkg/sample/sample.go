package sample

import (
	"encoding/json"
	"fmt"
	"os"
)

// Chapter is one entry of the bundled fallback dataset served on public
// pages when the database is unreachable or still empty. A reader never sees
// a raw error for these routes; they see this content instead.
type Chapter struct {
	ChapterNumber int     `json:"chapter_number"`
	Title         string  `json:"title"`
	EnglishTitle  string  `json:"english_title"`
	TotalVerses   int     `json:"total_verses"`
	Description   string  `json:"description"`
	Theme         string  `json:"theme"`
	Verses        []Verse `json:"verses,omitempty"`
}

type Verse struct {
	VerseNumber        int    `json:"verse_number"`
	SanskritText       string `json:"sanskrit_text"`
	Transliteration    string `json:"transliteration"`
	EnglishTranslation string `json:"english_translation"`
}

// Dataset holds the loaded fallback chapters keyed by chapter number.
type Dataset struct {
	chapters []Chapter
	byNumber map[int]*Chapter
}

// Load reads the fallback dataset from a JSON file.
func Load(path string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sample data: %w", err)
	}

	var chapters []Chapter
	if err := json.Unmarshal(b, &chapters); err != nil {
		return nil, fmt.Errorf("unmarshal sample data: %w", err)
	}

	ds := &Dataset{
		chapters: chapters,
		byNumber: make(map[int]*Chapter, len(chapters)),
	}
	for i := range chapters {
		ds.byNumber[chapters[i].ChapterNumber] = &chapters[i]
	}
	return ds, nil
}

// Chapters returns all fallback chapters in order.
func (d *Dataset) Chapters() []Chapter {
	return d.chapters
}

// Chapter returns the fallback chapter with the given number, or nil.
func (d *Dataset) Chapter(number int) *Chapter {
	return d.byNumber[number]
}
