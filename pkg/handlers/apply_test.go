package handlers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gitaworld/gita-content-api/pkg/db"
)

// An edit that doesn't mention visibility must not unpublish the row.
func TestChapterApplyKeepsVisibilityWhenOmitted(t *testing.T) {
	chapter := &db.Chapter{
		ChapterNumber: 2,
		Title:         "Sankhya Yoga",
		Visibility:    "published",
	}

	req := ChapterRequest{ChapterNumber: 2, Title: "Sankhya Yoga (revised)"}
	req.apply(chapter)

	assert.Equal(t, "published", chapter.Visibility)
	assert.Equal(t, "Sankhya Yoga (revised)", chapter.Title)
}

func TestChapterApplyDefaultsNewRowsToDraft(t *testing.T) {
	chapter := &db.Chapter{}
	req := ChapterRequest{ChapterNumber: 3, Title: "Karma Yoga"}
	req.apply(chapter)

	assert.Equal(t, "draft", chapter.Visibility)
}

func TestChapterApplySetsExplicitVisibility(t *testing.T) {
	chapter := &db.Chapter{Visibility: "published"}
	req := ChapterRequest{ChapterNumber: 4, Title: "Jnana Yoga", Visibility: "hidden"}
	req.apply(chapter)

	assert.Equal(t, "hidden", chapter.Visibility)
}

func TestVerseApplyKeepsStatusAndVisibilityWhenOmitted(t *testing.T) {
	verse := &db.Verse{
		VerseNumber: 47,
		Status:      "published",
		Visibility:  "published",
	}

	req := VerseRequest{
		ChapterID:          uuid.NewString(),
		LanguageID:         uuid.NewString(),
		VerseNumber:        47,
		EnglishTranslation: "You have a right to perform your duty alone.",
	}
	req.apply(verse)

	assert.Equal(t, "published", verse.Status)
	assert.Equal(t, "published", verse.Visibility)
}

func TestVerseApplyDefaultsNewRowsToPendingDraft(t *testing.T) {
	verse := &db.Verse{}
	req := VerseRequest{
		ChapterID:   uuid.NewString(),
		LanguageID:  uuid.NewString(),
		VerseNumber: 1,
	}
	req.apply(verse)

	assert.Equal(t, "pending", verse.Status)
	assert.Equal(t, "draft", verse.Visibility)
}
