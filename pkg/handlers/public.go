package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gitaworld/gita-content-api/pkg/db"
	"github.com/gitaworld/gita-content-api/pkg/db/queries"
	"github.com/gitaworld/gita-content-api/pkg/gita"
	"github.com/gitaworld/gita-content-api/pkg/utils"
)

// PublicChapter is the chapter shape served to readers.
type PublicChapter struct {
	ID            string `json:"id,omitempty"`
	ChapterNumber int    `json:"chapter_number"`
	Title         string `json:"title"`
	SanskritTitle string `json:"sanskrit_title,omitempty"`
	EnglishTitle  string `json:"english_title,omitempty"`
	TotalVerses   int    `json:"total_verses,omitempty"`
	Summary       string `json:"summary,omitempty"`
	Description   string `json:"description,omitempty"`
	Theme         string `json:"theme,omitempty"`
}

// PublicVerse is the verse shape served to readers.
type PublicVerse struct {
	ID                 string   `json:"id,omitempty"`
	VerseNumber        int      `json:"verse_number"`
	Title              string   `json:"title,omitempty"`
	SanskritText       string   `json:"sanskrit_text,omitempty"`
	Transliteration    string   `json:"transliteration,omitempty"`
	EnglishTranslation string   `json:"english_translation,omitempty"`
	Commentary         string   `json:"commentary,omitempty"`
	YoutubeURL         string   `json:"youtube_url,omitempty"`
	Keywords           []string `json:"keywords,omitempty"`
	Language           string   `json:"language,omitempty"`
	LanguageNative     string   `json:"language_native,omitempty"`
	IsDailyVerse       bool     `json:"is_daily_verse,omitempty"`
}

func publicChapterFromRow(ch db.Chapter) PublicChapter {
	return PublicChapter{
		ID:            ch.ID.String(),
		ChapterNumber: ch.ChapterNumber,
		Title:         ch.Title,
		SanskritTitle: strOrEmpty(ch.SanskritTitle),
		EnglishTitle:  strOrEmpty(ch.EnglishTitle),
		TotalVerses:   int(ch.TotalVerses.Int32),
		Summary:       strOrEmpty(ch.Summary),
		Description:   strOrEmpty(ch.Description),
	}
}

func publicVerseFromRow(v db.VerseWithRefs) PublicVerse {
	return PublicVerse{
		ID:                 v.ID.String(),
		VerseNumber:        v.VerseNumber,
		Title:              strOrEmpty(v.Title),
		SanskritText:       strOrEmpty(v.SanskritText),
		Transliteration:    strOrEmpty(v.Transliteration),
		EnglishTranslation: strOrEmpty(v.EnglishTranslation),
		Commentary:         strOrEmpty(v.Commentary),
		YoutubeURL:         strOrEmpty(v.YoutubeURL),
		Keywords:           v.Keywords,
		Language:           v.LanguageName,
		LanguageNative:     strOrEmpty(v.LanguageNativeName),
		IsDailyVerse:       v.IsDailyVerse,
	}
}

// ListPublicChapters serves the published chapter list. A failed or empty
// read falls back to the bundled sample dataset so the public page always
// has something to render.
func (h *Handlers) ListPublicChapters(c *gin.Context) {
	chapters, err := queries.ListPublishedChapters()
	if err != nil || len(chapters) == 0 {
		if err != nil {
			log.Warnf("Falling back to sample chapters: %v", err)
		}
		utils.ResponseWithSuccess(c, http.StatusOK, "Chapters loaded", gin.H{
			"source":   "sample",
			"chapters": h.sampleChapterList(),
		})
		return
	}

	out := make([]PublicChapter, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, publicChapterFromRow(ch))
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Chapters loaded", gin.H{
		"source":   "database",
		"chapters": out,
	})
}

// GetPublicChapter serves one published chapter with its published verses,
// optionally filtered to one language via ?language=code.
func (h *Handlers) GetPublicChapter(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("chapterNumber"))
	if err != nil || number < 1 || number > gita.TotalChapters {
		utils.ResponseWithError(c, http.StatusBadRequest, "Chapter number must be between 1 and 18", nil)
		return
	}

	chapter, err := queries.FindPublishedChapterByNumber(number)
	if err != nil || chapter == nil {
		if err != nil {
			log.Warnf("Falling back to sample chapter %d: %v", number, err)
		}
		h.respondSampleChapter(c, number)
		return
	}

	languageID := uuid.Nil
	if code := c.Query("language"); code != "" {
		language, err := queries.FindLanguageByCode(code)
		if err == nil && language != nil {
			languageID = language.ID
		}
	}

	verses, err := queries.ListPublishedVerses(chapter.ID, languageID)
	if err != nil {
		log.Warnf("Verse read failed for chapter %d, serving chapter without verses: %v", number, err)
		verses = nil
	}

	out := make([]PublicVerse, 0, len(verses))
	for _, v := range verses {
		out = append(out, publicVerseFromRow(v))
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Chapter loaded", gin.H{
		"source":  "database",
		"chapter": publicChapterFromRow(*chapter),
		"verses":  out,
	})
}

// ListPublicLanguages serves active languages with resolved progress. The
// manual counters beat the derived aggregates when set.
func (h *Handlers) ListPublicLanguages(c *gin.Context) {
	languages, err := queries.ListLanguages(true)
	if err != nil {
		log.Warnf("Language read failed, serving empty list: %v", err)
		utils.ResponseWithSuccess(c, http.StatusOK, "Languages loaded", gin.H{"languages": []any{}})
		return
	}

	type publicLanguage struct {
		ID         string        `json:"id"`
		Code       string        `json:"code"`
		Name       string        `json:"name"`
		NativeName string        `json:"native_name,omitempty"`
		Progress   gita.Progress `json:"progress"`
	}

	out := make([]publicLanguage, 0, len(languages))
	for _, l := range languages {
		out = append(out, publicLanguage{
			ID:         l.ID.String(),
			Code:       l.Code,
			Name:       l.Name,
			NativeName: strOrEmpty(l.NativeName),
			Progress: gita.LanguageProgress(
				l.ManualVerseCount, l.DerivedVerseCount,
				l.ManualChapterCount, l.DerivedChapterCount,
			),
		})
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Languages loaded", gin.H{"languages": out})
}

// GetDailyVerse serves the currently flagged daily verse.
func (h *Handlers) GetDailyVerse(c *gin.Context) {
	verse, err := queries.FindDailyVerse()
	if err != nil {
		utils.ResponseWithSuccess(c, http.StatusOK, "No daily verse available", gin.H{"verse": nil})
		return
	}
	if verse == nil {
		utils.ResponseWithSuccess(c, http.StatusOK, "No daily verse available", gin.H{"verse": nil})
		return
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Daily verse loaded", gin.H{
		"chapter_number": verse.ChapterNumber,
		"chapter_title":  verse.ChapterTitle,
		"verse":          publicVerseFromRow(*verse),
	})
}

// ShareVerse serves the share payload for one verse: share text, canonical
// URL, and the WhatsApp deep link used when no native share sheet exists.
func (h *Handlers) ShareVerse(c *gin.Context) {
	chapterNumber, err := strconv.Atoi(c.Param("chapterNumber"))
	if err != nil || chapterNumber < 1 || chapterNumber > gita.TotalChapters {
		utils.ResponseWithError(c, http.StatusBadRequest, "Chapter number must be between 1 and 18", nil)
		return
	}
	verseNumber, err := strconv.Atoi(c.Param("verseNumber"))
	if err != nil || verseNumber < 1 {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid verse number", nil)
		return
	}

	// The editor-authored share copy wins when the verse exists; the link is
	// still valid for verses not yet in the database.
	customText := ""
	if verse, err := queries.FindPublishedVerse(chapterNumber, verseNumber); err == nil && verse != nil {
		customText = strOrEmpty(verse.WhatsappShareText)
	}

	links := gita.BuildShareLinks(h.Config.PublicBaseURL, chapterNumber, verseNumber, customText)
	utils.ResponseWithSuccess(c, http.StatusOK, "Share links built", links)
}

func (h *Handlers) sampleChapterList() []PublicChapter {
	if h.Sample == nil {
		return []PublicChapter{}
	}
	chapters := h.Sample.Chapters()
	out := make([]PublicChapter, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, PublicChapter{
			ChapterNumber: ch.ChapterNumber,
			Title:         ch.Title,
			EnglishTitle:  ch.EnglishTitle,
			TotalVerses:   ch.TotalVerses,
			Description:   ch.Description,
			Theme:         ch.Theme,
		})
	}
	return out
}

func (h *Handlers) respondSampleChapter(c *gin.Context, number int) {
	if h.Sample == nil {
		utils.ResponseWithError(c, http.StatusNotFound, "Chapter not found", nil)
		return
	}
	ch := h.Sample.Chapter(number)
	if ch == nil {
		utils.ResponseWithError(c, http.StatusNotFound, "Chapter not found", nil)
		return
	}

	verses := make([]PublicVerse, 0, len(ch.Verses))
	for _, v := range ch.Verses {
		verses = append(verses, PublicVerse{
			VerseNumber:        v.VerseNumber,
			SanskritText:       v.SanskritText,
			Transliteration:    v.Transliteration,
			EnglishTranslation: v.EnglishTranslation,
		})
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Chapter loaded", gin.H{
		"source": "sample",
		"chapter": PublicChapter{
			ChapterNumber: ch.ChapterNumber,
			Title:         ch.Title,
			EnglishTitle:  ch.EnglishTitle,
			TotalVerses:   ch.TotalVerses,
			Description:   ch.Description,
			Theme:         ch.Theme,
		},
		"verses": verses,
	})
}
