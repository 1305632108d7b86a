package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gitaworld/gita-content-api/pkg/db"
	"github.com/gitaworld/gita-content-api/pkg/db/queries"
	"github.com/gitaworld/gita-content-api/pkg/gita"
	"github.com/gitaworld/gita-content-api/pkg/utils"
)

// LanguageRequest is the validated mutation payload for languages. The
// manual counters are editorial overrides; saving a non-zero value makes it
// authoritative over the derived verse count until the next save.
type LanguageRequest struct {
	Code               string `json:"code" binding:"required,min=2,max=5"`
	Name               string `json:"name" binding:"required,max=100"`
	NativeName         string `json:"native_name"`
	IsActive           *bool  `json:"is_active"`
	ManualVerseCount   int    `json:"manual_verse_count" binding:"omitempty,min=0,max=700"`
	ManualChapterCount int    `json:"manual_chapter_count" binding:"omitempty,min=0,max=18"`
}

func (r *LanguageRequest) apply(l *db.Language) {
	l.Code = r.Code
	l.Name = r.Name
	l.NativeName = nullStr(r.NativeName)
	if r.IsActive != nil {
		l.IsActive = *r.IsActive
	} else {
		l.IsActive = true
	}
	l.ManualVerseCount = r.ManualVerseCount
	l.ManualChapterCount = r.ManualChapterCount
}

type languageResponse struct {
	ID                 string        `json:"id"`
	Code               string        `json:"code"`
	Name               string        `json:"name"`
	NativeName         string        `json:"native_name,omitempty"`
	IsActive           bool          `json:"is_active"`
	ManualVerseCount   int           `json:"manual_verse_count"`
	ManualChapterCount int           `json:"manual_chapter_count"`
	DerivedVerseCount  int           `json:"derived_verse_count"`
	Progress           gita.Progress `json:"progress"`
}

func adminLanguageFromRow(l queries.LanguageWithCounts) languageResponse {
	return languageResponse{
		ID:                 l.ID.String(),
		Code:               l.Code,
		Name:               l.Name,
		NativeName:         strOrEmpty(l.NativeName),
		IsActive:           l.IsActive,
		ManualVerseCount:   l.ManualVerseCount,
		ManualChapterCount: l.ManualChapterCount,
		DerivedVerseCount:  l.DerivedVerseCount,
		Progress: gita.LanguageProgress(
			l.ManualVerseCount, l.DerivedVerseCount,
			l.ManualChapterCount, l.DerivedChapterCount,
		),
	}
}

// ListLanguages returns all languages, inactive included, with both manual
// and derived counts so the management view can show the drift.
func (h *Handlers) ListLanguages(c *gin.Context) {
	languages, err := queries.ListLanguages(false)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load languages", nil)
		return
	}

	out := make([]languageResponse, 0, len(languages))
	for _, l := range languages {
		out = append(out, adminLanguageFromRow(l))
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Languages loaded", gin.H{"languages": out})
}

func (h *Handlers) CreateLanguage(c *gin.Context) {
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	language := &db.Language{}
	req.apply(language)

	created, err := queries.CreateLanguage(language)
	if err != nil {
		respondWriteError(c, err, "Failed to create language")
		return
	}

	utils.ResponseWithSuccess(c, http.StatusCreated, "Language created successfully", gin.H{
		"id":   created.ID,
		"code": created.Code,
		"name": created.Name,
	})
}

func (h *Handlers) UpdateLanguage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid language ID", nil)
		return
	}

	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	language, err := queries.FindLanguageByID(id)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load language", nil)
		return
	}
	if language == nil {
		utils.ResponseWithError(c, http.StatusNotFound, "Language not found", nil)
		return
	}

	req.apply(language)
	if err := queries.UpdateLanguage(language); err != nil {
		respondWriteError(c, err, "Failed to update language")
		return
	}

	utils.ResponseWithSuccess(c, http.StatusOK, "Language updated successfully", gin.H{
		"id":                   language.ID,
		"code":                 language.Code,
		"name":                 language.Name,
		"manual_verse_count":   language.ManualVerseCount,
		"manual_chapter_count": language.ManualChapterCount,
	})
}

// ToggleLanguageActive flips a language's active flag.
func (h *Handlers) ToggleLanguageActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid language ID", nil)
		return
	}

	language, err := queries.FindLanguageByID(id)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load language", nil)
		return
	}
	if language == nil {
		utils.ResponseWithError(c, http.StatusNotFound, "Language not found", nil)
		return
	}

	next := !language.IsActive
	if err := queries.SetLanguageActive(id, next); err != nil {
		respondWriteError(c, err, "Failed to update language status")
		return
	}

	message := "Language deactivated"
	if next {
		message = "Language activated"
	}
	utils.ResponseWithSuccess(c, http.StatusOK, message, gin.H{"is_active": next})
}

// DeleteLanguage removes a language and, through the cascade, every verse
// translated into it. The irreversible part has to be acknowledged with
// ?confirm=true; without it nothing is touched.
func (h *Handlers) DeleteLanguage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid language ID", nil)
		return
	}

	// The guard runs before any query so an unconfirmed request leaves the
	// database alone entirely.
	if c.Query("confirm") != "true" {
		utils.ResponseWithError(c, http.StatusBadRequest,
			"Deleting this language will also delete all associated verses. Repeat the request with confirm=true.", nil)
		return
	}

	verseCount, err := queries.CountVersesByLanguage(id)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to delete language", nil)
		return
	}

	if err := queries.DeleteLanguage(id); err != nil {
		respondWriteError(c, err, "Failed to delete language")
		return
	}

	log.Infof("Language %s deleted along with %d verses.", id.String(), verseCount)
	utils.ResponseWithSuccess(c, http.StatusOK, "Language deleted successfully", gin.H{"deleted_verses": verseCount})
}
