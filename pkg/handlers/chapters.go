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

// ChapterRequest is the validated mutation payload for chapters. The 1..18
// range is enforced here, before any SQL runs. An omitted visibility keeps
// the stored value on update; new chapters start as draft.
type ChapterRequest struct {
	ChapterNumber int    `json:"chapter_number" binding:"required,min=1,max=18"`
	Title         string `json:"title" binding:"required,max=255"`
	SanskritTitle string `json:"sanskrit_title"`
	EnglishTitle  string `json:"english_title"`
	TotalVerses   int    `json:"total_verses" binding:"omitempty,min=0"`
	Summary       string `json:"summary"`
	Description   string `json:"description"`
	Visibility    string `json:"visibility" binding:"omitempty,oneof=draft hidden published"`
	SortOrder     int    `json:"sort_order"`
}

func (r *ChapterRequest) apply(ch *db.Chapter) {
	ch.ChapterNumber = r.ChapterNumber
	ch.Title = r.Title
	ch.SanskritTitle = nullStr(r.SanskritTitle)
	ch.EnglishTitle = nullStr(r.EnglishTitle)
	ch.TotalVerses = nullInt32(r.TotalVerses)
	ch.Summary = nullStr(r.Summary)
	ch.Description = nullStr(r.Description)
	if r.Visibility != "" {
		ch.Visibility = r.Visibility
	} else if ch.Visibility == "" {
		ch.Visibility = string(gita.VisibilityDraft)
	}
	ch.SortOrder = r.SortOrder
}

type chapterResponse struct {
	PublicChapter
	Visibility string `json:"visibility"`
	SortOrder  int    `json:"sort_order"`
}

func adminChapterFromRow(ch db.Chapter) chapterResponse {
	return chapterResponse{
		PublicChapter: publicChapterFromRow(ch),
		Visibility:    ch.Visibility,
		SortOrder:     ch.SortOrder,
	}
}

// ListChapters returns every chapter, drafts and hidden included, for the
// management view.
func (h *Handlers) ListChapters(c *gin.Context) {
	chapters, err := queries.ListChapters()
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load chapters", nil)
		return
	}

	out := make([]chapterResponse, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, adminChapterFromRow(ch))
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Chapters loaded", gin.H{"chapters": out})
}

func (h *Handlers) CreateChapter(c *gin.Context) {
	var req ChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	chapter := &db.Chapter{}
	req.apply(chapter)

	created, err := queries.CreateChapter(chapter)
	if err != nil {
		respondWriteError(c, err, "Failed to create chapter")
		return
	}

	// Re-read so the response reflects the stored row, not the request echo.
	stored, err := queries.FindChapterByID(created.ID)
	if err != nil || stored == nil {
		utils.ResponseWithSuccess(c, http.StatusCreated, "Chapter created successfully", adminChapterFromRow(*created))
		return
	}
	utils.ResponseWithSuccess(c, http.StatusCreated, "Chapter created successfully", adminChapterFromRow(*stored))
}

func (h *Handlers) UpdateChapter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid chapter ID", nil)
		return
	}

	var req ChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	chapter, err := queries.FindChapterByID(id)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load chapter", nil)
		return
	}
	if chapter == nil {
		utils.ResponseWithError(c, http.StatusNotFound, "Chapter not found", nil)
		return
	}

	req.apply(chapter)
	if err := queries.UpdateChapter(chapter); err != nil {
		respondWriteError(c, err, "Failed to update chapter")
		return
	}

	stored, err := queries.FindChapterByID(id)
	if err != nil || stored == nil {
		utils.ResponseWithSuccess(c, http.StatusOK, "Chapter updated successfully", adminChapterFromRow(*chapter))
		return
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Chapter updated successfully", adminChapterFromRow(*stored))
}

// ToggleChapterVisibility flips a chapter between published and hidden. A
// draft chapter cannot be toggled; it has to be published through an edit.
func (h *Handlers) ToggleChapterVisibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid chapter ID", nil)
		return
	}

	chapter, err := queries.FindChapterByID(id)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load chapter", nil)
		return
	}
	if chapter == nil {
		utils.ResponseWithError(c, http.StatusNotFound, "Chapter not found", nil)
		return
	}

	next, err := gita.ToggleVisibility(gita.Visibility(chapter.Visibility))
	if err != nil {
		utils.ResponseWithError(c, http.StatusConflict, err.Error(), nil)
		return
	}

	if err := queries.SetChapterVisibility(id, next); err != nil {
		respondWriteError(c, err, "Failed to update visibility")
		return
	}

	log.Infof("Chapter %d visibility toggled to %s.", chapter.ChapterNumber, next)
	utils.ResponseWithSuccess(c, http.StatusOK, "Chapter "+string(next), gin.H{"visibility": next})
}

func (h *Handlers) DeleteChapter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid chapter ID", nil)
		return
	}

	if err := queries.DeleteChapter(id); err != nil {
		respondWriteError(c, err, "Failed to delete chapter")
		return
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Chapter deleted successfully", nil)
}
