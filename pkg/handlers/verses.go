package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/gitaworld/gita-content-api/pkg/db"
	"github.com/gitaworld/gita-content-api/pkg/db/queries"
	"github.com/gitaworld/gita-content-api/pkg/gita"
	"github.com/gitaworld/gita-content-api/pkg/middleware"
	"github.com/gitaworld/gita-content-api/pkg/utils"
)

// VerseRequest is the validated mutation payload for verses. Status and
// visibility are independent axes; both accept any of their enum values in
// any order, there is no transition sequencing. When either is omitted an
// update keeps the stored value; new verses start as pending/draft.
type VerseRequest struct {
	ChapterID          string   `json:"chapter_id" binding:"required,uuid"`
	LanguageID         string   `json:"language_id" binding:"required,uuid"`
	VerseNumber        int      `json:"verse_number" binding:"required,min=1"`
	Title              string   `json:"title"`
	SanskritText       string   `json:"sanskrit_text"`
	Transliteration    string   `json:"transliteration"`
	EnglishTranslation string   `json:"english_translation"`
	Commentary         string   `json:"commentary"`
	Description        string   `json:"description"`
	YoutubeURL         string   `json:"youtube_url" binding:"omitempty,url"`
	VideoFilePath      string   `json:"video_file_path"`
	Keywords           []string `json:"keywords"`
	Status             string   `json:"status" binding:"omitempty,oneof=pending uploaded processing published"`
	Visibility         string   `json:"visibility" binding:"omitempty,oneof=draft hidden published"`
	IsDailyVerse       bool     `json:"is_daily_verse"`
	WhatsappShareText  string   `json:"whatsapp_share_text"`
}

func (r *VerseRequest) apply(v *db.Verse) {
	v.ChapterID = uuid.MustParse(r.ChapterID)
	v.LanguageID = uuid.MustParse(r.LanguageID)
	v.VerseNumber = r.VerseNumber
	v.Title = nullStr(r.Title)
	v.SanskritText = nullStr(r.SanskritText)
	v.Transliteration = nullStr(r.Transliteration)
	v.EnglishTranslation = nullStr(r.EnglishTranslation)
	v.Commentary = nullStr(r.Commentary)
	v.Description = nullStr(r.Description)
	v.YoutubeURL = nullStr(r.YoutubeURL)
	v.VideoFilePath = nullStr(r.VideoFilePath)
	v.Keywords = pq.StringArray(r.Keywords)
	if v.Keywords == nil {
		v.Keywords = pq.StringArray{}
	}
	if r.Status != "" {
		v.Status = r.Status
	} else if v.Status == "" {
		v.Status = string(gita.StatusPending)
	}
	if r.Visibility != "" {
		v.Visibility = r.Visibility
	} else if v.Visibility == "" {
		v.Visibility = string(gita.VisibilityDraft)
	}
	v.IsDailyVerse = r.IsDailyVerse
	v.WhatsappShareText = nullStr(r.WhatsappShareText)
}

type verseResponse struct {
	PublicVerse
	ChapterID         string `json:"chapter_id"`
	LanguageID        string `json:"language_id"`
	ChapterNumber     int    `json:"chapter_number"`
	ChapterTitle      string `json:"chapter_title"`
	Status            string `json:"status"`
	Visibility        string `json:"visibility"`
	VideoFilePath     string `json:"video_file_path,omitempty"`
	WhatsappShareText string `json:"whatsapp_share_text,omitempty"`
}

func adminVerseFromRow(v db.VerseWithRefs) verseResponse {
	return verseResponse{
		PublicVerse:       publicVerseFromRow(v),
		ChapterID:         v.ChapterID.String(),
		LanguageID:        v.LanguageID.String(),
		ChapterNumber:     v.ChapterNumber,
		ChapterTitle:      v.ChapterTitle,
		Status:            v.Status,
		Visibility:        v.Visibility,
		VideoFilePath:     strOrEmpty(v.VideoFilePath),
		WhatsappShareText: strOrEmpty(v.WhatsappShareText),
	}
}

// ListVerses returns verses for the management view, with optional
// ?chapter=<id>, ?language=<id> and ?search= filters.
func (h *Handlers) ListVerses(c *gin.Context) {
	filter := queries.VerseFilter{Search: c.Query("search")}
	if s := c.Query("chapter"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			utils.ResponseWithError(c, http.StatusBadRequest, "Invalid chapter filter", nil)
			return
		}
		filter.ChapterID = id
	}
	if s := c.Query("language"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			utils.ResponseWithError(c, http.StatusBadRequest, "Invalid language filter", nil)
			return
		}
		filter.LanguageID = id
	}

	verses, err := queries.ListVerses(filter)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load verses", nil)
		return
	}

	out := make([]verseResponse, 0, len(verses))
	for _, v := range verses {
		out = append(out, adminVerseFromRow(v))
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Verses loaded", gin.H{"verses": out})
}

func (h *Handlers) CreateVerse(c *gin.Context) {
	var req VerseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	verse := &db.Verse{}
	req.apply(verse)
	if claims, ok := middleware.GetUserClaimsFromContext(c); ok {
		verse.CreatedBy = uuid.NullUUID{UUID: claims.UserID, Valid: true}
	}

	created, err := queries.CreateVerse(verse)
	if err != nil {
		respondWriteError(c, err, "Failed to create verse")
		return
	}

	stored, err := queries.FindVerseByID(created.ID)
	if err != nil || stored == nil {
		utils.ResponseWithSuccess(c, http.StatusCreated, "Verse created successfully", gin.H{"id": created.ID})
		return
	}
	utils.ResponseWithSuccess(c, http.StatusCreated, "Verse created successfully", adminVerseFromRow(*stored))
}

func (h *Handlers) UpdateVerse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid verse ID", nil)
		return
	}

	var req VerseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	existing, err := queries.FindVerseByID(id)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load verse", nil)
		return
	}
	if existing == nil {
		utils.ResponseWithError(c, http.StatusNotFound, "Verse not found", nil)
		return
	}

	verse := existing.Verse
	req.apply(&verse)
	if err := queries.UpdateVerse(&verse); err != nil {
		respondWriteError(c, err, "Failed to update verse")
		return
	}

	stored, err := queries.FindVerseByID(id)
	if err != nil || stored == nil {
		utils.ResponseWithSuccess(c, http.StatusOK, "Verse updated successfully", gin.H{"id": id})
		return
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Verse updated successfully", adminVerseFromRow(*stored))
}

// ToggleVerseVisibility flips a verse between published and hidden; draft is
// rejected the same way it is for chapters.
func (h *Handlers) ToggleVerseVisibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid verse ID", nil)
		return
	}

	verse, err := queries.FindVerseByID(id)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load verse", nil)
		return
	}
	if verse == nil {
		utils.ResponseWithError(c, http.StatusNotFound, "Verse not found", nil)
		return
	}

	next, err := gita.ToggleVisibility(gita.Visibility(verse.Visibility))
	if err != nil {
		utils.ResponseWithError(c, http.StatusConflict, err.Error(), nil)
		return
	}

	if err := queries.SetVerseVisibility(id, next); err != nil {
		respondWriteError(c, err, "Failed to update visibility")
		return
	}

	log.Infof("Verse %s visibility toggled to %s.", id.String(), next)
	utils.ResponseWithSuccess(c, http.StatusOK, "Verse "+string(next), gin.H{"visibility": next})
}

func (h *Handlers) DeleteVerse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid verse ID", nil)
		return
	}

	if err := queries.DeleteVerse(id); err != nil {
		respondWriteError(c, err, "Failed to delete verse")
		return
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Verse deleted successfully", nil)
}
