package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gitaworld/gita-content-api/pkg/config"
)

// These tests cover the input layer: payloads that violate field constraints
// must be rejected before any database call is attempted. None of the
// handlers below reach the query layer.

func testHandlers() *Handlers {
	gin.SetMode(gin.TestMode)
	return NewHandlers(&config.Config{
		JwtSecret:     "test-secret",
		PublicBaseURL: "https://bhagavadgita.world",
	}, nil)
}

func postJSON(handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/x", handler)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateChapterRejectsOutOfRangeNumber(t *testing.T) {
	h := testHandlers()

	// Chapter 19 does not exist; the binding layer stops it.
	w := postJSON(h.CreateChapter, `{"chapter_number": 19, "title": "Chapter Nineteen"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(h.CreateChapter, `{"chapter_number": 0, "title": "Chapter Zero"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateChapterRequiresTitle(t *testing.T) {
	h := testHandlers()
	w := postJSON(h.CreateChapter, `{"chapter_number": 5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVerseRejectsBadReferences(t *testing.T) {
	h := testHandlers()

	w := postJSON(h.CreateVerse, `{"chapter_id": "not-a-uuid", "language_id": "also-not", "verse_number": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(h.CreateVerse, `{"verse_number": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVerseRejectsUnknownEnums(t *testing.T) {
	h := testHandlers()
	w := postJSON(h.CreateVerse,
		`{"chapter_id": "7f2f9f7e-59b2-4b2c-9a7e-1d9f0a2b3c4d", "language_id": "7f2f9f7e-59b2-4b2c-9a7e-1d9f0a2b3c4e", "verse_number": 1, "status": "rendering"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateLanguageRejectsLongCode(t *testing.T) {
	h := testHandlers()
	w := postJSON(h.CreateLanguage, `{"code": "sanskrit", "name": "Sanskrit"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateLanguageRejectsOverfullCounters(t *testing.T) {
	h := testHandlers()

	w := postJSON(h.CreateLanguage, `{"code": "hi", "name": "Hindi", "manual_verse_count": 701}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(h.CreateLanguage, `{"code": "hi", "name": "Hindi", "manual_chapter_count": 19}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShareVerseRejectsInvalidNumbers(t *testing.T) {
	h := testHandlers()
	r := gin.New()
	r.GET("/api/chapters/:chapterNumber/verses/:verseNumber/share", h.ShareVerse)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chapters/19/verses/1/share", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/chapters/2/verses/0/share", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteLanguageWithoutConfirm(t *testing.T) {
	h := testHandlers()
	r := gin.New()
	r.DELETE("/api/admin/languages/:id", h.DeleteLanguage)

	// No database pool is wired up here, so reaching the query layer would
	// panic: the unconfirmed request must be refused on the request alone.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete,
		"/api/admin/languages/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "confirm=true")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete,
		"/api/admin/languages/"+uuid.NewString()+"?confirm=false", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPublicChapterRejectsInvalidNumber(t *testing.T) {
	h := testHandlers()
	r := gin.New()
	r.GET("/api/chapters/:chapterNumber", h.GetPublicChapter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chapters/twenty", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
