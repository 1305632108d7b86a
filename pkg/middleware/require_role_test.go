package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitaworld/gita-content-api/pkg/db"
	"github.com/gitaworld/gita-content-api/pkg/gita"
	"github.com/gitaworld/gita-content-api/pkg/services"
)

// stubProfiles replaces the database-backed profile read for the duration of
// a test.
func stubProfiles(t *testing.T, roles map[uuid.UUID]string) {
	t.Helper()
	orig := findProfile
	findProfile = func(id uuid.UUID) (*db.Profile, error) {
		role, ok := roles[id]
		if !ok {
			return nil, nil
		}
		return &db.Profile{ID: id, FullName: "Test User", Role: role}, nil
	}
	t.Cleanup(func() { findProfile = orig })
}

// setupAdminRouter mirrors the server's admin grouping: content routes,
// deletes included, sit behind the editor gate; language removal sits behind
// the admin gate.
func setupAdminRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/api/admin")
	admin.Use(AuthMiddleware(secret))

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	editor := admin.Group("")
	editor.Use(RequireRole(gita.RoleEditor))
	editor.DELETE("/chapters/:id", ok)
	editor.DELETE("/verses/:id", ok)

	adminOnly := admin.Group("")
	adminOnly.Use(RequireRole(gita.RoleAdmin))
	adminOnly.DELETE("/languages/:id", ok)

	return r
}

func deleteAs(t *testing.T, r *gin.Engine, secret []byte, userID uuid.UUID, path string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := services.GenerateToken(secret, userID, "user@example.com", "viewer")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	return w
}

func TestEditorCanDeleteContent(t *testing.T) {
	secret := []byte("secret")
	editorID := uuid.New()
	stubProfiles(t, map[uuid.UUID]string{editorID: "editor"})
	r := setupAdminRouter(secret)

	w := deleteAs(t, r, secret, editorID, "/api/admin/chapters/"+uuid.NewString())
	assert.Equal(t, http.StatusOK, w.Code)

	w = deleteAs(t, r, secret, editorID, "/api/admin/verses/"+uuid.NewString())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEditorCannotDeleteLanguages(t *testing.T) {
	secret := []byte("secret")
	editorID := uuid.New()
	stubProfiles(t, map[uuid.UUID]string{editorID: "editor"})
	r := setupAdminRouter(secret)

	w := deleteAs(t, r, secret, editorID, "/api/admin/languages/"+uuid.NewString())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestViewerCannotDeleteContent(t *testing.T) {
	secret := []byte("secret")
	viewerID := uuid.New()
	stubProfiles(t, map[uuid.UUID]string{viewerID: "viewer"})
	r := setupAdminRouter(secret)

	w := deleteAs(t, r, secret, viewerID, "/api/admin/chapters/"+uuid.NewString())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminCanDeleteEverywhere(t *testing.T) {
	secret := []byte("secret")
	adminID := uuid.New()
	stubProfiles(t, map[uuid.UUID]string{adminID: "admin"})
	r := setupAdminRouter(secret)

	for _, path := range []string{
		"/api/admin/chapters/" + uuid.NewString(),
		"/api/admin/verses/" + uuid.NewString(),
		"/api/admin/languages/" + uuid.NewString(),
	} {
		w := deleteAs(t, r, secret, adminID, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestMissingProfileIsDenied(t *testing.T) {
	secret := []byte("secret")
	stubProfiles(t, map[uuid.UUID]string{})
	r := setupAdminRouter(secret)

	w := deleteAs(t, r, secret, uuid.New(), "/api/admin/chapters/"+uuid.NewString())
	assert.Equal(t, http.StatusForbidden, w.Code)
}
