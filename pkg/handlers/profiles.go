package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gitaworld/gita-content-api/pkg/db/queries"
	"github.com/gitaworld/gita-content-api/pkg/gita"
	"github.com/gitaworld/gita-content-api/pkg/middleware"
	"github.com/gitaworld/gita-content-api/pkg/utils"
)

// ListProfiles returns every user profile for the admin user-management
// view, newest registrations first.
func (h *Handlers) ListProfiles(c *gin.Context) {
	profiles, err := queries.ListProfiles()
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load user profiles", nil)
		return
	}

	type profileResponse struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FullName  string `json:"full_name"`
		Role      string `json:"role"`
		CreatedAt string `json:"created_at"`
	}

	out := make([]profileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, profileResponse{
			ID:        p.ID.String(),
			Email:     p.Email,
			FullName:  p.FullName,
			Role:      p.Role,
			CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	utils.ResponseWithSuccess(c, http.StatusOK, "Profiles loaded", gin.H{"profiles": out})
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin editor viewer"`
}

// UpdateProfileRole changes a user's role. Admin-only; the change applies on
// the target user's next request because role gates read the profile row.
func (h *Handlers) UpdateProfileRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid profile ID", nil)
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	role, err := gita.ParseRole(req.Role)
	if err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	// An admin demoting themselves would lock them out of this very screen.
	if claims, ok := middleware.GetUserClaimsFromContext(c); ok {
		if claims.UserID == id && role != gita.RoleAdmin {
			utils.ResponseWithError(c, http.StatusConflict, "You cannot remove your own admin role", nil)
			return
		}
	}

	if err := queries.UpdateProfileRole(id, string(role)); err != nil {
		respondWriteError(c, err, "Failed to update user role")
		return
	}

	log.Infof("Profile %s role set to %s.", id.String(), role)
	utils.ResponseWithSuccess(c, http.StatusOK, "User role updated to "+string(role), gin.H{"role": role})
}
