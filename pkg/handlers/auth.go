package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/gitaworld/gita-content-api/pkg/db"
	"github.com/gitaworld/gita-content-api/pkg/db/queries"
	"github.com/gitaworld/gita-content-api/pkg/middleware"
	"github.com/gitaworld/gita-content-api/pkg/services"
	"github.com/gitaworld/gita-content-api/pkg/utils"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=100"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser creates a user account together with its viewer profile.
func (h *Handlers) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	req.Email = strings.ToLower(req.Email)

	existingUser, err := queries.FindUserByEmail(req.Email)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Registration failed", nil)
		return
	}
	if existingUser != nil {
		utils.ResponseWithError(c, http.StatusConflict, "User with this email already exists", nil)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("Error hashing password: %v", err)
		utils.ResponseWithError(c, http.StatusInternalServerError, "Registration failed", nil)
		return
	}

	user := &db.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hashedPassword),
	}
	createdUser, err := queries.CreateUser(user)
	if err != nil {
		respondWriteError(c, err, "Failed to create user")
		return
	}

	log.Infof("User with ID '%s' registered.", createdUser.ID.String())
	utils.ResponseWithSuccess(c, http.StatusCreated, "User created successfully", gin.H{
		"id":        createdUser.ID,
		"email":     createdUser.Email,
		"full_name": createdUser.FullName,
	})
}

// LoginUser verifies credentials and returns a session token.
func (h *Handlers) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	req.Email = strings.ToLower(req.Email)

	user, err := queries.FindUserByEmail(req.Email)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Login failed", nil)
		return
	}
	if user == nil {
		utils.ResponseWithError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.ResponseWithError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	// The role claim is a snapshot for client display; route guards always
	// re-read the profile row.
	role := "viewer"
	if profile, err := queries.FindProfileByID(user.ID); err == nil && profile != nil {
		role = profile.Role
	}

	token, err := services.GenerateToken(h.JwtSecret, user.ID, user.Email, role)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to generate authentication token", nil)
		return
	}

	log.Infof("User %s logged in successfully.", user.Email)
	utils.ResponseWithSuccess(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
			"role":      role,
		},
	})
}

// CurrentProfile returns the authenticated user's profile, with the role
// read fresh from the database.
func (h *Handlers) CurrentProfile(c *gin.Context) {
	claims, exists := middleware.GetUserClaimsFromContext(c)
	if !exists {
		utils.ResponseWithError(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	profile, err := queries.FindProfileByID(claims.UserID)
	if err != nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load profile", nil)
		return
	}
	if profile == nil {
		utils.ResponseWithError(c, http.StatusNotFound, "Profile not found", nil)
		return
	}

	// The token carries the email as it was at login; serve the current one.
	email := claims.Email
	if user, err := queries.FindUserByID(claims.UserID); err == nil && user != nil {
		email = user.Email
	}

	utils.ResponseWithSuccess(c, http.StatusOK, "Profile loaded", gin.H{
		"id":        profile.ID,
		"email":     email,
		"full_name": profile.FullName,
		"role":      profile.Role,
	})
}
