package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/gitaworld/gita-content-api/pkg/config"
	"github.com/gitaworld/gita-content-api/pkg/sample"
	"github.com/gitaworld/gita-content-api/pkg/utils"
)

// Handlers holds the dependencies shared by all HTTP handlers.
type Handlers struct {
	Config    *config.Config
	JwtSecret []byte
	Sample    *sample.Dataset
}

func NewHandlers(cfg *config.Config, sampleData *sample.Dataset) *Handlers {
	return &Handlers{
		Config:    cfg,
		JwtSecret: []byte(cfg.JwtSecret),
		Sample:    sampleData,
	}
}

// respondWriteError maps a failed mutation to a response. Constraint
// violations become 409/400 with the constraint spelled out; anything else
// surfaces the backend's message when present, a generic one otherwise.
func respondWriteError(c *gin.Context, err error, fallback string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			utils.ResponseWithError(c, http.StatusConflict, "A row with these values already exists", pqErr.Detail)
			return
		case "23503": // foreign_key_violation
			utils.ResponseWithError(c, http.StatusConflict, "Referenced row does not exist or is still referenced", pqErr.Detail)
			return
		case "23514": // check_violation
			utils.ResponseWithError(c, http.StatusBadRequest, "Value violates a constraint", pqErr.Detail)
			return
		}
		utils.ResponseWithError(c, http.StatusInternalServerError, pqErr.Message, nil)
		return
	}
	if errors.Is(err, sql.ErrNoRows) {
		utils.ResponseWithError(c, http.StatusNotFound, fallback+": not found", nil)
		return
	}
	utils.ResponseWithError(c, http.StatusInternalServerError, fallback, nil)
}

func strOrEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt32(n int) sql.NullInt32 {
	return sql.NullInt32{Int32: int32(n), Valid: n != 0}
}
