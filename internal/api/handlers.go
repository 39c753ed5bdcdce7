package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-cms-backend/internal/middleware"
	"portfolio-cms-backend/internal/service"
	"portfolio-cms-backend/internal/types"
)

const (
	msgCreated   = "Data successfully added."
	msgUpdated   = "Partial data update successful."
	msgDeleted   = "Data successfully deleted."
	msgOneFound  = "1 record found."
	msgNoneFound = "No records found."
)

// pathID parses a uuid path parameter. On failure it writes the validation
// envelope and reports false.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewError(http.StatusBadRequest,
			"Validation failed",
			[]types.FieldError{{Path: name, Message: name + " must be a valid id"}}))
		return uuid.Nil, false
	}
	return id, true
}

// identity returns the authenticated caller. The role middleware runs first
// on every guarded group, so a missing identity here is a wiring bug; it is
// still answered with a 401 rather than a panic.
func identity(c *gin.Context) (types.Identity, bool) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			types.NewError(http.StatusUnauthorized, "authentication required", nil))
	}
	return ident, ok
}

// callerProfileID resolves the caller's profile, which scopes every
// profile-owned resource.
func callerProfileID(c *gin.Context, log *zap.Logger, profiles *service.ProfileService) (uuid.UUID, bool) {
	ident, ok := identity(c)
	if !ok {
		return uuid.Nil, false
	}
	profile, err := profiles.GetByUserID(c.Request.Context(), ident.ID)
	if err != nil {
		fail(c, log, err)
		return uuid.Nil, false
	}
	return profile.ID, true
}
