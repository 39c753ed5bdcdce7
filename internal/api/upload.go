package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-cms-backend/internal/middleware"
	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/service"
	"portfolio-cms-backend/internal/types"
)

// 10 MiB, matching the documented resume/image ceiling.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploads  *service.UploadService
	profiles *service.ProfileService
	log      *zap.Logger
}

func NewUploadHandler(uploads *service.UploadService, profiles *service.ProfileService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{uploads: uploads, profiles: profiles, log: log}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/upload", middleware.RequireRoles(models.RoleAdmin), h.Upload)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	if !h.uploads.Enabled() {
		c.JSON(http.StatusServiceUnavailable, types.NewError(
			http.StatusServiceUnavailable, "file storage is not configured", nil))
		return
	}

	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewError(http.StatusBadRequest,
			"Validation failed",
			[]types.FieldError{{Path: "file", Message: "file is required"}}))
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, types.NewError(http.StatusBadRequest,
			"Validation failed",
			[]types.FieldError{{Path: "file", Message: "file exceeds the 10MB limit"}}))
		return
	}

	src, err := header.Open()
	if err != nil {
		fail(c, h.log, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	file, err := h.uploads.Upload(c.Request.Context(), profileID,
		header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, msgCreated, file)
}
