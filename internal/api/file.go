package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-cms-backend/internal/middleware"
	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/service"
	"portfolio-cms-backend/internal/types"
)

type FileHandler struct {
	files    *service.FileService
	profiles *service.ProfileService
	log      *zap.Logger
}

func NewFileHandler(files *service.FileService, profiles *service.ProfileService, log *zap.Logger) *FileHandler {
	return &FileHandler{files: files, profiles: profiles, log: log}
}

func (h *FileHandler) RegisterRoutes(router *gin.RouterGroup) {
	files := router.Group("/files", middleware.RequireRoles(models.RoleAdmin))
	{
		files.POST("/create", h.Create)
		files.POST("", h.List)
		files.GET("/:id", h.Get)
		files.PATCH("/:id", h.Update)
		files.DELETE("/delete/bulk", h.DeleteBulk)
		files.DELETE("/:id", h.Delete)
	}
}

func (h *FileHandler) Create(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	var req types.CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	file, err := h.files.CreateFromRequest(c.Request.Context(), profileID, req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, msgCreated, file)
}

func (h *FileHandler) List(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	q, err := parseListQuery(c)
	if err != nil {
		bindError(c, err)
		return
	}

	page, err := h.files.GetAll(c.Request.Context(), q, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, listMessage(page.Total), page)
}

func (h *FileHandler) Get(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	file, err := h.files.GetByID(c.Request.Context(), id, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if file == nil {
		respond(c, http.StatusOK, msgNoneFound, nil)
		return
	}
	respond(c, http.StatusOK, msgOneFound, file)
}

func (h *FileHandler) Update(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	file, err := h.files.Update(c.Request.Context(), id, profileID, req.Updates())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgUpdated, file)
}

func (h *FileHandler) Delete(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	file, err := h.files.Delete(c.Request.Context(), id, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, file)
}

func (h *FileHandler) DeleteBulk(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count, err := h.files.DeleteBulk(c.Request.Context(), req.IDs, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, gin.H{"count": count})
}
