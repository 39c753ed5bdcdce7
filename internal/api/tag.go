package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-cms-backend/internal/middleware"
	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/service"
	"portfolio-cms-backend/internal/types"
)

type TagHandler struct {
	tags *service.TagService
	log  *zap.Logger
}

func NewTagHandler(tags *service.TagService, log *zap.Logger) *TagHandler {
	return &TagHandler{tags: tags, log: log}
}

func (h *TagHandler) RegisterRoutes(router *gin.RouterGroup) {
	tags := router.Group("/tags", middleware.RequireRoles(models.RoleAdmin))
	{
		tags.POST("/create", h.Create)
		tags.POST("", h.List)
		tags.GET("/:id", h.Get)
		tags.PATCH("/:id", h.Update)
		tags.DELETE("/delete/bulk", h.DeleteBulk)
		tags.DELETE("/:id", h.Delete)
	}
}

func (h *TagHandler) Create(c *gin.Context) {
	var req types.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tag, err := h.tags.CreateFromRequest(c.Request.Context(), req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, msgCreated, tag)
}

func (h *TagHandler) List(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		bindError(c, err)
		return
	}

	page, err := h.tags.GetAll(c.Request.Context(), q, uuid.Nil)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, listMessage(page.Total), page)
}

func (h *TagHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tags.GetByID(c.Request.Context(), id, uuid.Nil)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if tag == nil {
		respond(c, http.StatusOK, msgNoneFound, nil)
		return
	}
	respond(c, http.StatusOK, msgOneFound, tag)
}

func (h *TagHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tag, err := h.tags.Update(c.Request.Context(), id, uuid.Nil, req.Updates())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgUpdated, tag)
}

func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tags.Delete(c.Request.Context(), id, uuid.Nil)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, tag)
}

func (h *TagHandler) DeleteBulk(c *gin.Context) {
	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count, err := h.tags.DeleteBulk(c.Request.Context(), req.IDs, uuid.Nil)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, gin.H{"count": count})
}
