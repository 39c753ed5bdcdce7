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

// Skills form a global catalog shared by every profile and project, so no
// ownership scope applies.
type SkillHandler struct {
	skills *service.SkillService
	log    *zap.Logger
}

func NewSkillHandler(skills *service.SkillService, log *zap.Logger) *SkillHandler {
	return &SkillHandler{skills: skills, log: log}
}

func (h *SkillHandler) RegisterRoutes(router *gin.RouterGroup) {
	skills := router.Group("/skills", middleware.RequireRoles(models.RoleAdmin))
	{
		skills.POST("/create", h.Create)
		skills.POST("", h.List)
		skills.GET("/:id", h.Get)
		skills.PATCH("/:id", h.Update)
		skills.DELETE("/delete/bulk", h.DeleteBulk)
		skills.DELETE("/:id", h.Delete)
	}
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req types.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	skill, err := h.skills.CreateFromRequest(c.Request.Context(), req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, msgCreated, skill)
}

func (h *SkillHandler) List(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		bindError(c, err)
		return
	}

	page, err := h.skills.GetAll(c.Request.Context(), q, uuid.Nil)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, listMessage(page.Total), page)
}

func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	skill, err := h.skills.GetByID(c.Request.Context(), id, uuid.Nil)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if skill == nil {
		respond(c, http.StatusOK, msgNoneFound, nil)
		return
	}
	respond(c, http.StatusOK, msgOneFound, skill)
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	skill, err := h.skills.Update(c.Request.Context(), id, uuid.Nil, req.Updates())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgUpdated, skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	skill, err := h.skills.Delete(c.Request.Context(), id, uuid.Nil)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, skill)
}

func (h *SkillHandler) DeleteBulk(c *gin.Context) {
	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count, err := h.skills.DeleteBulk(c.Request.Context(), req.IDs, uuid.Nil)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, gin.H{"count": count})
}
