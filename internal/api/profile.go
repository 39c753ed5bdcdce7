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

type ProfileHandler struct {
	profiles *service.ProfileService
	log      *zap.Logger
}

func NewProfileHandler(profiles *service.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile", middleware.RequireRoles(models.RoleAdmin))
	{
		profile.POST("/create", h.Create)
		profile.POST("", h.List)
		profile.GET("/:id", h.Get)
		profile.PATCH("/:id", h.Update)
		profile.DELETE("/delete/bulk", h.DeleteBulk)
		profile.DELETE("/:id", h.Delete)
	}
}

func (h *ProfileHandler) Create(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	var req types.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	profile, err := h.profiles.CreateFromRequest(c.Request.Context(), ident.ID, req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, msgCreated, profile)
}

func (h *ProfileHandler) List(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	q, err := parseListQuery(c)
	if err != nil {
		bindError(c, err)
		return
	}

	page, err := h.profiles.GetAll(c.Request.Context(), q, ident.ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, listMessage(page.Total), page)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.profiles.GetByID(c.Request.Context(), id, ident.ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if profile == nil {
		respond(c, http.StatusOK, msgNoneFound, nil)
		return
	}
	respond(c, http.StatusOK, msgOneFound, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	profile, err := h.profiles.Update(c.Request.Context(), id, ident.ID, req.Updates())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgUpdated, profile)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.profiles.Delete(c.Request.Context(), id, ident.ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, profile)
}

func (h *ProfileHandler) DeleteBulk(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count, err := h.profiles.DeleteBulk(c.Request.Context(), req.IDs, ident.ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, gin.H{"count": count})
}
