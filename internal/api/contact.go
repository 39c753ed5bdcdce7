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

type ContactHandler struct {
	contacts *service.ContactService
	profiles *service.ProfileService
	log      *zap.Logger
}

func NewContactHandler(contacts *service.ContactService, profiles *service.ProfileService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, profiles: profiles, log: log}
}

func (h *ContactHandler) RegisterRoutes(router *gin.RouterGroup) {
	contacts := router.Group("/contacts", middleware.RequireRoles(models.RoleAdmin))
	{
		contacts.POST("/create", h.Create)
		contacts.POST("", h.List)
		contacts.GET("/:id", h.Get)
		contacts.PATCH("/:id", h.Update)
		contacts.DELETE("/delete/bulk", h.DeleteBulk)
		contacts.DELETE("/:id", h.Delete)
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	var req types.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	contact, err := h.contacts.CreateFromRequest(c.Request.Context(), profileID, req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, msgCreated, contact)
}

func (h *ContactHandler) List(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	q, err := parseListQuery(c)
	if err != nil {
		bindError(c, err)
		return
	}

	page, err := h.contacts.GetAll(c.Request.Context(), q, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, listMessage(page.Total), page)
}

func (h *ContactHandler) Get(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	contact, err := h.contacts.GetByID(c.Request.Context(), id, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if contact == nil {
		respond(c, http.StatusOK, msgNoneFound, nil)
		return
	}
	respond(c, http.StatusOK, msgOneFound, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	contact, err := h.contacts.Update(c.Request.Context(), id, profileID, req.Updates())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgUpdated, contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	contact, err := h.contacts.Delete(c.Request.Context(), id, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, contact)
}

func (h *ContactHandler) DeleteBulk(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count, err := h.contacts.DeleteBulk(c.Request.Context(), req.IDs, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, gin.H{"count": count})
}
