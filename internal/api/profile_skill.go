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

// ProfileSkillHandler manages the skills attached to the caller's profile.
// Rows are addressed by skill id since the profile side of the pair is always
// the caller's own.
type ProfileSkillHandler struct {
	profileSkills *service.ProfileSkillService
	profiles      *service.ProfileService
	log           *zap.Logger
}

func NewProfileSkillHandler(profileSkills *service.ProfileSkillService, profiles *service.ProfileService, log *zap.Logger) *ProfileSkillHandler {
	return &ProfileSkillHandler{
		profileSkills: profileSkills,
		profiles:      profiles,
		log:           log,
	}
}

func (h *ProfileSkillHandler) RegisterRoutes(router *gin.RouterGroup) {
	links := router.Group("/profile-skills", middleware.RequireRoles(models.RoleAdmin))
	{
		links.POST("/create", h.Create)
		links.POST("", h.List)
		links.GET("/:skillId", h.Get)
		links.PATCH("/:skillId", h.Update)
		links.DELETE("/delete/bulk", h.DeleteBulk)
		links.DELETE("/:skillId", h.Delete)
	}
}

func (h *ProfileSkillHandler) Create(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	var req types.CreateProfileSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	link, err := h.profileSkills.CreateFromRequest(c.Request.Context(), profileID, req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, msgCreated, link)
}

func (h *ProfileSkillHandler) List(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	q, err := parseListQuery(c)
	if err != nil {
		bindError(c, err)
		return
	}

	page, err := h.profileSkills.GetAll(c.Request.Context(), q, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, listMessage(page.Total), page)
}

func (h *ProfileSkillHandler) Get(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	skillID, ok := pathID(c, "skillId")
	if !ok {
		return
	}

	link, err := h.profileSkills.GetByPair(c.Request.Context(), profileID, skillID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if link == nil {
		respond(c, http.StatusOK, msgNoneFound, nil)
		return
	}
	respond(c, http.StatusOK, msgOneFound, link)
}

func (h *ProfileSkillHandler) Update(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	skillID, ok := pathID(c, "skillId")
	if !ok {
		return
	}

	var req types.UpdateProfileSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	link, err := h.profileSkills.UpdateByPair(c.Request.Context(), profileID, skillID, req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgUpdated, link)
}

func (h *ProfileSkillHandler) Delete(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	skillID, ok := pathID(c, "skillId")
	if !ok {
		return
	}

	link, err := h.profileSkills.DeleteByPair(c.Request.Context(), profileID, skillID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, link)
}

func (h *ProfileSkillHandler) DeleteBulk(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count, err := h.profileSkills.DeleteBulk(c.Request.Context(), req.IDs, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, gin.H{"count": count})
}
