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

type ProjectHandler struct {
	projects      *service.ProjectService
	projectSkills *service.ProjectSkillService
	profiles      *service.ProfileService
	log           *zap.Logger
}

func NewProjectHandler(projects *service.ProjectService, projectSkills *service.ProjectSkillService, profiles *service.ProfileService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects:      projects,
		projectSkills: projectSkills,
		profiles:      profiles,
		log:           log,
	}
}

func (h *ProjectHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Slug reads stay public; everything else is owner-only.
	router.GET("/projects/slug/:slug", h.GetBySlug)

	projects := router.Group("/projects", middleware.RequireRoles(models.RoleAdmin))
	{
		projects.POST("/create", h.Create)
		projects.POST("", h.List)
		projects.GET("/:id", h.Get)
		projects.PATCH("/:id", h.Update)
		projects.DELETE("/delete/bulk", h.DeleteBulk)
		projects.DELETE("/:id", h.Delete)

		skills := projects.Group("/:id/skills")
		{
			skills.POST("/create", h.AddSkill)
			skills.GET("/:skillId", h.GetSkill)
			skills.DELETE("/delete/bulk", h.DeleteSkillsBulk)
			skills.DELETE("/:skillId", h.RemoveSkill)
		}
	}
}

// ownedProject checks the :id project belongs to the caller's profile before
// any nested skill operation runs.
func (h *ProjectHandler) ownedProject(c *gin.Context) (*models.Project, bool) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return nil, false
	}
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}

	project, err := h.projects.GetByID(c.Request.Context(), id, profileID)
	if err != nil {
		fail(c, h.log, err)
		return nil, false
	}
	if project == nil {
		fail(c, h.log, service.ErrUnauthorized)
		return nil, false
	}
	return project, true
}

func (h *ProjectHandler) Create(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	var req types.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	project, err := h.projects.CreateFromRequest(c.Request.Context(), profileID, req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, msgCreated, project)
}

func (h *ProjectHandler) List(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	q, err := parseListQuery(c)
	if err != nil {
		bindError(c, err)
		return
	}

	page, err := h.projects.GetAll(c.Request.Context(), q, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, listMessage(page.Total), page)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	project, err := h.projects.GetByID(c.Request.Context(), id, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if project == nil {
		respond(c, http.StatusOK, msgNoneFound, nil)
		return
	}
	respond(c, http.StatusOK, msgOneFound, project)
}

func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	project, err := h.projects.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if project == nil {
		respond(c, http.StatusOK, msgNoneFound, nil)
		return
	}
	respond(c, http.StatusOK, msgOneFound, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	project, err := h.projects.UpdateFromRequest(c.Request.Context(), id, profileID, req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgUpdated, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	project, err := h.projects.DeleteByID(c.Request.Context(), id, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, project)
}

func (h *ProjectHandler) DeleteBulk(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count, err := h.projects.DeleteBulkByIDs(c.Request.Context(), req.IDs, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, gin.H{"count": count})
}

func (h *ProjectHandler) AddSkill(c *gin.Context) {
	project, ok := h.ownedProject(c)
	if !ok {
		return
	}

	var req types.CreateProjectSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	link, err := h.projectSkills.CreateFromRequest(c.Request.Context(), project.ID, req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, msgCreated, link)
}

func (h *ProjectHandler) GetSkill(c *gin.Context) {
	project, ok := h.ownedProject(c)
	if !ok {
		return
	}
	skillID, ok := pathID(c, "skillId")
	if !ok {
		return
	}

	link, err := h.projectSkills.GetByPair(c.Request.Context(), project.ID, skillID)
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

func (h *ProjectHandler) RemoveSkill(c *gin.Context) {
	project, ok := h.ownedProject(c)
	if !ok {
		return
	}
	skillID, ok := pathID(c, "skillId")
	if !ok {
		return
	}

	link, err := h.projectSkills.DeleteByPair(c.Request.Context(), project.ID, skillID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, link)
}

func (h *ProjectHandler) DeleteSkillsBulk(c *gin.Context) {
	project, ok := h.ownedProject(c)
	if !ok {
		return
	}

	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count, err := h.projectSkills.DeleteBulk(c.Request.Context(), req.IDs, project.ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, gin.H{"count": count})
}
