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

type BlogPostHandler struct {
	posts    *service.BlogPostService
	postTags *service.BlogPostTagService
	profiles *service.ProfileService
	log      *zap.Logger
}

func NewBlogPostHandler(posts *service.BlogPostService, postTags *service.BlogPostTagService, profiles *service.ProfileService, log *zap.Logger) *BlogPostHandler {
	return &BlogPostHandler{
		posts:    posts,
		postTags: postTags,
		profiles: profiles,
		log:      log,
	}
}

func (h *BlogPostHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/blog-posts/slug/:slug", h.GetBySlug)

	posts := router.Group("/blog-posts", middleware.RequireRoles(models.RoleAdmin))
	{
		posts.POST("/create", h.Create)
		posts.POST("", h.List)
		posts.GET("/:id", h.Get)
		posts.PATCH("/:id", h.Update)
		posts.DELETE("/delete/bulk", h.DeleteBulk)
		posts.DELETE("/:id", h.Delete)

		tags := posts.Group("/:id/tags")
		{
			tags.POST("/create", h.AddTag)
			tags.GET("/:tagId", h.GetTag)
			tags.DELETE("/delete/bulk", h.DeleteTagsBulk)
			tags.DELETE("/:tagId", h.RemoveTag)
		}
	}
}

func (h *BlogPostHandler) ownedPost(c *gin.Context) (*models.BlogPost, bool) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return nil, false
	}
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}

	post, err := h.posts.GetByID(c.Request.Context(), id, profileID)
	if err != nil {
		fail(c, h.log, err)
		return nil, false
	}
	if post == nil {
		fail(c, h.log, service.ErrUnauthorized)
		return nil, false
	}
	return post, true
}

func (h *BlogPostHandler) Create(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	var req types.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	post, err := h.posts.CreateFromRequest(c.Request.Context(), profileID, req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, msgCreated, post)
}

func (h *BlogPostHandler) List(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	q, err := parseListQuery(c)
	if err != nil {
		bindError(c, err)
		return
	}

	page, err := h.posts.GetAll(c.Request.Context(), q, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, listMessage(page.Total), page)
}

func (h *BlogPostHandler) Get(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.posts.GetByID(c.Request.Context(), id, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if post == nil {
		respond(c, http.StatusOK, msgNoneFound, nil)
		return
	}
	respond(c, http.StatusOK, msgOneFound, post)
}

func (h *BlogPostHandler) GetBySlug(c *gin.Context) {
	post, err := h.posts.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if post == nil {
		respond(c, http.StatusOK, msgNoneFound, nil)
		return
	}
	respond(c, http.StatusOK, msgOneFound, post)
}

func (h *BlogPostHandler) Update(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	post, err := h.posts.UpdateFromRequest(c.Request.Context(), id, profileID, req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgUpdated, post)
}

func (h *BlogPostHandler) Delete(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.posts.DeleteByID(c.Request.Context(), id, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, post)
}

func (h *BlogPostHandler) DeleteBulk(c *gin.Context) {
	profileID, ok := callerProfileID(c, h.log, h.profiles)
	if !ok {
		return
	}

	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count, err := h.posts.DeleteBulkByIDs(c.Request.Context(), req.IDs, profileID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, gin.H{"count": count})
}

func (h *BlogPostHandler) AddTag(c *gin.Context) {
	post, ok := h.ownedPost(c)
	if !ok {
		return
	}

	var req types.CreateBlogPostTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	link, err := h.postTags.CreateFromRequest(c.Request.Context(), post.ID, req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, msgCreated, link)
}

func (h *BlogPostHandler) GetTag(c *gin.Context) {
	post, ok := h.ownedPost(c)
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return
	}

	link, err := h.postTags.GetByPair(c.Request.Context(), post.ID, tagID)
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

func (h *BlogPostHandler) RemoveTag(c *gin.Context) {
	post, ok := h.ownedPost(c)
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return
	}

	link, err := h.postTags.DeleteByPair(c.Request.Context(), post.ID, tagID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, link)
}

func (h *BlogPostHandler) DeleteTagsBulk(c *gin.Context) {
	post, ok := h.ownedPost(c)
	if !ok {
		return
	}

	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	count, err := h.postTags.DeleteBulk(c.Request.Context(), req.IDs, post.ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, msgDeleted, gin.H{"count": count})
}
