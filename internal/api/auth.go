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

type AuthHandler struct {
	auth *service.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// RegisterRoutes wires the auth endpoints. loginLimit is the per-IP rate
// limiter for the login route; pass nil when Redis is not configured.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, loginLimit gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		if loginLimit != nil {
			auth.POST("/login", loginLimit, h.Login)
		} else {
			auth.POST("/login", h.Login)
		}
		auth.GET("/me",
			middleware.RequireRoles(models.RoleAdmin, models.RoleOperator, models.RoleGuest),
			h.Me)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	respond(c, http.StatusCreated, "Registration successful.", gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, "Login successful.", gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	user, err := h.auth.GetUserByID(c.Request.Context(), ident.ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, msgOneFound, user)
}
