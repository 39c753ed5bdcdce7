package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-cms-backend/config"
	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/types"
)

type stubVerifier struct {
	identity *types.Identity
	err      error
}

func (s *stubVerifier) VerifyToken(string) (*types.Identity, error) {
	return s.identity, s.err
}

func newTestRouter(verifier TokenVerifier, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(verifier))
	handlers := []gin.HandlerFunc{}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		ident, ok := CurrentIdentity(c)
		if ok {
			c.JSON(http.StatusOK, gin.H{"email": ident.Email})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": nil})
	})
	r.GET("/probe", handlers...)
	return r
}

func TestAuthenticateAnonymousPassThrough(t *testing.T) {
	r := newTestRouter(&stubVerifier{err: errors.New("should not be called")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateInvalidTokenRejected(t *testing.T) {
	r := newTestRouter(&stubVerifier{err: errors.New("bad token")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token invalid or expired")
}

func TestAuthenticateValidTokenSetsIdentity(t *testing.T) {
	ident := &types.Identity{ID: uuid.New(), Email: "x@y.com", Role: models.RoleAdmin}
	r := newTestRouter(&stubVerifier{identity: ident})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "x@y.com")
}

func TestRequireRolesAnonymous(t *testing.T) {
	r := newTestRouter(&stubVerifier{}, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestRequireRolesWrongRole(t *testing.T) {
	ident := &types.Identity{ID: uuid.New(), Email: "x@y.com", Role: models.RoleGuest}
	r := newTestRouter(&stubVerifier{identity: ident}, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not allowed")
}

func TestRequireRolesAllowed(t *testing.T) {
	ident := &types.Identity{ID: uuid.New(), Email: "x@y.com", Role: models.RoleAdmin}
	r := newTestRouter(&stubVerifier{identity: ident}, models.RoleAdmin, models.RoleOperator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func secretRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecretKey(cfg))
	r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestSecretKeyIgnoredOutsideProduction(t *testing.T) {
	r := secretRouter(&config.Config{Environment: "development", SecretKey: "s3cret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSecretKeyEnforcedInProduction(t *testing.T) {
	cfg := &config.Config{Environment: "production", SecretKey: "s3cret"}
	r := secretRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Secret-Key", "wrong")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Secret-Key", "s3cret")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
