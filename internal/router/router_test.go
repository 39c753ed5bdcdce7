package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio-cms-backend/config"
	"portfolio-cms-backend/internal/database"
	"portfolio-cms-backend/internal/service"
)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Timestamp  string          `json:"timestamp"`
}

func testEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	log := zap.NewNop()
	cfg := &config.Config{
		Environment:    "test",
		JWTSecret:      "test-secret",
		JWTExpiry:      time.Hour,
		FrontendOrigin: "http://localhost:5173",
	}

	auth := service.NewAuthService(db, log, cfg.JWTSecret, cfg.JWTExpiry)
	profiles := service.NewProfileService(db, log)
	profileSkills := service.NewProfileSkillService(db, log)
	projects := service.NewProjectService(db, log, nil)
	projectSkills := service.NewProjectSkillService(db, log, nil)
	skills := service.NewSkillService(db, log)
	posts := service.NewBlogPostService(db, log, nil)
	postTags := service.NewBlogPostTagService(db, log, nil)
	tags := service.NewTagService(db, log)
	contacts := service.NewContactService(db, log)
	files := service.NewFileService(db, log)
	uploads := service.NewUploadService(nil, files, log)

	handlers := NewHandlers(log, auth, profiles, profileSkills,
		projects, projectSkills, skills, posts, postTags, tags,
		contacts, files, uploads)

	return Setup(cfg, log, db, nil, auth, handlers)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func register(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func createProfile(t *testing.T, r *gin.Engine, token string) {
	t.Helper()
	w, _ := doJSON(t, r, http.MethodPost, "/api/profile/create", token, gin.H{
		"name": "Owner", "title": "Developer", "telephone": "0123456789",
		"location": "Town", "age": 30, "gender": "OTHER",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestHealth(t *testing.T) {
	r := testEngine(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterEnvelopeShape(t *testing.T) {
	r := testEngine(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "owner@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Message)
	assert.NotEmpty(t, env.Timestamp)
}

func TestRegisterValidationFailure(t *testing.T) {
	r := testEngine(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "not-an-email", "password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)

	var fields []struct {
		Path    string `json:"path"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	require.Len(t, fields, 2)
	assert.Equal(t, "email", fields[0].Path)
	assert.Equal(t, "password", fields[1].Path)
}

func TestValidationPathsUseJSONNames(t *testing.T) {
	r := testEngine(t)
	token := register(t, r, "owner@example.com")
	createProfile(t, r, token)

	w, env := doJSON(t, r, http.MethodPost, "/api/projects/create", token, gin.H{
		"title": "Broken", "slug": "broken", "image_url": "not a url",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", env.Message)

	var fields []struct {
		Path    string `json:"path"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "image_url", fields[0].Path)
	assert.Equal(t, "image_url must be a valid URL", fields[0].Message)
}

func TestLoginWrongPassword(t *testing.T) {
	r := testEngine(t)
	register(t, r, "owner@example.com")

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "owner@example.com", "password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
}

func TestGuardedRoutesRejectAnonymous(t *testing.T) {
	r := testEngine(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	r := testEngine(t)
	token := register(t, r, "owner@example.com")

	w, env := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var user struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "ADMIN", user.Role)
}

func TestProjectFlowWithPublicSlug(t *testing.T) {
	r := testEngine(t)
	token := register(t, r, "owner@example.com")
	createProfile(t, r, token)

	w, env := doJSON(t, r, http.MethodPost, "/api/projects/create", token, gin.H{
		"title": "Weather Station", "slug": "weather-station",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Data successfully added.", env.Message)

	var project struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &project))

	// Public read, no token; skills come back as an empty list, not null.
	w, env = doJSON(t, r, http.MethodGet, "/api/projects/slug/weather-station", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1 record found.", env.Message)

	var pub struct {
		Title  string            `json:"title"`
		Skills []json.RawMessage `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pub))
	assert.Equal(t, "Weather Station", pub.Title)
	assert.NotNil(t, pub.Skills)

	// Listing is owner-only and reports the count.
	w, env = doJSON(t, r, http.MethodPost, "/api/projects", token, gin.H{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1 records found.", env.Message)

	// Duplicate slug conflicts.
	w, _ = doJSON(t, r, http.MethodPost, "/api/projects/create", token, gin.H{
		"title": "Other", "slug": "weather-station",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = doJSON(t, r, http.MethodDelete, "/api/projects/"+project.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Data successfully deleted.", env.Message)
}

func TestProjectsAreOwnerScoped(t *testing.T) {
	r := testEngine(t)
	owner := register(t, r, "owner@example.com")
	createProfile(t, r, owner)
	other := register(t, r, "other@example.com")
	createProfile(t, r, other)

	w, env := doJSON(t, r, http.MethodPost, "/api/projects/create", owner, gin.H{
		"title": "Private", "slug": "private",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var project struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &project))

	// The other account sees nothing.
	w, env = doJSON(t, r, http.MethodGet, "/api/projects/"+project.ID, other, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No records found.", env.Message)
	assert.Equal(t, "null", string(env.Data))

	// And cannot mutate it.
	w, _ = doJSON(t, r, http.MethodPatch, "/api/projects/"+project.ID, other, gin.H{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidIDIsValidationFailure(t *testing.T) {
	r := testEngine(t)
	token := register(t, r, "owner@example.com")
	createProfile(t, r, token)

	w, env := doJSON(t, r, http.MethodGet, "/api/projects/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", env.Message)
}

func TestSkillCatalogConflict(t *testing.T) {
	r := testEngine(t)
	token := register(t, r, "owner@example.com")

	w, _ := doJSON(t, r, http.MethodPost, "/api/skills/create", token, gin.H{
		"name": "go", "category": "backend",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/api/skills/create", token, gin.H{
		"name": "go", "category": "other",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "already in table, please try another name", env.Message)
}

func TestBlogPostTagNestedOwnership(t *testing.T) {
	r := testEngine(t)
	owner := register(t, r, "owner@example.com")
	createProfile(t, r, owner)
	other := register(t, r, "other@example.com")
	createProfile(t, r, other)

	_, env := doJSON(t, r, http.MethodPost, "/api/tags/create", owner, gin.H{"name": "go"})
	var tag struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tag))

	w, env := doJSON(t, r, http.MethodPost, "/api/blog-posts/create", owner, gin.H{
		"title": "Post", "slug": "post",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))

	// The owner can attach the tag.
	path := fmt.Sprintf("/api/blog-posts/%s/tags/create", post.ID)
	w, _ = doJSON(t, r, http.MethodPost, path, owner, gin.H{"tag_id": tag.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Another account cannot touch someone else's post.
	w, _ = doJSON(t, r, http.MethodPost, path, other, gin.H{"tag_id": tag.ID})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListPaginationEnvelope(t *testing.T) {
	r := testEngine(t)
	token := register(t, r, "owner@example.com")
	createProfile(t, r, token)

	for i := 0; i < 3; i++ {
		w, _ := doJSON(t, r, http.MethodPost, "/api/projects/create", token, gin.H{
			"title": fmt.Sprintf("Project %d", i), "slug": fmt.Sprintf("project-%d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, env := doJSON(t, r, http.MethodPost, "/api/projects", token, gin.H{
		"page": 1, "limit": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3 records found.", env.Message)

	var page struct {
		Page  int             `json:"page"`
		Limit int             `json:"limit"`
		Total int64           `json:"total"`
		Data  json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, int64(3), page.Total)
}

func TestUploadUnavailableWithoutStorage(t *testing.T) {
	r := testEngine(t)
	token := register(t, r, "owner@example.com")
	createProfile(t, r, token)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
