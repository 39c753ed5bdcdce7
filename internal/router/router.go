package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-cms-backend/config"
	"portfolio-cms-backend/internal/api"
	"portfolio-cms-backend/internal/database"
	"portfolio-cms-backend/internal/middleware"
	"portfolio-cms-backend/internal/service"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Auth          *api.AuthHandler
	Profile       *api.ProfileHandler
	ProfileSkills *api.ProfileSkillHandler
	Projects      *api.ProjectHandler
	Skills        *api.SkillHandler
	BlogPosts     *api.BlogPostHandler
	Tags          *api.TagHandler
	Contacts      *api.ContactHandler
	Files         *api.FileHandler
	Upload        *api.UploadHandler
}

// Setup configures the gin engine: recovery, access logging, CORS, then the
// guard chain (secret key, token decode) ahead of every /api route. Role
// checks are registered per group by the handlers themselves.
func Setup(
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	verifier middleware.TokenVerifier,
	h Handlers,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg))

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.SecretKey(cfg))
	apiGroup.Use(middleware.Authenticate(verifier))

	var loginLimit gin.HandlerFunc
	if redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     10,
			KeyPrefix: "ratelimit:login",
		})
		loginLimit = limiter.Middleware()
	}

	h.Auth.RegisterRoutes(apiGroup, loginLimit)
	h.Profile.RegisterRoutes(apiGroup)
	h.ProfileSkills.RegisterRoutes(apiGroup)
	h.Projects.RegisterRoutes(apiGroup)
	h.Skills.RegisterRoutes(apiGroup)
	h.BlogPosts.RegisterRoutes(apiGroup)
	h.Tags.RegisterRoutes(apiGroup)
	h.Contacts.RegisterRoutes(apiGroup)
	h.Files.RegisterRoutes(apiGroup)
	h.Upload.RegisterRoutes(apiGroup)

	return router
}

// NewHandlers wires the full service graph behind the route handlers.
func NewHandlers(
	log *zap.Logger,
	auth *service.AuthService,
	profiles *service.ProfileService,
	profileSkills *service.ProfileSkillService,
	projects *service.ProjectService,
	projectSkills *service.ProjectSkillService,
	skills *service.SkillService,
	posts *service.BlogPostService,
	postTags *service.BlogPostTagService,
	tags *service.TagService,
	contacts *service.ContactService,
	files *service.FileService,
	uploads *service.UploadService,
) Handlers {
	return Handlers{
		Auth:          api.NewAuthHandler(auth, log),
		Profile:       api.NewProfileHandler(profiles, log),
		ProfileSkills: api.NewProfileSkillHandler(profileSkills, profiles, log),
		Projects:      api.NewProjectHandler(projects, projectSkills, profiles, log),
		Skills:        api.NewSkillHandler(skills, log),
		BlogPosts:     api.NewBlogPostHandler(posts, postTags, profiles, log),
		Tags:          api.NewTagHandler(tags, log),
		Contacts:      api.NewContactHandler(contacts, profiles, log),
		Files:         api.NewFileHandler(files, profiles, log),
		Upload:        api.NewUploadHandler(uploads, profiles, log),
	}
}
