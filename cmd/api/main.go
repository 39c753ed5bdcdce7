package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"portfolio-cms-backend/config"
	"portfolio-cms-backend/internal/database"
	"portfolio-cms-backend/internal/router"
	"portfolio-cms-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg, log)
	if err != nil {
		log.Warn("redis unavailable, login rate limiting disabled", zap.Error(err))
		redisClient = nil
	}

	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Fatal("s3 setup failed", zap.Error(err))
	}
	var storage service.Storage
	if s3cfg != nil {
		storage = service.NewS3Storage(s3cfg)
	}

	slugCache := cache.New(5*time.Minute, 10*time.Minute)

	auth := service.NewAuthService(db, log, cfg.JWTSecret, cfg.JWTExpiry)
	profiles := service.NewProfileService(db, log)
	profileSkills := service.NewProfileSkillService(db, log)
	projects := service.NewProjectService(db, log, slugCache)
	projectSkills := service.NewProjectSkillService(db, log, slugCache)
	skills := service.NewSkillService(db, log)
	posts := service.NewBlogPostService(db, log, slugCache)
	postTags := service.NewBlogPostTagService(db, log, slugCache)
	tags := service.NewTagService(db, log)
	contacts := service.NewContactService(db, log)
	files := service.NewFileService(db, log)
	uploads := service.NewUploadService(storage, files, log)

	handlers := router.NewHandlers(log, auth, profiles, profileSkills,
		projects, projectSkills, skills, posts, postTags, tags,
		contacts, files, uploads)

	engine := router.Setup(cfg, log, db, redisClient, auth, handlers)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: engine,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Fatal("server error", zap.Error(err))
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
