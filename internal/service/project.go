package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/types"
)

var projectColumns = map[string]string{
	"title":       "title",
	"slug":        "slug",
	"description": "description",
	"is_featured": "is_featured",
}

// ProjectService handles projects, scoped by the owning profile id. Public
// slug lookups go through a short-lived read cache that mutations flush.
type ProjectService struct {
	Crud[models.Project]
	cache *cache.Cache
}

func NewProjectService(db *gorm.DB, log *zap.Logger, c *cache.Cache) *ProjectService {
	return &ProjectService{
		Crud:  newCrud[models.Project](db, log, "projects", "profile_id", projectColumns, "Skills.Skill"),
		cache: c,
	}
}

func (s *ProjectService) CreateFromRequest(ctx context.Context, profileID uuid.UUID, req types.CreateProjectRequest) (*models.Project, error) {
	project := models.Project{
		ProfileID:   profileID,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		GithubURL:   req.GithubURL,
		LiveURL:     req.LiveURL,
		IsFeatured:  req.IsFeatured,
		Skills:      []models.ProjectSkill{},
	}
	created, err := s.Create(ctx, &project)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, conflict("a project with this slug already exists")
		}
		return nil, err
	}
	return created, nil
}

// GetBySlug is the public read path: not scoped by any owner, nil when absent.
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	if s.cache != nil {
		if hit, ok := s.cache.Get(slugKey("project", slug)); ok {
			return hit.(*models.Project), nil
		}
	}

	var project models.Project
	err := s.db.WithContext(ctx).
		Preload("Skills.Skill").
		Where("slug = ?", slug).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if project.Skills == nil {
		project.Skills = []models.ProjectSkill{}
	}

	s.log.Info("fetched record", zap.String("entity", "projects"), zap.String("slug", slug))
	if s.cache != nil {
		s.cache.Set(slugKey("project", slug), &project, cache.DefaultExpiration)
	}
	return &project, nil
}

func (s *ProjectService) UpdateFromRequest(ctx context.Context, id, profileID uuid.UUID, req types.UpdateProjectRequest) (*models.Project, error) {
	updated, err := s.Update(ctx, id, profileID, req.Updates())
	if err != nil {
		return nil, err
	}
	s.flush()
	return updated, nil
}

func (s *ProjectService) DeleteByID(ctx context.Context, id, profileID uuid.UUID) (*models.Project, error) {
	deleted, err := s.Delete(ctx, id, profileID)
	if err != nil {
		return nil, err
	}
	s.flush()
	return deleted, nil
}

func (s *ProjectService) DeleteBulkByIDs(ctx context.Context, ids []uuid.UUID, profileID uuid.UUID) (int64, error) {
	count, err := s.DeleteBulk(ctx, ids, profileID)
	if err != nil {
		return 0, err
	}
	s.flush()
	return count, nil
}

// Slugs can change on update, so mutations drop the whole cache rather than
// chase individual keys.
func (s *ProjectService) flush() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

func slugKey(entity, slug string) string {
	return entity + ":slug:" + slug
}
