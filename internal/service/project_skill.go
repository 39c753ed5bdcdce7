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

var projectSkillColumns = map[string]string{
	"skill_id": "skill_id",
}

// ProjectSkillService handles the project-to-skill join rows, keyed by the
// (project, skill) pair and scoped by the project id from the route.
type ProjectSkillService struct {
	Crud[models.ProjectSkill]
	cache *cache.Cache
}

func NewProjectSkillService(db *gorm.DB, log *zap.Logger, c *cache.Cache) *ProjectSkillService {
	return &ProjectSkillService{
		Crud:  newCrud[models.ProjectSkill](db, log, "project-skills", "project_id", projectSkillColumns, "Skill"),
		cache: c,
	}
}

// Link changes show up in public slug reads, so they flush the cache the same
// way direct project mutations do.
func (s *ProjectSkillService) flush() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

func (s *ProjectSkillService) GetByPair(ctx context.Context, projectID, skillID uuid.UUID) (*models.ProjectSkill, error) {
	var row models.ProjectSkill
	err := s.db.WithContext(ctx).
		Preload("Skill").
		Where("project_id = ? AND skill_id = ?", projectID, skillID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *ProjectSkillService) CreateFromRequest(ctx context.Context, projectID uuid.UUID, req types.CreateProjectSkillRequest) (*models.ProjectSkill, error) {
	var skill models.Skill
	if err := s.db.WithContext(ctx).Where("id = ?", req.SkillID).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("skill not found")
		}
		return nil, err
	}

	row := models.ProjectSkill{
		ProjectID: projectID,
		SkillID:   req.SkillID,
	}
	if _, err := s.Create(ctx, &row); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, conflict("this skill is already linked to the project")
		}
		return nil, err
	}
	s.flush()
	return s.GetByPair(ctx, projectID, req.SkillID)
}

func (s *ProjectSkillService) DeleteByPair(ctx context.Context, projectID, skillID uuid.UUID) (*models.ProjectSkill, error) {
	var row models.ProjectSkill
	err := s.db.WithContext(ctx).
		Where("project_id = ? AND skill_id = ?", projectID, skillID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, unauthorized("you are not authorized to delete this record")
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(&row).Error; err != nil {
		return nil, err
	}
	s.flush()
	s.log.Info("deleted record", zap.String("entity", "project-skills"), zap.String("skill_id", skillID.String()))
	return &row, nil
}

// DeleteBulk removes links by skill id within the project's scope.
func (s *ProjectSkillService) DeleteBulk(ctx context.Context, skillIDs []uuid.UUID, projectID uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("project_id = ? AND skill_id IN ?", projectID, skillIDs).
		Delete(&models.ProjectSkill{})
	if res.Error != nil {
		return 0, res.Error
	}
	s.flush()
	s.log.Info("bulk deleted records",
		zap.String("entity", "project-skills"),
		zap.Int("requested", len(skillIDs)),
		zap.Int64("deleted", res.RowsAffected))
	return res.RowsAffected, nil
}
