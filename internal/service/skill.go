package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/types"
)

var skillColumns = map[string]string{
	"name":     "name",
	"category": "category",
}

// SkillService handles the global skill catalog. Skills have no owning scope;
// mutation rights come from the role gate alone.
type SkillService struct {
	Crud[models.Skill]
}

func NewSkillService(db *gorm.DB, log *zap.Logger) *SkillService {
	return &SkillService{
		Crud: newCrud[models.Skill](db, log, "skills", "", skillColumns),
	}
}

// CreateFromRequest rejects duplicate names before touching the unique index
// so the caller gets a stable conflict message.
func (s *SkillService) CreateFromRequest(ctx context.Context, req types.CreateSkillRequest) (*models.Skill, error) {
	var existing models.Skill
	err := s.db.WithContext(ctx).Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		return nil, conflict("already in table, please try another name")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.Create(ctx, &models.Skill{Name: req.Name, Category: req.Category})
}
