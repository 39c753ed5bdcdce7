package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/types"
)

var tagColumns = map[string]string{
	"name": "name",
}

// TagService handles the global tag catalog, unscoped like skills.
type TagService struct {
	Crud[models.Tag]
}

func NewTagService(db *gorm.DB, log *zap.Logger) *TagService {
	return &TagService{
		Crud: newCrud[models.Tag](db, log, "tags", "", tagColumns),
	}
}

func (s *TagService) CreateFromRequest(ctx context.Context, req types.CreateTagRequest) (*models.Tag, error) {
	var existing models.Tag
	err := s.db.WithContext(ctx).Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		return nil, conflict("already in table, please try another name")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.Create(ctx, &models.Tag{Name: req.Name})
}
