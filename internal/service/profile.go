package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/types"
)

var profileColumns = map[string]string{
	"name":     "name",
	"title":    "title",
	"location": "location",
	"gender":   "gender",
	"about":    "about",
}

// ProfileService handles the caller's profile, scoped by the owning user id.
type ProfileService struct {
	Crud[models.Profile]
}

func NewProfileService(db *gorm.DB, log *zap.Logger) *ProfileService {
	return &ProfileService{
		Crud: newCrud[models.Profile](db, log, "profile", "user_id", profileColumns,
			"Skills.Skill", "Contacts"),
	}
}

// GetByUserID resolves a caller's profile with its full relation graph. Every
// profile-scoped handler goes through this; a missing profile is an
// authorization failure, not a 404.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).
		Preload("Skills.Skill").
		Preload("Contacts").
		Preload("Projects.Skills.Skill").
		Preload("BlogPosts.Tags.Tag").
		Preload("Files").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, unauthorized("you are not authorized to get this record")
		}
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) CreateFromRequest(ctx context.Context, userID uuid.UUID, req types.CreateProfileRequest) (*models.Profile, error) {
	profile := models.Profile{
		UserID:     userID,
		Name:       req.Name,
		Title:      req.Title,
		Telephone:  req.Telephone,
		Location:   req.Location,
		Gender:     models.Gender(req.Gender),
		About:      req.About,
		ResumeURL:  req.ResumeURL,
		WebsiteURL: req.WebsiteURL,
		ImageURL:   req.ImageURL,
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	created, err := s.Create(ctx, &profile)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, conflict("a profile already exists for this account")
		}
		return nil, err
	}
	return created, nil
}
