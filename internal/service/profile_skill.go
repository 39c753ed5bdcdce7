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

var profileSkillColumns = map[string]string{
	"skill_id":          "skill_id",
	"proficiency_level": "proficiency_level",
}

// ProfileSkillService handles the profile-to-skill join rows. Lookups and
// mutations are keyed by the (profile, skill) pair rather than the row id.
type ProfileSkillService struct {
	Crud[models.ProfileSkill]
}

func NewProfileSkillService(db *gorm.DB, log *zap.Logger) *ProfileSkillService {
	return &ProfileSkillService{
		Crud: newCrud[models.ProfileSkill](db, log, "profile-skills", "profile_id", profileSkillColumns, "Skill"),
	}
}

func (s *ProfileSkillService) GetByPair(ctx context.Context, profileID, skillID uuid.UUID) (*models.ProfileSkill, error) {
	var row models.ProfileSkill
	err := s.db.WithContext(ctx).
		Preload("Skill").
		Where("profile_id = ? AND skill_id = ?", profileID, skillID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *ProfileSkillService) CreateFromRequest(ctx context.Context, profileID uuid.UUID, req types.CreateProfileSkillRequest) (*models.ProfileSkill, error) {
	var skill models.Skill
	if err := s.db.WithContext(ctx).Where("id = ?", req.SkillID).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("skill not found")
		}
		return nil, err
	}

	row := models.ProfileSkill{
		ProfileID:        profileID,
		SkillID:          req.SkillID,
		ProficiencyLevel: req.ProficiencyLevel,
	}
	if _, err := s.Create(ctx, &row); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, conflict("this skill is already linked to the profile")
		}
		return nil, err
	}
	return s.GetByPair(ctx, profileID, req.SkillID)
}

func (s *ProfileSkillService) UpdateByPair(ctx context.Context, profileID, skillID uuid.UUID, req types.UpdateProfileSkillRequest) (*models.ProfileSkill, error) {
	var row models.ProfileSkill
	err := s.db.WithContext(ctx).
		Where("profile_id = ? AND skill_id = ?", profileID, skillID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, unauthorized("you are not authorized to update this record")
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&row).Update("proficiency_level", req.ProficiencyLevel).Error; err != nil {
		return nil, err
	}
	s.log.Info("updated record", zap.String("entity", "profile-skills"), zap.String("skill_id", skillID.String()))
	return s.GetByPair(ctx, profileID, skillID)
}

func (s *ProfileSkillService) DeleteByPair(ctx context.Context, profileID, skillID uuid.UUID) (*models.ProfileSkill, error) {
	var row models.ProfileSkill
	err := s.db.WithContext(ctx).
		Where("profile_id = ? AND skill_id = ?", profileID, skillID).
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
	s.log.Info("deleted record", zap.String("entity", "profile-skills"), zap.String("skill_id", skillID.String()))
	return &row, nil
}

// DeleteBulk removes links by skill id within the profile's scope; skill ids
// linked to other profiles are skipped silently.
func (s *ProfileSkillService) DeleteBulk(ctx context.Context, skillIDs []uuid.UUID, profileID uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("profile_id = ? AND skill_id IN ?", profileID, skillIDs).
		Delete(&models.ProfileSkill{})
	if res.Error != nil {
		return 0, res.Error
	}
	s.log.Info("bulk deleted records",
		zap.String("entity", "profile-skills"),
		zap.Int("requested", len(skillIDs)),
		zap.Int64("deleted", res.RowsAffected))
	return res.RowsAffected, nil
}
