package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Skill struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Category  string    `gorm:"size:100" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ProfileSkill links a skill to a profile with a proficiency level. The level
// is bounded 1..10.
type ProfileSkill struct {
	ID               uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ProfileID        uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_profile_skill" json:"profile_id"`
	SkillID          uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_profile_skill" json:"skill_id"`
	ProficiencyLevel int       `gorm:"not null;check:proficiency_level >= 1 AND proficiency_level <= 10" json:"proficiency_level"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

func (ps *ProfileSkill) BeforeCreate(tx *gorm.DB) error {
	if ps.ID == uuid.Nil {
		ps.ID = uuid.New()
	}
	return nil
}

type ProjectSkill struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_project_skill" json:"project_id"`
	SkillID   uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_project_skill" json:"skill_id"`
	CreatedAt time.Time `json:"created_at"`

	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

func (ps *ProjectSkill) BeforeCreate(tx *gorm.DB) error {
	if ps.ID == uuid.Nil {
		ps.ID = uuid.New()
	}
	return nil
}
