package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ProfileID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"profile_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Content     string    `gorm:"type:text" json:"content"`
	ImageURL    string    `gorm:"size:255" json:"image_url"`
	GithubURL   string    `gorm:"size:255" json:"github_url"`
	LiveURL     string    `gorm:"size:255" json:"live_url"`
	IsFeatured  bool      `gorm:"not null;default:false" json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Skills []ProjectSkill `gorm:"foreignKey:ProjectID" json:"skills"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
