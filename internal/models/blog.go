package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

type BlogPost struct {
	ID          uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	ProfileID   uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"profile_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Slug        string     `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Content     string     `gorm:"type:text" json:"content"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Status      PostStatus `gorm:"type:varchar(16);not null;default:'draft'" json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Tags []BlogPostTag `gorm:"foreignKey:PostID" json:"tags"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Tag struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type BlogPostTag struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	PostID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_post_tag" json:"post_id"`
	TagID     uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_post_tag" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`

	Tag *Tag `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}

func (pt *BlogPostTag) BeforeCreate(tx *gorm.DB) error {
	if pt.ID == uuid.Nil {
		pt.ID = uuid.New()
	}
	return nil
}
