package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMan   Gender = "MAN"
	GenderWoman Gender = "WOMAN"
	GenderOther Gender = "OTHER"
)

type Profile struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID     uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Name       string    `gorm:"size:50;not null" json:"name"`
	Title      string    `gorm:"size:50;not null" json:"title"`
	Telephone  string    `gorm:"size:15" json:"telephone"`
	Location   string    `gorm:"size:100" json:"location"`
	Age        int       `json:"age"`
	Gender     Gender    `gorm:"type:varchar(8)" json:"gender"`
	About      string    `gorm:"type:text" json:"about"`
	ResumeURL  string    `gorm:"size:255" json:"resume_url"`
	WebsiteURL string    `gorm:"size:255" json:"website_url"`
	ImageURL   string    `gorm:"size:255" json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Skills    []ProfileSkill `gorm:"foreignKey:ProfileID" json:"skills,omitempty"`
	Projects  []Project      `gorm:"foreignKey:ProfileID" json:"projects,omitempty"`
	BlogPosts []BlogPost     `gorm:"foreignKey:ProfileID" json:"blog_posts,omitempty"`
	Contacts  []Contact      `gorm:"foreignKey:ProfileID" json:"contacts,omitempty"`
	Files     []File         `gorm:"foreignKey:ProfileID" json:"files,omitempty"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Contact struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"profile_id"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	Value     string    `gorm:"size:255;not null" json:"value"`
	IsPublic  bool      `gorm:"not null;default:true" json:"is_public"`
	Icon      string    `gorm:"size:100;not null;default:'ic:sharp-phone'" json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type File struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ProfileID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"profile_id"`
	Filename     string    `gorm:"size:255;not null" json:"filename"`
	OriginalName string    `gorm:"size:255;not null" json:"original_name"`
	MimeType     string    `gorm:"size:100;not null" json:"mime_type"`
	Size         int64     `gorm:"not null" json:"size"`
	Path         string    `gorm:"size:512;not null" json:"path"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
