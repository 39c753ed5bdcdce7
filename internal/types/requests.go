package types

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// BulkDeleteRequest carries the id list for delete-by-id-list endpoints.
type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

type CreateProfileRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=50"`
	Title      string `json:"title" binding:"required,min=2,max=50"`
	Telephone  string `json:"telephone" binding:"required,min=10,max=15"`
	Location   string `json:"location" binding:"required,min=2,max=100"`
	Age        *int   `json:"age" binding:"required,gte=0,lte=120"`
	Gender     string `json:"gender" binding:"required,oneof=MAN WOMAN OTHER"`
	About      string `json:"about" binding:"omitempty,min=5,max=1000"`
	ResumeURL  string `json:"resume_url" binding:"omitempty,url"`
	WebsiteURL string `json:"website_url" binding:"omitempty,url"`
	ImageURL   string `json:"image_url" binding:"omitempty,url"`
}

type UpdateProfileRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=50"`
	Title      *string `json:"title" binding:"omitempty,min=2,max=50"`
	Telephone  *string `json:"telephone" binding:"omitempty,min=10,max=15"`
	Location   *string `json:"location" binding:"omitempty,min=2,max=100"`
	Age        *int    `json:"age" binding:"omitempty,gte=0,lte=120"`
	Gender     *string `json:"gender" binding:"omitempty,oneof=MAN WOMAN OTHER"`
	About      *string `json:"about" binding:"omitempty,min=5,max=1000"`
	ResumeURL  *string `json:"resume_url" binding:"omitempty,url"`
	WebsiteURL *string `json:"website_url" binding:"omitempty,url"`
	ImageURL   *string `json:"image_url" binding:"omitempty,url"`
}

// Updates returns the set fields as gorm column updates.
func (r UpdateProfileRequest) Updates() map[string]any {
	u := map[string]any{}
	setString(u, "name", r.Name)
	setString(u, "title", r.Title)
	setString(u, "telephone", r.Telephone)
	setString(u, "location", r.Location)
	if r.Age != nil {
		u["age"] = *r.Age
	}
	setString(u, "gender", r.Gender)
	setString(u, "about", r.About)
	setString(u, "resume_url", r.ResumeURL)
	setString(u, "website_url", r.WebsiteURL)
	setString(u, "image_url", r.ImageURL)
	return u
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required,min=1"`
	Slug        string `json:"slug" binding:"required,min=1"`
	Description string `json:"description"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	GithubURL   string `json:"github_url" binding:"omitempty,url"`
	LiveURL     string `json:"live_url" binding:"omitempty,url"`
	IsFeatured  bool   `json:"is_featured"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Slug        *string `json:"slug" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
	GithubURL   *string `json:"github_url" binding:"omitempty,url"`
	LiveURL     *string `json:"live_url" binding:"omitempty,url"`
	IsFeatured  *bool   `json:"is_featured"`
}

func (r UpdateProjectRequest) Updates() map[string]any {
	u := map[string]any{}
	setString(u, "title", r.Title)
	setString(u, "slug", r.Slug)
	setString(u, "description", r.Description)
	setString(u, "content", r.Content)
	setString(u, "image_url", r.ImageURL)
	setString(u, "github_url", r.GithubURL)
	setString(u, "live_url", r.LiveURL)
	if r.IsFeatured != nil {
		u["is_featured"] = *r.IsFeatured
	}
	return u
}

type CreateSkillRequest struct {
	Name     string `json:"name" binding:"required,min=1"`
	Category string `json:"category"`
}

type UpdateSkillRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Category *string `json:"category"`
}

func (r UpdateSkillRequest) Updates() map[string]any {
	u := map[string]any{}
	setString(u, "name", r.Name)
	setString(u, "category", r.Category)
	return u
}

type CreateBlogPostRequest struct {
	Title       string      `json:"title" binding:"required,min=1"`
	Slug        string      `json:"slug" binding:"required,min=1"`
	Content     string      `json:"content"`
	Excerpt     string      `json:"excerpt"`
	Status      string      `json:"status" binding:"omitempty,oneof=draft published"`
	PublishedAt *time.Time  `json:"published_at"`
	Tags        []uuid.UUID `json:"tags"`
}

type UpdateBlogPostRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Slug        *string    `json:"slug" binding:"omitempty,min=1"`
	Content     *string    `json:"content"`
	Excerpt     *string    `json:"excerpt"`
	Status      *string    `json:"status" binding:"omitempty,oneof=draft published"`
	PublishedAt *time.Time `json:"published_at"`
}

func (r UpdateBlogPostRequest) Updates() map[string]any {
	u := map[string]any{}
	setString(u, "title", r.Title)
	setString(u, "slug", r.Slug)
	setString(u, "content", r.Content)
	setString(u, "excerpt", r.Excerpt)
	setString(u, "status", r.Status)
	if r.PublishedAt != nil {
		u["published_at"] = *r.PublishedAt
	}
	return u
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

type UpdateTagRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1"`
}

func (r UpdateTagRequest) Updates() map[string]any {
	u := map[string]any{}
	setString(u, "name", r.Name)
	return u
}

type CreateContactRequest struct {
	Type     string `json:"type" binding:"required,min=2,max=50"`
	Value    string `json:"value" binding:"required,min=1"`
	IsPublic *bool  `json:"is_public"`
	Icon     string `json:"icon"`
}

type UpdateContactRequest struct {
	Type     *string `json:"type" binding:"omitempty,min=2,max=50"`
	Value    *string `json:"value" binding:"omitempty,min=1"`
	IsPublic *bool   `json:"is_public"`
	Icon     *string `json:"icon"`
}

func (r UpdateContactRequest) Updates() map[string]any {
	u := map[string]any{}
	setString(u, "type", r.Type)
	setString(u, "value", r.Value)
	if r.IsPublic != nil {
		u["is_public"] = *r.IsPublic
	}
	setString(u, "icon", r.Icon)
	return u
}

type CreateFileRequest struct {
	Filename     string `json:"filename" binding:"required"`
	OriginalName string `json:"original_name" binding:"required"`
	MimeType     string `json:"mime_type" binding:"required"`
	Size         int64  `json:"size" binding:"required,gt=0"`
	Path         string `json:"path" binding:"required"`
}

type UpdateFileRequest struct {
	Filename     *string `json:"filename" binding:"omitempty,min=1"`
	OriginalName *string `json:"original_name" binding:"omitempty,min=1"`
	MimeType     *string `json:"mime_type" binding:"omitempty,min=1"`
	Size         *int64  `json:"size" binding:"omitempty,gt=0"`
	Path         *string `json:"path" binding:"omitempty,min=1"`
}

func (r UpdateFileRequest) Updates() map[string]any {
	u := map[string]any{}
	setString(u, "filename", r.Filename)
	setString(u, "original_name", r.OriginalName)
	setString(u, "mime_type", r.MimeType)
	if r.Size != nil {
		u["size"] = *r.Size
	}
	setString(u, "path", r.Path)
	return u
}

type CreateProfileSkillRequest struct {
	SkillID          uuid.UUID `json:"skill_id" binding:"required"`
	ProficiencyLevel int       `json:"proficiency_level" binding:"required,gte=1,lte=10"`
}

type UpdateProfileSkillRequest struct {
	ProficiencyLevel int `json:"proficiency_level" binding:"required,gte=1,lte=10"`
}

type CreateProjectSkillRequest struct {
	SkillID uuid.UUID `json:"skill_id" binding:"required"`
}

type CreateBlogPostTagRequest struct {
	TagID uuid.UUID `json:"tag_id" binding:"required"`
}

func setString(u map[string]any, col string, v *string) {
	if v != nil {
		u[col] = *v
	}
}
