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

var blogPostColumns = map[string]string{
	"title":   "title",
	"slug":    "slug",
	"content": "content",
	"excerpt": "excerpt",
	"status":  "status",
}

// BlogPostService handles blog posts, scoped by the owning profile id.
type BlogPostService struct {
	Crud[models.BlogPost]
	cache *cache.Cache
}

func NewBlogPostService(db *gorm.DB, log *zap.Logger, c *cache.Cache) *BlogPostService {
	return &BlogPostService{
		Crud:  newCrud[models.BlogPost](db, log, "blog-posts", "profile_id", blogPostColumns, "Tags.Tag"),
		cache: c,
	}
}

// CreateFromRequest creates the post and attaches any supplied tag ids.
func (s *BlogPostService) CreateFromRequest(ctx context.Context, profileID uuid.UUID, req types.CreateBlogPostRequest) (*models.BlogPost, error) {
	post := models.BlogPost{
		ProfileID:   profileID,
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Status:      models.PostDraft,
		PublishedAt: req.PublishedAt,
		Tags:        []models.BlogPostTag{},
	}
	if req.Status != "" {
		post.Status = models.PostStatus(req.Status)
	}
	if len(req.Tags) > 0 {
		// Every supplied tag id must point at an existing tag.
		var known int64
		if err := s.db.WithContext(ctx).Model(&models.Tag{}).
			Where("id IN ?", req.Tags).Count(&known).Error; err != nil {
			return nil, err
		}
		if known != int64(len(req.Tags)) {
			return nil, notFound("tag not found")
		}
	}
	for _, tagID := range req.Tags {
		post.Tags = append(post.Tags, models.BlogPostTag{TagID: tagID})
	}

	created, err := s.Create(ctx, &post)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, conflict("a blog post with this slug already exists")
		}
		return nil, err
	}
	return s.GetByID(ctx, created.ID, profileID)
}

// GetBySlug is the public read path: not scoped by any owner, nil when absent.
func (s *BlogPostService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	if s.cache != nil {
		if hit, ok := s.cache.Get(slugKey("blog-post", slug)); ok {
			return hit.(*models.BlogPost), nil
		}
	}

	var post models.BlogPost
	err := s.db.WithContext(ctx).
		Preload("Tags.Tag").
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if post.Tags == nil {
		post.Tags = []models.BlogPostTag{}
	}

	s.log.Info("fetched record", zap.String("entity", "blog-posts"), zap.String("slug", slug))
	if s.cache != nil {
		s.cache.Set(slugKey("blog-post", slug), &post, cache.DefaultExpiration)
	}
	return &post, nil
}

func (s *BlogPostService) UpdateFromRequest(ctx context.Context, id, profileID uuid.UUID, req types.UpdateBlogPostRequest) (*models.BlogPost, error) {
	updated, err := s.Update(ctx, id, profileID, req.Updates())
	if err != nil {
		return nil, err
	}
	s.flush()
	return updated, nil
}

func (s *BlogPostService) DeleteByID(ctx context.Context, id, profileID uuid.UUID) (*models.BlogPost, error) {
	deleted, err := s.Delete(ctx, id, profileID)
	if err != nil {
		return nil, err
	}
	s.flush()
	return deleted, nil
}

func (s *BlogPostService) DeleteBulkByIDs(ctx context.Context, ids []uuid.UUID, profileID uuid.UUID) (int64, error) {
	count, err := s.DeleteBulk(ctx, ids, profileID)
	if err != nil {
		return 0, err
	}
	s.flush()
	return count, nil
}

func (s *BlogPostService) flush() {
	if s.cache != nil {
		s.cache.Flush()
	}
}
