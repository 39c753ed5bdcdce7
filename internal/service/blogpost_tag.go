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

var blogPostTagColumns = map[string]string{
	"tag_id": "tag_id",
}

// BlogPostTagService handles the post-to-tag join rows, keyed by the
// (post, tag) pair and scoped by the post id from the route.
type BlogPostTagService struct {
	Crud[models.BlogPostTag]
	cache *cache.Cache
}

func NewBlogPostTagService(db *gorm.DB, log *zap.Logger, c *cache.Cache) *BlogPostTagService {
	return &BlogPostTagService{
		Crud:  newCrud[models.BlogPostTag](db, log, "blog-post-tags", "post_id", blogPostTagColumns, "Tag"),
		cache: c,
	}
}

// Tag changes show up in public slug reads, so they flush the cache the same
// way direct post mutations do.
func (s *BlogPostTagService) flush() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

func (s *BlogPostTagService) GetByPair(ctx context.Context, postID, tagID uuid.UUID) (*models.BlogPostTag, error) {
	var row models.BlogPostTag
	err := s.db.WithContext(ctx).
		Preload("Tag").
		Where("post_id = ? AND tag_id = ?", postID, tagID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *BlogPostTagService) CreateFromRequest(ctx context.Context, postID uuid.UUID, req types.CreateBlogPostTagRequest) (*models.BlogPostTag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).Where("id = ?", req.TagID).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("tag not found")
		}
		return nil, err
	}

	row := models.BlogPostTag{
		PostID: postID,
		TagID:  req.TagID,
	}
	if _, err := s.Create(ctx, &row); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, conflict("this tag is already linked to the post")
		}
		return nil, err
	}
	s.flush()
	return s.GetByPair(ctx, postID, req.TagID)
}

func (s *BlogPostTagService) DeleteByPair(ctx context.Context, postID, tagID uuid.UUID) (*models.BlogPostTag, error) {
	var row models.BlogPostTag
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND tag_id = ?", postID, tagID).
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
	s.flush()
	s.log.Info("deleted record", zap.String("entity", "blog-post-tags"), zap.String("tag_id", tagID.String()))
	return &row, nil
}

// DeleteBulk removes links by tag id within the post's scope; tag ids linked
// to other posts are skipped silently.
func (s *BlogPostTagService) DeleteBulk(ctx context.Context, tagIDs []uuid.UUID, postID uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("post_id = ? AND tag_id IN ?", postID, tagIDs).
		Delete(&models.BlogPostTag{})
	if res.Error != nil {
		return 0, res.Error
	}
	s.flush()
	s.log.Info("bulk deleted records",
		zap.String("entity", "blog-post-tags"),
		zap.Int("requested", len(tagIDs)),
		zap.Int64("deleted", res.RowsAffected))
	return res.RowsAffected, nil
}
