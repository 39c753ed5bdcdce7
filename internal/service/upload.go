package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-cms-backend/config"
	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/types"
)

// Storage is the blob-store collaborator behind the upload endpoint.
type Storage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// S3Storage stores uploads in the configured S3 bucket.
type S3Storage struct {
	cfg *config.S3Config
}

func NewS3Storage(cfg *config.S3Config) *S3Storage {
	return &S3Storage{cfg: cfg}
}

func (s *S3Storage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.cfg.BucketName, key), nil
}

// UploadService pushes file bytes to storage and records a File row for the
// owning profile.
type UploadService struct {
	storage Storage
	files   *FileService
	log     *zap.Logger
}

func NewUploadService(storage Storage, files *FileService, log *zap.Logger) *UploadService {
	return &UploadService{
		storage: storage,
		files:   files,
		log:     log,
	}
}

// Enabled reports whether a storage backend is configured.
func (s *UploadService) Enabled() bool {
	return s.storage != nil
}

func (s *UploadService) Upload(ctx context.Context, profileID uuid.UUID, originalName, contentType string, data []byte) (*models.File, error) {
	if s.storage == nil {
		return nil, notFound("file storage is not configured")
	}

	key := fmt.Sprintf("uploads/%s%s", uuid.New(), filepath.Ext(originalName))
	url, err := s.storage.Put(ctx, key, contentType, data)
	if err != nil {
		return nil, err
	}

	s.log.Info("uploaded file",
		zap.String("key", key),
		zap.String("original_name", originalName),
		zap.Int("size", len(data)))

	return s.files.CreateFromRequest(ctx, profileID, types.CreateFileRequest{
		Filename:     key,
		OriginalName: originalName,
		MimeType:     contentType,
		Size:         int64(len(data)),
		Path:         url,
	})
}
