package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/types"
)

var fileColumns = map[string]string{
	"filename":      "filename",
	"original_name": "original_name",
	"mime_type":     "mime_type",
	"path":          "path",
}

// FileService handles uploaded-file metadata, scoped by the owning profile id.
type FileService struct {
	Crud[models.File]
}

func NewFileService(db *gorm.DB, log *zap.Logger) *FileService {
	return &FileService{
		Crud: newCrud[models.File](db, log, "files", "profile_id", fileColumns),
	}
}

func (s *FileService) CreateFromRequest(ctx context.Context, profileID uuid.UUID, req types.CreateFileRequest) (*models.File, error) {
	file := models.File{
		ProfileID:    profileID,
		Filename:     req.Filename,
		OriginalName: req.OriginalName,
		MimeType:     req.MimeType,
		Size:         req.Size,
		Path:         req.Path,
	}
	return s.Create(ctx, &file)
}
