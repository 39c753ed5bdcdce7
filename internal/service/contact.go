package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-cms-backend/internal/models"
	"portfolio-cms-backend/internal/types"
)

var contactColumns = map[string]string{
	"type":      "type",
	"value":     "value",
	"icon":      "icon",
	"is_public": "is_public",
}

// ContactService handles contact entries, scoped by the owning profile id.
type ContactService struct {
	Crud[models.Contact]
}

func NewContactService(db *gorm.DB, log *zap.Logger) *ContactService {
	return &ContactService{
		Crud: newCrud[models.Contact](db, log, "contacts", "profile_id", contactColumns),
	}
}

func (s *ContactService) CreateFromRequest(ctx context.Context, profileID uuid.UUID, req types.CreateContactRequest) (*models.Contact, error) {
	contact := models.Contact{
		ProfileID: profileID,
		Type:      req.Type,
		Value:     req.Value,
		IsPublic:  true,
		Icon:      "ic:sharp-phone",
	}
	if req.IsPublic != nil {
		contact.IsPublic = *req.IsPublic
	}
	if req.Icon != "" {
		contact.Icon = req.Icon
	}
	return s.Create(ctx, &contact)
}
