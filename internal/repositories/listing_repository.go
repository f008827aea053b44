package repositories

import (
	"context"

	"github.com/SAP-F-2025/fieldvalidation/internal/models"
	"gorm.io/gorm"
)

// ListingRepository persists listings. Writes go through the gorm
// validation plugin, so a rejected model surfaces as a validation error.
type ListingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, listing *models.Listing) error
	CreateBatch(ctx context.Context, tx *gorm.DB, listings []*models.Listing) error
	Update(ctx context.Context, tx *gorm.DB, listing *models.Listing) error
}
