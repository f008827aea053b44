package postgres

import (
	"context"

	"github.com/SAP-F-2025/fieldvalidation/internal/models"
	"github.com/SAP-F-2025/fieldvalidation/internal/repositories"
	"gorm.io/gorm"
)

type ListingPostgreSQL struct {
	db *gorm.DB
}

func NewListingPostgreSQL(db *gorm.DB) repositories.ListingRepository {
	return &ListingPostgreSQL{db: db}
}

func (l *ListingPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return l.db
}

func (l *ListingPostgreSQL) Create(ctx context.Context, tx *gorm.DB, listing *models.Listing) error {
	return l.getDB(tx).WithContext(ctx).Create(listing).Error
}

func (l *ListingPostgreSQL) CreateBatch(ctx context.Context, tx *gorm.DB, listings []*models.Listing) error {
	if len(listings) == 0 {
		return nil
	}
	return l.getDB(tx).WithContext(ctx).Create(&listings).Error
}

func (l *ListingPostgreSQL) Update(ctx context.Context, tx *gorm.DB, listing *models.Listing) error {
	return l.getDB(tx).WithContext(ctx).Save(listing).Error
}
