package handlers

import (
	"github.com/SAP-F-2025/fieldvalidation/internal/importer"
	"github.com/SAP-F-2025/fieldvalidation/internal/repositories/postgres"
	"github.com/SAP-F-2025/fieldvalidation/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HandlerManager struct {
	listingHandler *ListingHandler
}

func NewHandlerManager(db *gorm.DB, imp *importer.Importer, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		listingHandler: NewListingHandler(postgres.NewListingPostgreSQL(db), imp, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		listings := v1.Group("/listings")
		{
			listings.POST("", hm.listingHandler.CreateListing)
			listings.POST("/import", hm.listingHandler.ImportListings)
		}
	}
}
