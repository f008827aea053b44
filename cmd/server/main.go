package main

import (
	"log"
	"os"

	"github.com/SAP-F-2025/fieldvalidation/internal/config"
	"github.com/SAP-F-2025/fieldvalidation/internal/handlers"
	"github.com/SAP-F-2025/fieldvalidation/internal/importer"
	"github.com/SAP-F-2025/fieldvalidation/internal/models"
	"github.com/SAP-F-2025/fieldvalidation/internal/utils"
	"github.com/SAP-F-2025/fieldvalidation/pkg"
	"github.com/SAP-F-2025/fieldvalidation/pkg/response"
	"github.com/SAP-F-2025/fieldvalidation/pkg/validator"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := utils.NewLogger(os.Stdout, cfg.Environment, cfg.LogLevel)

	v := validator.New()
	if err := models.RegisterValidators(v); err != nil {
		logger.LogError(err, "Failed to register validators")
		os.Exit(1)
	}

	db, err := pkg.InitDatabase(cfg, v, utils.ToSlogLogger(logger))
	if err != nil {
		logger.LogError(err, "Failed to initialize database")
		os.Exit(1)
	}
	if err := db.AutoMigrate(&models.Listing{}); err != nil {
		logger.LogError(err, "Failed to migrate database")
		os.Exit(1)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), utils.LoggerMiddleware(logger), response.ErrorMiddleware(utils.ToSlogLogger(logger)))

	handlers.NewHandlerManager(db, importer.NewImporter(v, logger), logger).SetupRoutes(router)

	logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.LogError(err, "Server stopped")
		os.Exit(1)
	}
}
