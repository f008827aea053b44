package pkg

import (
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/fieldvalidation/internal/config"
	"github.com/SAP-F-2025/fieldvalidation/pkg/validator"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabase opens postgres and installs the model validation plugin
func InitDatabase(cfg *config.Config, v *validator.Validator, log *slog.Logger) (*gorm.DB, error) {
	return openDatabase(postgres.Open(cfg.DatabaseURL), cfg, v, log)
}

func openDatabase(dialector gorm.Dialector, cfg *config.Config, v *validator.Validator, log *slog.Logger) (*gorm.DB, error) {
	logLevel := logger.Error
	if !cfg.IsProduction() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Use(validator.NewGormPlugin(v, log)); err != nil {
		return nil, fmt.Errorf("failed to install validation plugin: %w", err)
	}

	return db, nil
}
