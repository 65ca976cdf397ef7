package storage

import (
	"linkhop/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB, log *zap.Logger) {
	if err := AutoMigrate(db); err != nil {
		log.Fatal("Database migration failed", zap.Error(err))
	}
	log.Info("Database migration completed")
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Domain{},
		&models.Link{},
		&models.ClickEvent{},
		&models.RefreshToken{},
	)
}
