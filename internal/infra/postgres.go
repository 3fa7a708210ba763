package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tripweaver/internal/config"
	"tripweaver/internal/models/db_models"
	"tripweaver/pkg/logger"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		logger.Get().Fatal("error connecting to database: " + err.Error())
	}

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.HotelBooking{},
		&db_models.FlightBooking{},
		&db_models.SavedItinerary{},
		&db_models.IdempotencyKey{},
	); err != nil {
		logger.Get().Fatal("error migrating database: " + err.Error())
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Get().Error("error getting database instance: " + err.Error())
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Get().Error("error closing database connection: " + err.Error())
	}
}
