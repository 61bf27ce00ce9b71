package database

import (
	"fitnessforge/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func MigrateDatabase(db *gorm.DB) error {
	log.Println("running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Measurement{},
		&models.Workout{},
	)
	if err != nil {
		log.Errorf("error during migration: %s", err)
		return err
	}

	log.Println("database migrations completed successfully")
	return nil
}
