package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"venue_booking/config"
	"venue_booking/model"
)

// Connect opens Postgres and migrates the holds table. The orders table
// belongs to checkout and is only migrated when demo data is seeded.
func Connect(cfg config.App) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Println("Connection Opened to Database")

	if err := db.AutoMigrate(migrationModels(cfg.SeedDemo)...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	log.Println("Database Migrated")

	if cfg.SeedDemo {
		SeedData(db)
	}
	return db, nil
}

func migrationModels(seedDemo bool) []interface{} {
	if seedDemo {
		return []interface{}{&model.Order{}, &model.Hold{}}
	}
	return []interface{}{&model.Hold{}}
}
