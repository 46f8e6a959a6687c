package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cropwise/entities"
)

// Open uses Postgres when dsn is set, else the SQLite file at path.
func Open(dsn, path string) *gorm.DB {
	if dsn != "" {
		log.Println("[db] using postgres")
		return OpenPostgres(dsn)
	}
	log.Printf("[db] using sqlite %s", path)
	return OpenSQLite(path)
}

func OpenPostgres(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}

// OpenInMemory returns a migrated private database pinned to one connection,
// so every query sees the same in-memory store.
func OpenInMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open memory sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.UserProfile{},
		&entities.Farm{},
		&entities.FarmRecord{},
		&entities.FarmActivity{},
		&entities.FarmProduction{},
		&entities.InventoryItem{},
		&entities.GrowthEntry{},
		&entities.YieldPrediction{},
		&entities.WeatherSnapshot{},
		&entities.ChatMessage{},
		&entities.MarketPrice{},
		&entities.PriceTrend{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
