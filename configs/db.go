package configs

import (
	"fmt"

	"github.com/abu0717/canteen/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Cafe{}, &entity.Category{}, &entity.MenuItem{}, &entity.Inventory{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.CafeWorker{}, &entity.WorkerRequest{},
		&entity.Feedback{},
		&entity.Advertisement{},
	)
}
