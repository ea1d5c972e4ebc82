package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tableside/entity"
)

// ConnectDB opens the database chosen by DB_DRIVER. The handle is passed
// down explicitly; there is no package-level singleton.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.PostgresHost, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresPort,
		)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Table{},
		&entity.Category{}, &entity.MenuItem{}, &entity.MenuItemOption{}, &entity.OptionChoice{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemChoice{},
	)
}
