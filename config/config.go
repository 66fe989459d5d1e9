package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by DB_DRIVER. MySQL is the production
// default; sqlite exists for local runs without a server.
func InitDB() (*gorm.DB, error) {
	driver := getenv("DB_DRIVER", "mysql")

	switch driver {
	case "sqlite":
		path := getenv("DB_PATH", "pos_backoffice.db")
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			getenv("DB_USER", "root"),
			os.Getenv("DB_PASS"),
			getenv("DB_HOST", "127.0.0.1"),
			getenv("DB_PORT", "3306"),
			getenv("DB_NAME", "pos_backoffice"),
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
