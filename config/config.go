package config

import (
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_pos_super_secret_2024"))

// Load reads the optional .env file and refreshes env-derived values. A
// missing .env is fine; the process environment wins either way.
func Load() {
	if err := godotenv.Load(); err == nil {
		logrus.Info("config: loaded .env")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_pos_super_secret_2024"))
}

// Port returns the HTTP listen port.
func Port() string {
	return getEnv("PORT", "8080")
}

// DBPath returns the sqlite database file path.
func DBPath() string {
	return getEnv("DB_PATH", "restaurant_pos.db")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB opens the sqlite database backing the collection store.
func OpenDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}
