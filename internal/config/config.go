package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/cache"
)

// InitDB opens the Postgres connection from DATABASE_URL, or from the
// individual DB_* variables when no URL is set.
func InitDB(logger *zap.Logger) *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			envOr("DB_HOST", "localhost"),
			envOr("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			envOr("DB_NAME", "invoices"),
			envOr("DB_PORT", "5432"),
			envOr("DB_SSLMODE", "disable"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	return db
}

// ViewCacheOptions reads the redis settings; an unset REDIS_ADDR selects
// the in-memory cache backend.
func ViewCacheOptions() cache.Options {
	db, _ := strconv.Atoi(envOr("REDIS_DB", "0"))
	return cache.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}
}

// AuthConfig holds the session token settings.
type AuthConfig struct {
	Secret string
	Expiry time.Duration
}

func Auth() AuthConfig {
	hours, err := strconv.Atoi(envOr("JWT_EXPIRY_HOURS", "24"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return AuthConfig{
		Secret: envOr("JWT_SECRET", "dev-secret-change-me"),
		Expiry: time.Duration(hours) * time.Hour,
	}
}

// Port returns the HTTP listen port.
func Port() string {
	return envOr("PORT", "8080")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
