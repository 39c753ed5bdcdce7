package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort     string
	Environment    string
	FrontendOrigin string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (optional, enables login rate limiting)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Auth configuration
	JWTSecret string
	JWTExpiry time.Duration
	SecretKey string

	// Storage configuration
	S3Bucket  string
	AWSRegion string
}

// Load reads configuration from the environment, honoring a local .env file
// when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:     envOr("PORT", "8080"),
		Environment:    envOr("APP_ENV", "development"),
		FrontendOrigin: envOr("FRONTEND_ORIGIN", "http://localhost:5173"),

		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envOr("DB_NAME", "portfolio"),
		DBSSLMode:  envOr("DB_SSL_MODE", "disable"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envOrInt("REDIS_DB", 0),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpiry: time.Duration(envOrInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		SecretKey: os.Getenv("SECRET_KEY"),

		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),
		AWSRegion: envOr("AWS_REGION", "us-east-1"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.IsProduction() && cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required in production")
	}

	return cfg, nil
}

// IsProduction reports whether the app runs in production mode, which enables
// the shared-secret header gate.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
