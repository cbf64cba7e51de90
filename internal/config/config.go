// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultMaxUploadBytes matches the 32 MiB cap of the imgbb upload API.
const DefaultMaxUploadBytes int64 = 32 << 20

// ErrMissing is wrapped by Load when a required variable is absent.
var ErrMissing = errors.New("required configuration missing")

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// Accepted values for the "key" request parameter.
	APIKeys []string

	MaxUploadBytes int64

	// Object storage (AWS S3 by default, any S3-compatible endpoint works)
	StorageBucket       string
	StorageRegion       string
	StorageEndpoint     string
	StorageAccessKey    string
	StorageSecretKey    string
	StorageUseSSL       bool
	StoragePublicBase   string // overrides the virtual-hosted URL, e.g. "http://localhost:9000/images"
	StoragePublicPolicy bool

	LogLevel string
	LogPath  string
}

// Load reads configuration from a .env file (if present) and environment variables.
// It returns an error naming every required variable that is unset.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),

		APIKeys: splitKeys(os.Getenv("API_KEYS")),

		StorageBucket:       os.Getenv("S3_BUCKET"),
		StorageRegion:       os.Getenv("S3_REGION"),
		StorageEndpoint:     getEnv("S3_ENDPOINT", "s3.amazonaws.com"),
		StorageAccessKey:    os.Getenv("S3_ACCESS_KEY"),
		StorageSecretKey:    os.Getenv("S3_SECRET_KEY"),
		StorageUseSSL:       getEnv("S3_USE_SSL", "true") == "true",
		StoragePublicBase:   os.Getenv("S3_PUBLIC_BASE"),
		StoragePublicPolicy: getEnv("S3_PUBLIC_POLICY", "false") == "true",

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogPath:  os.Getenv("LOG_PATH"),
	}

	maxBytes, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", strconv.FormatInt(DefaultMaxUploadBytes, 10)), 10, 64)
	if err != nil || maxBytes <= 0 {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES %q", os.Getenv("MAX_UPLOAD_BYTES"))
	}
	cfg.MaxUploadBytes = maxBytes

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) validate() error {
	var missing []string
	if c.StorageBucket == "" {
		missing = append(missing, "S3_BUCKET")
	}
	if c.StorageRegion == "" {
		missing = append(missing, "S3_REGION")
	}
	if len(c.APIKeys) == 0 {
		missing = append(missing, "API_KEYS")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissing, strings.Join(missing, ", "))
	}
	return nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
