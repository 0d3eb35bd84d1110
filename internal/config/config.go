// Package config reads the leasing engine settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabaseDriver string
	DatabaseURL    string
	PictureBackend string
	PicturesDir    string
	S3Bucket       string
	S3Prefix       string
	AWSRegion      string
	LogLevel       slog.Level
	DueWindowDays  int
}

// Load reads the configuration, applying defaults for unset variables.
func Load() (Config, error) {
	cfg := Config{
		DatabaseDriver: strings.ToLower(getenv("DATABASE_DRIVER", "sqlite")),
		DatabaseURL:    getenv("DATABASE_URL", "leasing.db"),
		PictureBackend: strings.ToLower(getenv("PICTURE_BACKEND", "dir")),
		PicturesDir:    getenv("PICTURES_DIR", "property_pictures"),
		S3Bucket:       os.Getenv("S3_BUCKET_NAME"),
		S3Prefix:       os.Getenv("S3_PREFIX"),
		AWSRegion:      os.Getenv("AWS_REGION"),
	}

	switch cfg.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return Config{}, fmt.Errorf("DATABASE_DRIVER must be sqlite or postgres, got %q", cfg.DatabaseDriver)
	}

	switch cfg.PictureBackend {
	case "dir":
	case "s3":
		if cfg.S3Bucket == "" {
			return Config{}, fmt.Errorf("S3_BUCKET_NAME is required when PICTURE_BACKEND=s3")
		}
	default:
		return Config{}, fmt.Errorf("PICTURE_BACKEND must be dir or s3, got %q", cfg.PictureBackend)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	window, err := strconv.Atoi(getenv("DUE_WINDOW_DAYS", "30"))
	if err != nil || window < 0 {
		return Config{}, fmt.Errorf("DUE_WINDOW_DAYS must be a non-negative number of days, got %q", os.Getenv("DUE_WINDOW_DAYS"))
	}
	cfg.DueWindowDays = window

	return cfg, nil
}

// Debug reports whether SQL statements should be logged too.
func (c Config) Debug() bool {
	return c.LogLevel <= slog.LevelDebug
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
