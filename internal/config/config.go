package config

import (
	"os"
	"strings"
)

const (
	defaultAddr      = ":8080"
	defaultDSN       = "artworks.db"
	defaultUploadDir = "uploads/images"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Addr        string // HTTP listen address
	DatabaseDSN string // postgres URL or path to a sqlite file
	UploadDir   string // directory for artwork image files
}

func Load() *Config {
	return &Config{
		Addr:        getEnv("HTTP_ADDR", defaultAddr),
		DatabaseDSN: getEnv("DATABASE_URL", defaultDSN),
		UploadDir:   getEnv("UPLOAD_DIR", defaultUploadDir),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
