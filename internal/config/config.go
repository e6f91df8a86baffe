package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds CLI defaults. Flags override every field.
type Config struct {
	LogLevel  string
	LogFormat string
	Model     string
	Format    string
	Strict    bool
	Validate  bool
	MaxBytes  int64
}

// Load reads APIMODEL_* environment variables. When envFile is non-empty and
// exists it is loaded first; variables already set in the environment win.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return &Config{
		LogLevel:  getEnv("APIMODEL_LOG_LEVEL", "info"),
		LogFormat: getEnv("APIMODEL_LOG_FORMAT", "text"),
		Model:     getEnv("APIMODEL_MODEL", "List"),
		Format:    strings.ToLower(getEnv("APIMODEL_OUTPUT_FORMAT", "json")),
		Strict:    getEnvBool("APIMODEL_STRICT", false),
		Validate:  getEnvBool("APIMODEL_VALIDATE", false),
		MaxBytes:  getEnvInt64("APIMODEL_MAX_BYTES", 0),
	}, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
