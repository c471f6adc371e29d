package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that provide flag defaults.
const (
	EnvDB      = "MEMORIZE_DB"
	EnvConfig  = "MEMORIZE_CONFIG"
	EnvImages  = "MEMORIZE_IMAGES"
	EnvSSHAddr = "MEMORIZE_SSH_ADDR"
	EnvFPS     = "MEMORIZE_FPS"
	EnvSound   = "MEMORIZE_SOUND_FILE"
	EnvLog     = "MEMORIZE_LOG_FILE"
)

// LoadEnv loads variables from .env files into the process environment.
// Variables already set are not overridden. A missing file is not an error.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		godotenv.Load() //nolint:errcheck
		return
	}
	for _, f := range files {
		godotenv.Load(f) //nolint:errcheck
	}
}

// GetEnv returns the value of key or fallback when unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt returns key parsed as an int or fallback when unset or invalid.
func GetEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
