package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "DRIVERDESK_"

// dotenvFile is loaded by parseEnv when it exists. Variables already set in
// the process environment are not overridden by it.
var dotenvFile = ".env"

// parseEnv overlays cfg with DRIVERDESK_* environment variables. Malformed
// numeric, boolean or duration values are reported and ignored.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("cannot load env file", "file", dotenvFile, "error", err)
	}

	envString("USERNAME", &cfg.Username)
	envString("PASSWORD_HASH", &cfg.PasswordHash)
	envString("HASH_ALGORITHM", &cfg.HashAlgorithm)
	envInt("MAX_ATTEMPTS", &cfg.MaxAttempts)
	envDuration("LOCK_DURATION", &cfg.LockDuration)
	envDuration("INACTIVITY_TIMEOUT", &cfg.InactivityTimeout)
	envBool("REQUIRE_CITIES", &cfg.RequireCities)
	envString("LOG_LEVEL", &cfg.LogLevel)
	envString("LOG_FORMAT", &cfg.LogFormat)
	envString("LOG_FILE", &cfg.LogFile)
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer, keeping previous value", "key", envPrefix+key, "value", v, "current", *dst)
		return
	}
	*dst = n
}

func envBool(key string, dst *bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean, keeping previous value", "key", envPrefix+key, "value", v, "current", *dst)
		return
	}
	*dst = b
}

func envDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, keeping previous value", "key", envPrefix+key, "value", v, "current", *dst)
		return
	}
	*dst = d
}
