package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/driverdesk/internal/auth"
	"github.com/dmitrijs2005/driverdesk/internal/cryptox"
	"github.com/dmitrijs2005/driverdesk/internal/photo"
	"github.com/dmitrijs2005/driverdesk/internal/session"
)

// DefaultPasswordHash is the sha256 digest of the built-in inspector password.
const DefaultPasswordHash = "98fe442255035a1459bb5b86fda03d7c34c23d512b1b5bf3a5ecb7a802601895"

// Config holds runtime settings for the driverdesk CLI.
//
// Durations are time.Duration values; MaxPhotoSize is in bytes.
type Config struct {
	Username      string
	PasswordHash  string
	HashAlgorithm string

	MaxAttempts       int
	LockDuration      time.Duration
	InactivityTimeout time.Duration

	MaxPhotoSize  int64
	RequireCities bool

	LogLevel  string
	LogFormat string
	LogFile   string
}

// LoadDefaults populates c with the built-in settings.
func (c *Config) LoadDefaults() {
	c.Username = "inspector"
	c.PasswordHash = DefaultPasswordHash
	c.HashAlgorithm = cryptox.AlgorithmSHA256
	c.MaxAttempts = auth.DefaultMaxAttempts
	c.LockDuration = auth.DefaultLockDuration
	c.InactivityTimeout = session.DefaultInactivityTimeout
	c.MaxPhotoSize = photo.DefaultMaxSize
	c.RequireCities = false
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.LogFile = ""
}

// LoadConfig constructs a Config from defaults, then overlays the
// environment (including a .env file), the config file and finally the
// command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFile(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
