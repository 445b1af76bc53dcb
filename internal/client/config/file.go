package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/driverdesk/internal/flagx"
	"github.com/dmitrijs2005/driverdesk/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO for config files. Pointer fields distinguish "absent"
// from zero values, so a file only overrides what it mentions.
type FileConfig struct {
	Username          *string         `json:"username" yaml:"username"`
	PasswordHash      *string         `json:"password_hash" yaml:"password_hash"`
	HashAlgorithm     *string         `json:"hash_algorithm" yaml:"hash_algorithm"`
	MaxAttempts       *int            `json:"max_attempts" yaml:"max_attempts"`
	LockDuration      *timex.Duration `json:"lock_duration" yaml:"lock_duration"`
	InactivityTimeout *timex.Duration `json:"inactivity_timeout" yaml:"inactivity_timeout"`
	MaxPhotoSize      *int64          `json:"max_photo_size" yaml:"max_photo_size"`
	RequireCities     *bool           `json:"require_cities" yaml:"require_cities"`
	LogLevel          *string         `json:"log_level" yaml:"log_level"`
	LogFormat         *string         `json:"log_format" yaml:"log_format"`
	LogFile           *string         `json:"log_file" yaml:"log_file"`
}

// parseFile overlays cfg with the file named by -c / -config in args.
// Without the flag nothing happens. Read and decode errors panic; the caller
// should recover if desired.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	set(&cfg.Username, fc.Username)
	set(&cfg.PasswordHash, fc.PasswordHash)
	set(&cfg.HashAlgorithm, fc.HashAlgorithm)
	set(&cfg.MaxAttempts, fc.MaxAttempts)
	set(&cfg.MaxPhotoSize, fc.MaxPhotoSize)
	set(&cfg.RequireCities, fc.RequireCities)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFormat, fc.LogFormat)
	set(&cfg.LogFile, fc.LogFile)
	if fc.LockDuration != nil {
		cfg.LockDuration = fc.LockDuration.Duration
	}
	if fc.InactivityTimeout != nil {
		cfg.InactivityTimeout = fc.InactivityTimeout.Duration
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
