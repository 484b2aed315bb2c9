// Package config handles application configuration from environment
// variables, an optional preferences file, and built-in defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// prefsFile is the JSON preferences file inside the cache directory. The
// filename matches what earlier tooling wrote, so existing setups keep
// their defaults. The core only ever reads it.
const prefsFile = "citybus_config.json"

// Config holds all application configuration.
type Config struct {
	DefaultStop int
	DefaultDay  int
	CacheDir    string
	HTTPTimeout time.Duration
}

// Load builds the configuration. Precedence, lowest to highest: built-in
// defaults, the preferences file, then CITYBUS_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DefaultStop: 214,
		DefaultDay:  5,
		HTTPTimeout: getDurationEnv("CITYBUS_HTTP_TIMEOUT_SECONDS", 10) * time.Second,
	}

	cfg.CacheDir = os.Getenv("CITYBUS_CACHE_DIR")
	if cfg.CacheDir == "" {
		dir, err := defaultCacheDir()
		if err != nil {
			return nil, err
		}
		cfg.CacheDir = dir
	}

	cfg.applyPrefsFile()

	cfg.DefaultStop = getIntEnv("CITYBUS_STOP", cfg.DefaultStop)
	cfg.DefaultDay = getIntEnv("CITYBUS_DAY", cfg.DefaultDay)

	return cfg, nil
}

// Validate checks that required configuration is usable.
func (c *Config) Validate() error {
	if c.DefaultDay < 1 || c.DefaultDay > 7 {
		return fmt.Errorf("default day must be between 1 and 7, got %d", c.DefaultDay)
	}
	if c.CacheDir == "" {
		return errors.New("cache directory must not be empty")
	}
	return nil
}

// applyPrefsFile merges the preferences file over the current defaults. A
// missing file is normal; an unreadable one is a warning, never fatal.
func (c *Config) applyPrefsFile() {
	path := filepath.Join(c.CacheDir, prefsFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: could not read config file %s: %v", path, err)
		}
		return
	}

	var prefs struct {
		Stop *int `json:"stop"`
		Day  *int `json:"day"`
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: could not parse config file %s: %v", path, err)
		return
	}
	if prefs.Stop != nil {
		c.DefaultStop = *prefs.Stop
	}
	if prefs.Day != nil {
		c.DefaultDay = *prefs.Day
	}
}

func defaultCacheDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, "citybus"), nil
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds)
		}
	}
	return time.Duration(defaultSeconds)
}
