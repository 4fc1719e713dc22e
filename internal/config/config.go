// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/olegiv/ocms-themekit/internal/store"
	"github.com/olegiv/ocms-themekit/internal/themeopt"
	"github.com/olegiv/ocms-themekit/internal/util"
)

// Config holds the themekit configuration loaded from environment variables.
type Config struct {
	Env       string `env:"THEMEKIT_ENV" envDefault:"development"`
	LogLevel  string `env:"THEMEKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"THEMEKIT_LOG_FORMAT" envDefault:"text"` // text or json

	// Settings store
	Store       string `env:"THEMEKIT_STORE" envDefault:"memory"` // memory, redis, sqlite, mysql
	DBPath      string `env:"THEMEKIT_DB_PATH" envDefault:"./data/themekit.db"`
	MySQLDSN    string `env:"THEMEKIT_MYSQL_DSN"`
	RedisURL    string `env:"THEMEKIT_REDIS_URL"`
	RedisPrefix string `env:"THEMEKIT_REDIS_PREFIX" envDefault:"themekit:"`

	// Theme defaults
	ThemeSlug     string `env:"THEMEKIT_THEME_SLUG" envDefault:"default"`
	DefaultPreset string `env:"THEMEKIT_DEFAULT_PRESET" envDefault:"modern"`
}

// IsDevelopment returns true if running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// StoreOptions converts the config into settings store options.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Type:        c.Store,
		DBPath:      c.DBPath,
		MySQLDSN:    c.MySQLDSN,
		RedisURL:    c.RedisURL,
		RedisPrefix: c.RedisPrefix,
	}
}

// Load parses environment variables and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.Store {
	case store.TypeMemory:
	case store.TypeSQLite:
		if cfg.DBPath == "" {
			return nil, fmt.Errorf("THEMEKIT_DB_PATH is required for the sqlite store")
		}
	case store.TypeMySQL:
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("THEMEKIT_MYSQL_DSN is required for the mysql store")
		}
	case store.TypeRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("THEMEKIT_REDIS_URL is required for the redis store")
		}
	default:
		return nil, fmt.Errorf("THEMEKIT_STORE must be one of memory, redis, sqlite, mysql; got %q", cfg.Store)
	}

	if !themeopt.IsValidPreset(cfg.DefaultPreset) {
		return nil, fmt.Errorf("THEMEKIT_DEFAULT_PRESET: %s", themeopt.ErrorMessage("unknown_preset", cfg.DefaultPreset))
	}

	if !util.IsValidSlug(cfg.ThemeSlug) {
		return nil, fmt.Errorf("THEMEKIT_THEME_SLUG %q is not a valid slug", cfg.ThemeSlug)
	}

	return cfg, nil
}
