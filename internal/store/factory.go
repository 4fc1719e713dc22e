// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store backend types.
const (
	TypeMemory = "memory"
	TypeRedis  = "redis"
	TypeSQLite = "sqlite"
	TypeMySQL  = "mysql"
)

// Options selects and configures a store backend.
type Options struct {
	// Type is one of TypeMemory, TypeRedis, TypeSQLite or TypeMySQL.
	Type string

	// DBPath is the SQLite database file (sqlite only).
	DBPath string

	// MySQLDSN is the go-sql-driver DSN (mysql only).
	MySQLDSN string

	// RedisURL and RedisPrefix configure the redis backend.
	RedisURL    string
	RedisPrefix string

	Logger *slog.Logger
}

// Open creates the store described by opts. SQL backends are migrated
// before being returned.
func Open(opts Options) (Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	switch opts.Type {
	case "", TypeMemory:
		logger.Info("settings store opened", "backend", TypeMemory)
		return NewMemoryStore(), nil

	case TypeRedis:
		ro := DefaultRedisOptions()
		ro.URL = opts.RedisURL
		if opts.RedisPrefix != "" {
			ro.Prefix = opts.RedisPrefix
		}
		s, err := NewRedisStore(ro)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		logger.Info("settings store opened", "backend", TypeRedis, "prefix", ro.Prefix)
		return s, nil

	case TypeSQLite:
		if dir := filepath.Dir(opts.DBPath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating data directory: %w", err)
			}
		}
		db, err := OpenSQLite(opts.DBPath, DefaultDBConfig())
		if err != nil {
			return nil, err
		}
		return openSQL(db, DialectSQLite, logger, "path", opts.DBPath)

	case TypeMySQL:
		db, err := OpenMySQL(opts.MySQLDSN, DefaultDBConfig())
		if err != nil {
			return nil, err
		}
		return openSQL(db, DialectMySQL, logger)

	default:
		return nil, fmt.Errorf("unknown store type: %q", opts.Type)
	}
}

func openSQL(db *sql.DB, dialect string, logger *slog.Logger, attrs ...any) (Store, error) {
	if err := Migrate(db, dialect, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	s, err := NewSQLStore(db, dialect)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("settings store opened", append([]any{"backend", dialect}, attrs...)...)
	return s, nil
}
