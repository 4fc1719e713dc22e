// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

const (
	selectSettingSQL = `SELECT setting_value FROM theme_settings WHERE setting_key = ?`
	deleteSettingSQL = `DELETE FROM theme_settings WHERE setting_key = ?`
	listKeysSQL      = `SELECT setting_key FROM theme_settings WHERE setting_key LIKE ? ESCAPE '!' ORDER BY setting_key`

	upsertSQLite = `INSERT INTO theme_settings (setting_key, setting_value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(setting_key) DO UPDATE SET setting_value = excluded.setting_value, updated_at = CURRENT_TIMESTAMP`

	upsertMySQL = `INSERT INTO theme_settings (setting_key, setting_value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON DUPLICATE KEY UPDATE setting_value = VALUES(setting_value), updated_at = CURRENT_TIMESTAMP`
)

// SQLStore keeps settings in the theme_settings table.
// It owns db and closes it on Close.
type SQLStore struct {
	db        *sql.DB
	upsertSQL string
	closed    atomic.Bool
}

// NewSQLStore wraps a migrated database. dialect is DialectSQLite or DialectMySQL.
func NewSQLStore(db *sql.DB, dialect string) (*SQLStore, error) {
	s := &SQLStore{db: db}
	switch dialect {
	case DialectSQLite:
		s.upsertSQL = upsertSQLite
	case DialectMySQL:
		s.upsertSQL = upsertMySQL
	default:
		return nil, fmt.Errorf("unsupported SQL dialect: %q", dialect)
	}
	return s, nil
}

// Get retrieves a value.
func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	if s.closed.Load() {
		return "", ErrClosed
	}
	var value string
	err := s.db.QueryRowContext(ctx, selectSettingSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

// Set inserts or replaces a value.
func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if _, err := s.db.ExecContext(ctx, s.upsertSQL, key, value); err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}

// Delete removes a key.
func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if _, err := s.db.ExecContext(ctx, deleteSettingSQL, key); err != nil {
		return fmt.Errorf("deleting setting %s: %w", key, err)
	}
	return nil
}

// Keys returns the keys starting with prefix.
func (s *SQLStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx, listKeysSQL, escapeLike(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning setting key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the underlying database.
func (s *SQLStore) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		return s.db.Close()
	}
	return nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike escapes LIKE wildcards so prefixes such as "theme_settings_"
// match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
