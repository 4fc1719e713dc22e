// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store provides adapters to the key-value settings stores that hold
// per-site theme settings and preset defaults.
package store

import "context"

// Store is a string key-value settings store.
// All implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Lister is implemented by stores that can enumerate keys.
type Lister interface {
	// Keys returns all keys starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Error represents an error type for store operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNotFound indicates the key does not exist.
	ErrNotFound Error = "setting not found"

	// ErrClosed indicates the store has been closed.
	ErrClosed Error = "store closed"
)
