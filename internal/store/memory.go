// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// MemoryStore is a thread-safe in-memory settings store.
// Contents are lost when the process exits.
type MemoryStore struct {
	data   sync.Map
	closed atomic.Bool
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get retrieves a value.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	if s.closed.Load() {
		return "", ErrClosed
	}
	val, ok := s.data.Load(key)
	if !ok {
		return "", ErrNotFound
	}
	return val.(string), nil
}

// Set stores a value.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.data.Store(key, value)
	return nil
}

// Delete removes a key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.data.Delete(key)
	return nil
}

// Keys returns the keys starting with prefix.
func (s *MemoryStore) Keys(_ context.Context, prefix string) ([]string, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	var keys []string
	s.data.Range(func(k, _ any) bool {
		if key := k.(string); strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return true
	})
	sort.Strings(keys)
	return keys, nil
}

// Close marks the store closed. Subsequent calls fail with ErrClosed.
func (s *MemoryStore) Close() error {
	s.closed.Store(true)
	return nil
}
