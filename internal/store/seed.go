// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Seed writes each entry of values whose key is not yet present in s.
// Existing keys are left untouched. It returns the number of keys written.
func Seed(ctx context.Context, s Store, values map[string]string) (int, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	written := 0
	for _, key := range keys {
		_, err := s.Get(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return written, fmt.Errorf("checking %s: %w", key, err)
		}
		if err := s.Set(ctx, key, values[key]); err != nil {
			return written, fmt.Errorf("seeding %s: %w", key, err)
		}
		written++
	}
	return written, nil
}
