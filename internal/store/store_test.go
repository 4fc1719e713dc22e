// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite exercises the Store contract against s.
func runStoreSuite(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		_, err := s.Get(ctx, "theme_settings_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "theme_settings_library-theme", `{"font_family":"lora"}`))
		got, err := s.Get(ctx, "theme_settings_library-theme")
		require.NoError(t, err)
		assert.Equal(t, `{"font_family":"lora"}`, got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "theme_defaults_modern", "v1"))
		require.NoError(t, s.Set(ctx, "theme_defaults_modern", "v2"))
		got, err := s.Get(ctx, "theme_defaults_modern")
		require.NoError(t, err)
		assert.Equal(t, "v2", got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "theme_settings_gone", "x"))
		require.NoError(t, s.Delete(ctx, "theme_settings_gone"))
		_, err := s.Get(ctx, "theme_settings_gone")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, s.Delete(ctx, "theme_settings_never-existed"))
	})

	t.Run("keys by prefix", func(t *testing.T) {
		l, ok := s.(Lister)
		require.True(t, ok, "store should implement Lister")

		require.NoError(t, s.Set(ctx, "theme_settings_b-site", "{}"))
		require.NoError(t, s.Set(ctx, "theme_settings_a-site", "{}"))
		require.NoError(t, s.Set(ctx, "themeXsettings_decoy", "{}"))

		keys, err := l.Keys(ctx, "theme_settings_")
		require.NoError(t, err)
		assert.Contains(t, keys, "theme_settings_a-site")
		assert.Contains(t, keys, "theme_settings_b-site")
		assert.NotContains(t, keys, "themeXsettings_decoy")
		assert.NotContains(t, keys, "theme_defaults_modern")
		assert.IsIncreasing(t, keys)
	})

	t.Run("keys with wildcard characters in prefix", func(t *testing.T) {
		l, ok := s.(Lister)
		require.True(t, ok, "store should implement Lister")

		require.NoError(t, s.Set(ctx, "theme_settings_a*b", "{}"))
		require.NoError(t, s.Set(ctx, "theme_settings_axb", "{}"))
		require.NoError(t, s.Set(ctx, "theme_settings_a?c", "{}"))

		keys, err := l.Keys(ctx, "theme_settings_a*")
		require.NoError(t, err)
		assert.Equal(t, []string{"theme_settings_a*b"}, keys)

		keys, err = l.Keys(ctx, "theme_settings_a?")
		require.NoError(t, err)
		assert.Equal(t, []string{"theme_settings_a?c"}, keys)
	})

	t.Run("concurrent access", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = s.Set(ctx, "theme_settings_concurrent", "v")
				_, _ = s.Get(ctx, "theme_settings_concurrent")
			}()
		}
		wg.Wait()
		got, err := s.Get(ctx, "theme_settings_concurrent")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("closed", func(t *testing.T) {
		require.NoError(t, s.Close())
		_, err := s.Get(ctx, "theme_settings_library-theme")
		assert.ErrorIs(t, err, ErrClosed)
		assert.ErrorIs(t, s.Set(ctx, "k", "v"), ErrClosed)
		assert.ErrorIs(t, s.Delete(ctx, "k"), ErrClosed)
		assert.NoError(t, s.Close(), "second Close should be a no-op")
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, NewMemoryStore())
}

func TestSQLStore_SQLite(t *testing.T) {
	s, err := Open(Options{
		Type:   TypeSQLite,
		DBPath: filepath.Join(t.TempDir(), "data", "themekit.db"),
	})
	require.NoError(t, err)
	runStoreSuite(t, s)
}

func TestSQLStore_SQLitePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themekit.db")
	ctx := context.Background()

	s, err := Open(Options{Type: TypeSQLite, DBPath: path})
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "theme_settings_library-theme", "persisted"))
	require.NoError(t, s.Close())

	s, err = Open(Options{Type: TypeSQLite, DBPath: path})
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	got, err := s.Get(ctx, "theme_settings_library-theme")
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

func TestSQLStore_MySQL(t *testing.T) {
	dsn := os.Getenv("THEMEKIT_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("Skipping MySQL tests: THEMEKIT_TEST_MYSQL_DSN not set")
	}
	s, err := Open(Options{Type: TypeMySQL, MySQLDSN: dsn})
	require.NoError(t, err)
	runStoreSuite(t, s)
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("THEMEKIT_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis tests: THEMEKIT_TEST_REDIS_URL not set")
	}
	s, err := Open(Options{Type: TypeRedis, RedisURL: url, RedisPrefix: "themekit-test:"})
	require.NoError(t, err)
	runStoreSuite(t, s)
}

func TestNewRedisStore_RequiresURL(t *testing.T) {
	_, err := NewRedisStore(DefaultRedisOptions())
	assert.Error(t, err)
}

func TestNewSQLStore_UnknownDialect(t *testing.T) {
	_, err := NewSQLStore(nil, "postgres")
	assert.Error(t, err)
}

func TestOpen_UnknownType(t *testing.T) {
	_, err := Open(Options{Type: "etcd"})
	assert.Error(t, err)
}

func TestOpen_DefaultsToMemory(t *testing.T) {
	s, err := Open(Options{})
	require.NoError(t, err)
	_, ok := s.(*MemoryStore)
	assert.True(t, ok)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "theme!_settings!_", escapeLike("theme_settings_"))
	assert.Equal(t, "a!%b!!c", escapeLike("a%b!c"))
}

func TestEscapeGlob(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"themekit:theme_settings_", "themekit:theme_settings_"},
		{"site*", `site\*`},
		{"a?b", `a\?b`},
		{"[ab]", `\[ab\]`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		if got := escapeGlob(tt.input); got != tt.want {
			t.Errorf("escapeGlob(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "theme_defaults_modern", "custom"))

	n, err := Seed(ctx, s, map[string]string{
		"theme_defaults_modern":      "builtin",
		"theme_defaults_traditional": "builtin",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, _ := s.Get(ctx, "theme_defaults_modern")
	assert.Equal(t, "custom", got, "existing key must not be overwritten")
	got, _ = s.Get(ctx, "theme_defaults_traditional")
	assert.Equal(t, "builtin", got)

	_ = s.Close()
	_, err = Seed(ctx, s, map[string]string{"k": "v"})
	assert.ErrorIs(t, err, ErrClosed)
}
