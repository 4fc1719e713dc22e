// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/olegiv/ocms-themekit/internal/logging"
	"github.com/olegiv/ocms-themekit/internal/store"
	"github.com/olegiv/ocms-themekit/internal/themeopt"
	"github.com/olegiv/ocms-themekit/internal/util"
)

var (
	// ErrUnknownPreset is matched by errors returned for unknown preset names.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrInvalidSlug is returned for theme slugs that are not valid slugs.
	ErrInvalidSlug = errors.New("invalid theme slug")

	// ErrListUnsupported is returned by Sites when the store cannot list keys.
	ErrListUnsupported = errors.New("settings store cannot list keys")
)

// unknownPresetError carries the user-facing message for an unknown preset.
type unknownPresetError struct {
	name string
}

func (e unknownPresetError) Error() string {
	return themeopt.ErrorMessage("unknown_preset", e.name)
}

func (e unknownPresetError) Is(target error) bool {
	return target == ErrUnknownPreset
}

// Manager loads and stores per-site theme settings bundles.
// Bundles are JSON objects kept under themeopt.ThemeSettingsKey(slug);
// preset defaults live under themeopt.DefaultsKey(preset).
// A Manager is safe for concurrent use; writes are serialized.
type Manager struct {
	store    store.Store
	resolver *Resolver
	logger   *slog.Logger

	mu      sync.RWMutex
	bundles map[string]map[string]string // slug -> merged settings
	gen     uint64                       // bumped by Invalidate

	writeMu sync.Mutex // serializes read-modify-write of stored bundles
}

// NewManager creates a manager backed by s.
func NewManager(s store.Store, logger *slog.Logger) *Manager {
	logger = logging.OrDiscard(logger)
	return &Manager{
		store:    s,
		resolver: NewResolver(logger),
		logger:   logger,
		bundles:  make(map[string]map[string]string),
	}
}

// Resolver returns the resolver used by the manager's template functions.
func (m *Manager) Resolver() *Resolver {
	return m.resolver
}

// Settings returns the site's settings merged over the defaults.
// A site with nothing stored gets the defaults.
func (m *Manager) Settings(ctx context.Context, slug string) (map[string]string, error) {
	if !util.IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	m.mu.RLock()
	cached, ok := m.bundles[slug]
	gen := m.gen
	m.mu.RUnlock()
	if ok {
		return copyBundle(cached), nil
	}

	stored, err := m.load(ctx, themeopt.ThemeSettingsKey(slug))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", themeopt.ErrorMessage("load_failed", slug), err)
	}

	bundle := m.merge(themeopt.Defaults(), stored, slug)

	// A write that completed during the load may have made bundle stale.
	m.mu.Lock()
	if m.gen == gen {
		m.bundles[slug] = bundle
	}
	m.mu.Unlock()

	return copyBundle(bundle), nil
}

// Save validates values, merges them into the site's current settings and
// stores the result. Invalid input is rejected as a whole with
// themeopt.ValidationErrors and nothing is written.
func (m *Manager) Save(ctx context.Context, slug string, values map[string]string) (string, error) {
	if err := themeopt.ValidateSettings(values); err != nil {
		m.logger.Warn("invalid theme settings rejected", "theme", slug, "error", err)
		return "", err
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	current, err := m.Settings(ctx, slug)
	if err != nil {
		return "", err
	}
	for k, v := range values {
		current[k] = sanitizeValue(k, v)
	}

	if err := m.write(ctx, themeopt.ThemeSettingsKey(slug), current); err != nil {
		return "", fmt.Errorf("%s: %w", themeopt.ErrorMessage("save_failed", slug), err)
	}
	m.Invalidate(slug)

	m.logger.Info("theme settings saved", "theme", slug, "fields", sortedKeys(values))
	return themeopt.SuccessMessage("settings_saved", slug), nil
}

// ApplyPreset replaces the site's settings with the preset's defaults.
func (m *Manager) ApplyPreset(ctx context.Context, slug, preset string) (string, error) {
	if !util.IsValidSlug(slug) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	values, err := m.PresetDefaults(ctx, preset)
	if err != nil {
		return "", err
	}

	if err := m.write(ctx, themeopt.ThemeSettingsKey(slug), values); err != nil {
		return "", fmt.Errorf("%s: %w", themeopt.ErrorMessage("save_failed", slug), err)
	}
	m.Invalidate(slug)

	m.logger.Info("preset applied", "theme", slug, "preset", preset)
	return themeopt.SuccessMessage("preset_applied", preset, slug), nil
}

// PresetDefaults returns the preset's default values: any stored overrides
// under themeopt.DefaultsKey merged over the built-in preset values.
func (m *Manager) PresetDefaults(ctx context.Context, preset string) (map[string]string, error) {
	builtin, ok := themeopt.PresetValues(preset)
	if !ok {
		return nil, unknownPresetError{name: preset}
	}
	stored, err := m.load(ctx, themeopt.DefaultsKey(preset))
	if err != nil {
		return nil, fmt.Errorf("loading preset %s: %w", preset, err)
	}
	return m.merge(builtin, stored, preset), nil
}

// SavePresetDefaults validates values and stores them as the preset's
// defaults, merged over the current preset defaults.
func (m *Manager) SavePresetDefaults(ctx context.Context, preset string, values map[string]string) (string, error) {
	if !themeopt.IsValidPreset(preset) {
		return "", unknownPresetError{name: preset}
	}
	if err := themeopt.ValidateSettings(values); err != nil {
		m.logger.Warn("invalid preset defaults rejected", "preset", preset, "error", err)
		return "", err
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	current, err := m.PresetDefaults(ctx, preset)
	if err != nil {
		return "", err
	}
	for k, v := range values {
		current[k] = sanitizeValue(k, v)
	}

	if err := m.write(ctx, themeopt.DefaultsKey(preset), current); err != nil {
		return "", fmt.Errorf("saving preset %s: %w", preset, err)
	}

	m.logger.Info("preset defaults saved", "preset", preset)
	return themeopt.SuccessMessage("defaults_saved", preset), nil
}

// SeedPresetDefaults stores the built-in values of every preset that has no
// stored defaults yet. It returns the number of presets written.
func (m *Manager) SeedPresetDefaults(ctx context.Context) (int, error) {
	seed := make(map[string]string)
	for _, name := range themeopt.Presets() {
		values, _ := themeopt.PresetValues(name)
		data, err := json.Marshal(values)
		if err != nil {
			return 0, fmt.Errorf("encoding preset %s: %w", name, err)
		}
		seed[themeopt.DefaultsKey(name)] = string(data)
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	n, err := store.Seed(ctx, m.store, seed)
	if err != nil {
		return n, fmt.Errorf("seeding preset defaults: %w", err)
	}
	if n > 0 {
		m.logger.Info("preset defaults seeded", "count", n)
	}
	return n, nil
}

// Reset deletes the site's stored settings so it falls back to the defaults.
func (m *Manager) Reset(ctx context.Context, slug string) (string, error) {
	if !util.IsValidSlug(slug) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	if err := m.store.Delete(ctx, themeopt.ThemeSettingsKey(slug)); err != nil {
		return "", fmt.Errorf("%s: %w", themeopt.ErrorMessage("save_failed", slug), err)
	}
	m.Invalidate(slug)

	m.logger.Info("theme settings reset", "theme", slug)
	return themeopt.SuccessMessage("settings_reset", slug), nil
}

// Sites returns the slugs of all sites with stored settings.
func (m *Manager) Sites(ctx context.Context) ([]string, error) {
	l, ok := m.store.(store.Lister)
	if !ok {
		return nil, ErrListUnsupported
	}
	keys, err := l.Keys(ctx, themeopt.ThemeSettingsPrefix)
	if err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}
	slugs := make([]string, 0, len(keys))
	for _, k := range keys {
		slugs = append(slugs, strings.TrimPrefix(k, themeopt.ThemeSettingsPrefix))
	}
	return slugs, nil
}

// Invalidate drops the cached settings of a site. Loads that started
// before the call do not repopulate the cache.
func (m *Manager) Invalidate(slug string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	delete(m.bundles, slug)
}

// load reads and decodes a JSON bundle. A missing key yields nil.
func (m *Manager) load(ctx context.Context, key string) (map[string]string, error) {
	raw, err := m.store.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var values map[string]string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}
	return values, nil
}

func (m *Manager) write(ctx context.Context, key string, values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return m.store.Set(ctx, key, string(data))
}

// merge overlays stored onto base. Unknown keys are dropped and invalid
// values keep the base value, so a bundle edited outside the manager can
// never produce an unusable theme.
func (m *Manager) merge(base, stored map[string]string, owner string) map[string]string {
	for k, v := range stored {
		if err := themeopt.ValidateSetting(k, v); err != nil {
			m.logger.Warn("ignoring stored theme setting", "owner", owner, "setting", k, "error", err)
			continue
		}
		base[k] = sanitizeValue(k, v)
	}
	return base
}

func copyBundle(b map[string]string) map[string]string {
	out := make(map[string]string, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
