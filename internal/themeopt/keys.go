// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package themeopt

// Settings store key prefixes.
const (
	ThemeSettingsPrefix = "theme_settings_"
	DefaultsPrefix      = "theme_defaults_"
)

// ThemeSettingsKey returns the store key holding a site's theme settings bundle.
func ThemeSettingsKey(themeSlug string) string {
	return ThemeSettingsPrefix + themeSlug
}

// DefaultsKey returns the store key holding a preset's default values.
func DefaultsKey(preset string) string {
	return DefaultsPrefix + preset
}
