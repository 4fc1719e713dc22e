// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package themeopt

import "fmt"

// Fallback messages for unknown keys.
const (
	UnknownErrorMessage   = "Unknown error"
	UnknownSuccessMessage = "Operation completed"
)

var errorMessages = map[string]string{
	"unknown_preset":       "Unknown preset: %s",
	"unknown_setting":      "Unknown setting: %s",
	"invalid_option":       "Invalid value for %s: %s",
	"invalid_color":        "Invalid color for %s: %s (expected #RRGGBB)",
	"invalid_font_size":    "Invalid font size for %s: %s",
	"invalid_height":       "Invalid height for %s: %s",
	"invalid_border_width": "Invalid border width for %s: %s",
	"text_too_long":        "%s must not exceed %d characters",
	"invalid_settings":     "%d theme settings are invalid",
	"load_failed":          "Failed to load theme settings for %s",
	"save_failed":          "Failed to save theme settings for %s",
}

var successMessages = map[string]string{
	"settings_saved": "Theme settings saved for %s",
	"preset_applied": "Preset %s applied to %s",
	"settings_reset": "Theme settings for %s reset to defaults",
	"defaults_saved": "Default values saved for preset %s",
}

// ErrorMessage formats the error template for key with args.
// Unknown keys yield UnknownErrorMessage.
func ErrorMessage(key string, args ...any) string {
	return formatMessage(errorMessages, UnknownErrorMessage, key, args)
}

// SuccessMessage formats the success template for key with args.
// Unknown keys yield UnknownSuccessMessage.
func SuccessMessage(key string, args ...any) string {
	return formatMessage(successMessages, UnknownSuccessMessage, key, args)
}

func formatMessage(templates map[string]string, fallback, key string, args []any) string {
	tmpl, ok := templates[key]
	if !ok {
		return fallback
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
