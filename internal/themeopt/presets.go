// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package themeopt

// Known presets.
const (
	PresetModern      = "modern"
	PresetTraditional = "traditional"
)

var defaults = map[string]string{
	SettingFontFamily:         "system",
	SettingHeadingFont:        "system",
	SettingFontWeight:         "normal",
	SettingHeadingWeight:      "bold",
	SettingFontStyle:          "normal",
	SettingFontSize:           "1rem",
	SettingHeadingSize:        "x-large",
	SettingButtonSize:         "medium",
	SettingHeaderLayout:       "logo-left",
	SettingHeaderHeight:       "80px",
	SettingFooterBannerHeight: "medium",
	SettingBorderWidth:        "1px",
	SettingPrimaryColor:       "#1a5490",
	SettingSecondaryColor:     "#2c3e50",
	SettingAccentColor:        "#e67e22",
	SettingTextColor:          "#333333",
	SettingBackgroundColor:    "#ffffff",
	SettingLinkColor:          "#1a5490",
	SettingFooterText:         "",
}

var presetOrder = []string{PresetModern, PresetTraditional}

var presetOverrides = map[string]map[string]string{
	PresetModern: {
		SettingFontFamily:         "inter",
		SettingHeadingFont:        "montserrat",
		SettingHeadingWeight:      "semibold",
		SettingHeadingSize:        "xx-large",
		SettingButtonSize:         "large",
		SettingHeaderHeight:       "72px",
		SettingFooterBannerHeight: "small",
		SettingBorderWidth:        "0px",
		SettingPrimaryColor:       "#2563eb",
		SettingSecondaryColor:     "#0f172a",
		SettingAccentColor:        "#f97316",
		SettingTextColor:          "#1f2937",
		SettingLinkColor:          "#2563eb",
	},
	PresetTraditional: {
		SettingFontFamily:         "georgia",
		SettingHeadingFont:        "playfair",
		SettingFontSize:           "1.0625rem",
		SettingHeaderLayout:       "logo-center",
		SettingHeaderHeight:       "120px",
		SettingFooterBannerHeight: "large",
		SettingPrimaryColor:       "#7a1f1f",
		SettingSecondaryColor:     "#3b2f2f",
		SettingAccentColor:        "#b8860b",
		SettingTextColor:          "#2b2b2b",
		SettingBackgroundColor:    "#fdfbf6",
		SettingLinkColor:          "#7a1f1f",
	},
}

// Defaults returns a fresh copy of the default value set.
func Defaults() map[string]string {
	m := make(map[string]string, len(defaults))
	for k, v := range defaults {
		m[k] = v
	}
	return m
}

// Default returns the default value of a single setting.
func Default(name string) (string, bool) {
	v, ok := defaults[name]
	return v, ok
}

// IsValidPreset reports whether name is exactly one of the known presets.
func IsValidPreset(name string) bool {
	_, ok := presetOverrides[name]
	return ok
}

// Presets returns the known preset names.
func Presets() []string {
	out := make([]string, len(presetOrder))
	copy(out, presetOrder)
	return out
}

// PresetValues returns the defaults overlaid with the preset's own values.
func PresetValues(name string) (map[string]string, bool) {
	overrides, ok := presetOverrides[name]
	if !ok {
		return nil, false
	}
	m := Defaults()
	for k, v := range overrides {
		m[k] = v
	}
	return m, true
}
