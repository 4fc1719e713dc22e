// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package themeopt

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	colorBlack = "#000000"
	colorWhite = "#ffffff"
)

// NormalizeColor returns value as lower-case #rrggbb, or "" if it is not a
// valid 6-digit hex color.
func NormalizeColor(value string) string {
	if !IsValidColor(value) {
		return ""
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return ""
	}
	return c.Hex()
}

// relativeLuminance follows the WCAG 2 definition.
func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ReadableTextColor returns black or white, whichever contrasts more with bg.
// Invalid colors yield black.
func ReadableTextColor(bg string) string {
	if !IsValidColor(bg) {
		return colorBlack
	}
	c, err := colorful.Hex(bg)
	if err != nil {
		return colorBlack
	}
	l := relativeLuminance(c)
	onWhite := 1.05 / (l + 0.05)
	onBlack := (l + 0.05) / 0.05
	if onWhite > onBlack {
		return colorWhite
	}
	return colorBlack
}

// Shade darkens a color towards black by t in [0, 1], blending in Lab space.
// Invalid colors are returned unchanged.
func Shade(value string, t float64) string {
	if !IsValidColor(value) {
		return value
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return value
	}
	switch {
	case t <= 0:
		return c.Hex()
	case t >= 1:
		return colorBlack
	}
	black, _ := colorful.Hex(colorBlack)
	return c.BlendLab(black, t).Clamped().Hex()
}
