// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package themeopt

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Option is a value/label pair for admin select inputs.
type Option struct {
	Value string
	Label string
}

// Options lists the entries of t in declaration order with display labels.
func Options(t *Table) []Option {
	// A Caser keeps state, so each call gets its own.
	caser := cases.Title(language.English)
	opts := make([]Option, 0, t.Len())
	for _, key := range t.order {
		opts = append(opts, Option{
			Value: key,
			Label: caser.String(strings.ReplaceAll(key, "-", " ")),
		})
	}
	return opts
}
