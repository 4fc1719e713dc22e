// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package theme resolves symbolic theme keys to presentation values and
// manages per-site theme settings in the settings store.
package theme

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/olegiv/ocms-themekit/internal/logging"
	"github.com/olegiv/ocms-themekit/internal/themeopt"
)

// Resolver maps theme keys to CSS-ready values, always falling back to a
// usable default. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a resolver that reports lookups to logger at debug
// level. A nil logger discards them.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logging.OrDiscard(logger).With("category", logging.CategoryResolver)}
}

var defaultResolver = NewResolver(nil)

// ResolveFontFamily resolves v with a resolver that does not log.
func ResolveFontFamily(v any) string {
	return defaultResolver.ResolveFontFamily(v)
}

// ResolveFontFamily returns the font-family stack for a font key.
// Empty or missing input yields the system stack straight away; unknown keys
// and non-string input yield the table's "system" entry. The result is never
// empty.
func (r *Resolver) ResolveFontFamily(v any) string {
	key, ok := fontKey(v)
	if !ok {
		r.logger.Debug("font key not a string, using system font", "type", fmt.Sprintf("%T", v))
		return themeopt.Fonts.Resolve(themeopt.Fonts.Fallback())
	}
	if key == "" {
		r.logger.Debug("font key empty, using system font")
		return themeopt.SystemFontStack
	}
	if stack, found := themeopt.Fonts.Lookup(key); found {
		r.logger.Debug("font resolved", "key", key)
		return stack
	}
	r.logger.Debug("unknown font key, using system font", "key", key)
	return themeopt.Fonts.Resolve(themeopt.Fonts.Fallback())
}

// fontKey extracts a string key from v. ok is false for unsupported types;
// nil and nil pointers are reported as an empty key.
func fontKey(v any) (key string, ok bool) {
	switch k := v.(type) {
	case nil:
		return "", true
	case string:
		return k, true
	case *string:
		if k == nil {
			return "", true
		}
		return *k, true
	case []byte:
		return string(k), true
	case fmt.Stringer:
		return keyFromStringer(k)
	default:
		return "", false
	}
}

// keyFromStringer calls String on k. A nil pointer is an empty key; a String
// method that panics makes the key unusable.
func keyFromStringer(k fmt.Stringer) (key string, ok bool) {
	if rv := reflect.ValueOf(k); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", true
	}
	defer func() {
		if recover() != nil {
			key, ok = "", false
		}
	}()
	return k.String(), true
}

// ResolveFontWeight returns the numeric weight for a weight key.
func (r *Resolver) ResolveFontWeight(key string) string {
	return r.resolve(themeopt.FontWeights, key)
}

// ResolveFontStyle returns the CSS font-style for a style key.
func (r *Resolver) ResolveFontStyle(key string) string {
	return r.resolve(themeopt.FontStyles, key)
}

// ResolveFontSize returns the CSS length for a named size. Values that are
// already valid font sizes (e.g. "1.2rem") pass through unchanged.
func (r *Resolver) ResolveFontSize(key string) string {
	if !themeopt.FontSizes.Has(key) && themeopt.IsValidFontSize(key) {
		return key
	}
	return r.resolve(themeopt.FontSizes, key)
}

// ResolveButtonSize returns the CSS padding for a button size.
func (r *Resolver) ResolveButtonSize(key string) string {
	return r.resolve(themeopt.ButtonSizes, key)
}

// ResolveHeaderLayout returns the CSS class token for a header layout.
func (r *Resolver) ResolveHeaderLayout(key string) string {
	return r.resolve(themeopt.HeaderLayouts, key)
}

// ResolveFooterHeight returns the CSS height of the footer banner.
func (r *Resolver) ResolveFooterHeight(key string) string {
	return r.resolve(themeopt.FooterBannerHeights, key)
}

// ResolveColor accepts either a palette slot ("accent") or a literal
// #RRGGBB color and returns a lower-case hex color. Anything else yields the
// palette's primary color.
func (r *Resolver) ResolveColor(key string) string {
	if v, ok := themeopt.Colors.Lookup(key); ok {
		return v
	}
	if c := themeopt.NormalizeColor(key); c != "" {
		return c
	}
	r.logger.Debug("unknown color, using fallback", "key", key, "fallback", themeopt.Colors.Fallback())
	return themeopt.Colors.Resolve(themeopt.Colors.Fallback())
}

func (r *Resolver) resolve(t *themeopt.Table, key string) string {
	if v, ok := t.Lookup(key); ok {
		return v
	}
	r.logger.Debug("unknown theme key, using fallback", "table", t.Name(), "key", key, "fallback", t.Fallback())
	return t.Resolve(t.Fallback())
}
