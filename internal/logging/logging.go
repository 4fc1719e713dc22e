// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging builds the slog loggers used by themekit and tags records
// with a category so theme events can be filtered downstream.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Log categories.
const (
	CategorySettings   = "settings"
	CategoryPreset     = "preset"
	CategoryStore      = "store"
	CategoryValidation = "validation"
	CategoryResolver   = "resolver"
	CategorySystem     = "system"
)

// ParseLevel maps a config string to a slog level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to w. Format "json" selects the JSON handler,
// anything else the text handler.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var inner slog.Handler
	if strings.EqualFold(format, "json") {
		inner = slog.NewJSONHandler(w, opts)
	} else {
		inner = slog.NewTextHandler(w, opts)
	}
	return slog.New(NewCategoryHandler(inner))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// CategoryHandler is a slog.Handler that adds a "category" attribute to
// records that do not carry one, inferred from the message.
type CategoryHandler struct {
	inner       slog.Handler
	hasCategory bool // set once WithAttrs received a category
}

// NewCategoryHandler wraps inner.
func NewCategoryHandler(inner slog.Handler) *CategoryHandler {
	return &CategoryHandler{inner: inner}
}

// Enabled implements slog.Handler.
func (h *CategoryHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *CategoryHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.hasCategory || recordHasCategory(r) {
		return h.inner.Handle(ctx, r)
	}
	r = r.Clone()
	r.AddAttrs(slog.String("category", InferCategory(r.Message)))
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *CategoryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	has := h.hasCategory
	for _, a := range attrs {
		if a.Key == "category" {
			has = true
			break
		}
	}
	return &CategoryHandler{inner: h.inner.WithAttrs(attrs), hasCategory: has}
}

// WithGroup implements slog.Handler.
func (h *CategoryHandler) WithGroup(name string) slog.Handler {
	return &CategoryHandler{inner: h.inner.WithGroup(name), hasCategory: h.hasCategory}
}

func recordHasCategory(r slog.Record) bool {
	found := false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			found = true
			return false
		}
		return true
	})
	return found
}

// InferCategory guesses a category from a log message.
func InferCategory(msg string) string {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "preset"):
		return CategoryPreset
	case strings.Contains(msg, "invalid") || strings.Contains(msg, "validat"):
		return CategoryValidation
	case strings.Contains(msg, "resolv") || strings.Contains(msg, "font"):
		return CategoryResolver
	case strings.Contains(msg, "store") || strings.Contains(msg, "redis") ||
		strings.Contains(msg, "database") || strings.Contains(msg, "migrat"):
		return CategoryStore
	case strings.Contains(msg, "setting"):
		return CategorySettings
	default:
		return CategorySystem
	}
}
