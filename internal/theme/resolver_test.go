// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package theme

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/olegiv/ocms-themekit/internal/themeopt"
)

const systemStack = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`

func TestResolveFontFamily_KnownKeys(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"system", systemStack},
		{"helvetica", `"Helvetica Neue", Helvetica, Arial, sans-serif`},
		{"arial", `Arial, "Helvetica Neue", sans-serif`},
		{"verdana", `Verdana, Geneva, sans-serif`},
		{"tahoma", `Tahoma, Verdana, sans-serif`},
		{"trebuchet", `"Trebuchet MS", Helvetica, sans-serif`},
		{"open-sans", `"Open Sans", Arial, sans-serif`},
		{"roboto", `Roboto, Arial, sans-serif`},
		{"lato", `Lato, "Helvetica Neue", sans-serif`},
		{"montserrat", `Montserrat, Arial, sans-serif`},
		{"source-sans", `"Source Sans Pro", Arial, sans-serif`},
		{"inter", `Inter, "Helvetica Neue", sans-serif`},
		{"noto-sans", `"Noto Sans", Arial, sans-serif`},
		{"raleway", `Raleway, Arial, sans-serif`},
		{"georgia", `Georgia, "Times New Roman", serif`},
		{"times", `"Times New Roman", Times, serif`},
		{"garamond", `Garamond, Baskerville, serif`},
		{"palatino", `"Palatino Linotype", Palatino, serif`},
		{"merriweather", `Merriweather, Georgia, serif`},
		{"playfair", `"Playfair Display", Georgia, serif`},
		{"libre-baskerville", `"Libre Baskerville", Georgia, serif`},
		{"lora", `Lora, Georgia, serif`},
		{"crimson", `"Crimson Text", Georgia, serif`},
		{"oswald", `Oswald, Impact, sans-serif`},
		{"bebas", `"Bebas Neue", Impact, sans-serif`},
		{"abril", `"Abril Fatface", Georgia, serif`},
		{"lobster", `Lobster, Georgia, cursive`},
		{"pacifico", `Pacifico, cursive`},
		{"courier", `"Courier New", Courier, monospace`},
		{"consolas", `Consolas, Monaco, monospace`},
		{"source-code", `"Source Code Pro", Consolas, monospace`},
		{"fira-code", `"Fira Code", Consolas, monospace`},
		{"jetbrains-mono", `"JetBrains Mono", Consolas, monospace`},
	}

	if len(tests) != themeopt.Fonts.Len() {
		t.Fatalf("test covers %d fonts, table has %d", len(tests), themeopt.Fonts.Len())
	}

	r := NewResolver(nil)
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.ResolveFontFamily(tt.key); got != tt.want {
				t.Errorf("ResolveFontFamily(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

type stringerKey string

func (s stringerKey) String() string { return string(s) }

// ptrStringer has a pointer receiver, so a nil *ptrStringer panics in String.
type ptrStringer struct{ key string }

func (p *ptrStringer) String() string { return p.key }

// panicStringer fails in String.
type panicStringer struct{}

func (panicStringer) String() string { panic("broken stringer") }

func TestResolveFontFamily_Fallbacks(t *testing.T) {
	var nilPtr *string
	var nilStringer *ptrStringer
	lora := "lora"

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, systemStack},
		{"empty string", "", systemStack},
		{"nil pointer", nilPtr, systemStack},
		{"unknown key", "not-a-real-key", ResolveFontFamily("system")},
		{"wrong case", "Georgia", systemStack},
		{"integer", 42, systemStack},
		{"bool", true, systemStack},
		{"string pointer", &lora, `Lora, Georgia, serif`},
		{"stringer", stringerKey("lora"), `Lora, Georgia, serif`},
		{"bytes", []byte("lora"), `Lora, Georgia, serif`},
		{"nil stringer", nilStringer, systemStack},
		{"pointer stringer", &ptrStringer{key: "lora"}, `Lora, Georgia, serif`},
		{"panicking stringer", panicStringer{}, systemStack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFontFamily(tt.input)
			if got != tt.want {
				t.Errorf("ResolveFontFamily(%v) = %q, want %q", tt.input, got, tt.want)
			}
			if got == "" {
				t.Error("ResolveFontFamily() returned empty string")
			}
		})
	}
}

func TestResolveFontFamily_Idempotent(t *testing.T) {
	for _, key := range []any{"lora", "", nil, "nope"} {
		if ResolveFontFamily(key) != ResolveFontFamily(key) {
			t.Errorf("ResolveFontFamily(%v) not stable", key)
		}
	}
	if got, _ := themeopt.Fonts.Lookup("lora"); got != `Lora, Georgia, serif` {
		t.Errorf("font table mutated: lora = %q", got)
	}
}

func TestResolver_LogsLookups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewResolver(logger)

	r.ResolveFontFamily("")
	r.ResolveFontFamily("lora")
	r.ResolveFontFamily("nope")
	r.ResolveFontFamily(3)

	out := buf.String()
	for _, want := range []string{
		"font key empty",
		"font resolved",
		"unknown font key",
		"font key not a string",
		"category=resolver",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestResolver_OtherTables(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"weight", r.ResolveFontWeight("semibold"), "600"},
		{"weight fallback", r.ResolveFontWeight("ultra"), "400"},
		{"style", r.ResolveFontStyle("italic"), "italic"},
		{"style fallback", r.ResolveFontStyle(""), "normal"},
		{"size named", r.ResolveFontSize("large"), "1.125rem"},
		{"size literal", r.ResolveFontSize("1.2rem"), "1.2rem"},
		{"size fallback", r.ResolveFontSize("huge"), "1rem"},
		{"button", r.ResolveButtonSize("large"), "0.75rem 1.5rem"},
		{"button fallback", r.ResolveButtonSize("jumbo"), "0.5rem 1rem"},
		{"header", r.ResolveHeaderLayout("stacked"), "header--stacked"},
		{"header fallback", r.ResolveHeaderLayout("sideways"), "header--logo-left"},
		{"footer", r.ResolveFooterHeight("none"), "0px"},
		{"footer fallback", r.ResolveFooterHeight("giant"), "120px"},
		{"color slot", r.ResolveColor("accent"), "#e67e22"},
		{"color literal", r.ResolveColor("#AABBCC"), "#aabbcc"},
		{"color shorthand rejected", r.ResolveColor("#ABC"), "#1a5490"},
		{"color named rejected", r.ResolveColor("blue"), "#1a5490"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
