// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package theme

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/olegiv/ocms-themekit/internal/themeopt"
)

func TestStyles_Defaults(t *testing.T) {
	s := NewResolver(nil).Styles(nil)

	if s.BodyFont != systemStack {
		t.Errorf("BodyFont = %q, want system stack", s.BodyFont)
	}
	if s.HeadingWeight != "700" {
		t.Errorf("HeadingWeight = %q, want 700", s.HeadingWeight)
	}
	if s.HeadingSize != "1.25rem" {
		t.Errorf("HeadingSize = %q, want 1.25rem", s.HeadingSize)
	}
	if s.HeaderClass != "header--logo-left" {
		t.Errorf("HeaderClass = %q", s.HeaderClass)
	}
	if s.Primary != "#1a5490" || s.OnPrimary != "#ffffff" {
		t.Errorf("Primary/OnPrimary = %q/%q", s.Primary, s.OnPrimary)
	}
	if s.LinkHover == s.Link || !themeopt.IsValidColor(s.LinkHover) {
		t.Errorf("LinkHover = %q, want a darker valid color than %q", s.LinkHover, s.Link)
	}
	if s.FooterText != "" {
		t.Errorf("FooterText = %q, want empty", s.FooterText)
	}
}

func TestStyles_FromBundle(t *testing.T) {
	bundle, _ := themeopt.PresetValues(themeopt.PresetTraditional)
	bundle[themeopt.SettingPrimaryColor] = "#FDFBF6"
	bundle[themeopt.SettingFooterText] = `<b>Library</b><script>x()</script>`
	bundle[themeopt.SettingButtonSize] = "jumbo" // invalid, uses default

	s := NewResolver(nil).Styles(bundle)

	if s.BodyFont != `Georgia, "Times New Roman", serif` {
		t.Errorf("BodyFont = %q", s.BodyFont)
	}
	if s.HeaderClass != "header--logo-center" {
		t.Errorf("HeaderClass = %q", s.HeaderClass)
	}
	if s.Primary != "#fdfbf6" || s.OnPrimary != "#000000" {
		t.Errorf("Primary/OnPrimary = %q/%q", s.Primary, s.OnPrimary)
	}
	if s.ButtonPadding != "0.5rem 1rem" {
		t.Errorf("ButtonPadding = %q, want default", s.ButtonPadding)
	}
	if s.FontSize != "1.0625rem" {
		t.Errorf("FontSize = %q", s.FontSize)
	}
	if strings.Contains(string(s.FooterText), "script") || !strings.Contains(string(s.FooterText), "<b>Library</b>") {
		t.Errorf("FooterText = %q", s.FooterText)
	}
}

func TestCSSVariables(t *testing.T) {
	css := string(NewResolver(nil).Styles(nil).CSSVariables())

	if !strings.HasPrefix(css, ":root {\n") || !strings.HasSuffix(css, "}\n") {
		t.Fatalf("unexpected block framing:\n%s", css)
	}
	for _, want := range []string{
		"--theme-font-body: " + systemStack + ";",
		"--theme-color-primary: #1a5490;",
		"--theme-button-padding: 0.5rem 1rem;",
		"--theme-footer-banner-height: 120px;",
		"--theme-border-width: 1px;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS missing %q:\n%s", want, css)
		}
	}
}

func TestManagerTemplateFuncs(t *testing.T) {
	m, _ := testManager(t)

	tmpl := template.Must(template.New("t").Funcs(m.TemplateFuncs()).Parse(
		`<p>{{themeFont .Font}}|{{themeColor "accent"}}|` +
			`{{themeHeaderClass "stacked"}}|{{themeButtonSize "small"}}|{{themeTextOn "#000000"}}` +
			`{{range themeOptions "button_size"}}|{{.Value}}={{.Label}}{{end}}</p>`))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{"Font": "lora"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"header--stacked|0.375rem 0.75rem|#ffffff",
		"|small=Small|medium=Medium|large=Large",
		"Lora, Georgia, serif|#e67e22|",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	funcs := m.TemplateFuncs()
	options := funcs["themeOptions"].(func(string) []themeopt.Option)
	if options("no_such_table") != nil {
		t.Error("themeOptions(unknown) should be nil")
	}
	css := funcs["themeCSS"].(func(map[string]string) template.CSS)
	if !strings.Contains(string(css(nil)), "--theme-font-body") {
		t.Error("themeCSS(nil) missing font variable")
	}
}
