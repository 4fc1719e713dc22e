// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package theme

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/olegiv/ocms-themekit/internal/themeopt"
)

// textPolicy allows the safe subset of HTML (links, emphasis) in free-text
// settings such as the footer text.
var textPolicy = bluemonday.UGCPolicy()

// sanitizeValue cleans text settings; other kinds are already constrained by
// validation and are returned as is.
func sanitizeValue(name, value string) string {
	if f, ok := themeopt.FieldByName(name); ok && f.Kind == themeopt.KindText {
		return strings.TrimSpace(textPolicy.Sanitize(value))
	}
	return value
}

// Styles is a settings bundle resolved to concrete CSS values.
type Styles struct {
	BodyFont      string
	HeadingFont   string
	BodyWeight    string
	HeadingWeight string
	FontStyle     string
	FontSize      string
	HeadingSize   string
	ButtonPadding string
	HeaderClass   string
	HeaderHeight  string
	FooterHeight  string
	BorderWidth   string

	Primary    string
	OnPrimary  string // readable text color on Primary
	Secondary  string
	Accent     string
	Text       string
	Background string
	Link       string
	LinkHover  string

	FooterText template.HTML
}

// Styles resolves a settings bundle. Missing or invalid entries resolve to
// the defaults, so any bundle (even nil) produces complete styles.
func (r *Resolver) Styles(bundle map[string]string) Styles {
	get := func(name string) string {
		if v, ok := bundle[name]; ok && themeopt.ValidateSetting(name, v) == nil {
			return v
		}
		v, _ := themeopt.Default(name)
		return v
	}

	primary := r.ResolveColor(get(themeopt.SettingPrimaryColor))
	link := r.ResolveColor(get(themeopt.SettingLinkColor))

	return Styles{
		BodyFont:      r.ResolveFontFamily(get(themeopt.SettingFontFamily)),
		HeadingFont:   r.ResolveFontFamily(get(themeopt.SettingHeadingFont)),
		BodyWeight:    r.ResolveFontWeight(get(themeopt.SettingFontWeight)),
		HeadingWeight: r.ResolveFontWeight(get(themeopt.SettingHeadingWeight)),
		FontStyle:     r.ResolveFontStyle(get(themeopt.SettingFontStyle)),
		FontSize:      r.ResolveFontSize(get(themeopt.SettingFontSize)),
		HeadingSize:   r.ResolveFontSize(get(themeopt.SettingHeadingSize)),
		ButtonPadding: r.ResolveButtonSize(get(themeopt.SettingButtonSize)),
		HeaderClass:   r.ResolveHeaderLayout(get(themeopt.SettingHeaderLayout)),
		HeaderHeight:  get(themeopt.SettingHeaderHeight),
		FooterHeight:  r.ResolveFooterHeight(get(themeopt.SettingFooterBannerHeight)),
		BorderWidth:   get(themeopt.SettingBorderWidth),

		Primary:    primary,
		OnPrimary:  themeopt.ReadableTextColor(primary),
		Secondary:  r.ResolveColor(get(themeopt.SettingSecondaryColor)),
		Accent:     r.ResolveColor(get(themeopt.SettingAccentColor)),
		Text:       r.ResolveColor(get(themeopt.SettingTextColor)),
		Background: r.ResolveColor(get(themeopt.SettingBackgroundColor)),
		Link:       link,
		LinkHover:  themeopt.Shade(link, 0.2),

		// Stored text is sanitized on save; sanitize again in case the store
		// was written by something else.
		FooterText: template.HTML(textPolicy.Sanitize(get(themeopt.SettingFooterText))),
	}
}

// CSSVariables renders the styles as a :root custom-property block.
func (s Styles) CSSVariables() template.CSS {
	vars := []struct{ name, value string }{
		{"font-body", s.BodyFont},
		{"font-heading", s.HeadingFont},
		{"font-weight-body", s.BodyWeight},
		{"font-weight-heading", s.HeadingWeight},
		{"font-style-body", s.FontStyle},
		{"font-size-base", s.FontSize},
		{"font-size-heading", s.HeadingSize},
		{"button-padding", s.ButtonPadding},
		{"header-height", s.HeaderHeight},
		{"footer-banner-height", s.FooterHeight},
		{"border-width", s.BorderWidth},
		{"color-primary", s.Primary},
		{"color-on-primary", s.OnPrimary},
		{"color-secondary", s.Secondary},
		{"color-accent", s.Accent},
		{"color-text", s.Text},
		{"color-background", s.Background},
		{"color-link", s.Link},
		{"color-link-hover", s.LinkHover},
	}

	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, v := range vars {
		sb.WriteString("\t--theme-")
		sb.WriteString(v.name)
		sb.WriteString(": ")
		sb.WriteString(v.value)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	// Every value is a table entry or matched a validation rule.
	return template.CSS(sb.String())
}

// TemplateFuncs returns template functions for theme templates and the admin
// settings form.
//
// Usage in templates:
//
//	<style>{{themeCSS .ThemeSettings}}</style>
//	<header class="{{themeHeaderClass .ThemeSettings.header_layout}}">
//	<select name="font_family">{{range themeOptions "font_family"}}...{{end}}</select>
func (m *Manager) TemplateFuncs() template.FuncMap {
	r := m.resolver
	return template.FuncMap{
		"themeFont":         r.ResolveFontFamily,
		"themeWeight":       r.ResolveFontWeight,
		"themeFontStyle":    r.ResolveFontStyle,
		"themeFontSize":     r.ResolveFontSize,
		"themeColor":        r.ResolveColor,
		"themeButtonSize":   r.ResolveButtonSize,
		"themeHeaderClass":  r.ResolveHeaderLayout,
		"themeFooterHeight": r.ResolveFooterHeight,
		"themeTextOn":       themeopt.ReadableTextColor,
		"themeStyles":       r.Styles,
		"themeCSS": func(bundle map[string]string) template.CSS {
			return r.Styles(bundle).CSSVariables()
		},
		"themeOptions": func(table string) []themeopt.Option {
			t, ok := themeopt.TableByName(table)
			if !ok {
				return nil
			}
			return themeopt.Options(t)
		},
	}
}
