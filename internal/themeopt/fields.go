// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package themeopt

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Field kinds.
const (
	KindOption  = "option"  // value must be a key of Table
	KindPattern = "pattern" // value must match Rule
	KindText    = "text"    // free text, sanitized before storing
)

// MaxTextLength is the maximum length in characters of a text setting.
const MaxTextLength = 500

// Setting names.
const (
	SettingFontFamily         = "font_family"
	SettingHeadingFont        = "heading_font"
	SettingFontWeight         = "font_weight"
	SettingHeadingWeight      = "heading_weight"
	SettingFontStyle          = "font_style"
	SettingFontSize           = "font_size"
	SettingHeadingSize        = "heading_size"
	SettingButtonSize         = "button_size"
	SettingHeaderLayout       = "header_layout"
	SettingHeaderHeight       = "header_height"
	SettingFooterBannerHeight = "footer_banner_height"
	SettingBorderWidth        = "border_width"
	SettingPrimaryColor       = "primary_color"
	SettingSecondaryColor     = "secondary_color"
	SettingAccentColor        = "accent_color"
	SettingTextColor          = "text_color"
	SettingBackgroundColor    = "background_color"
	SettingLinkColor          = "link_color"
	SettingFooterText         = "footer_text"
)

// Field describes one persisted theme setting.
type Field struct {
	Name  string
	Label string
	Kind  string
	Table *Table // KindOption only
	Rule  string // KindPattern only
}

var fields = []Field{
	{Name: SettingFontFamily, Label: "Body font", Kind: KindOption, Table: Fonts},
	{Name: SettingHeadingFont, Label: "Heading font", Kind: KindOption, Table: Fonts},
	{Name: SettingFontWeight, Label: "Body font weight", Kind: KindOption, Table: FontWeights},
	{Name: SettingHeadingWeight, Label: "Heading font weight", Kind: KindOption, Table: FontWeights},
	{Name: SettingFontStyle, Label: "Body font style", Kind: KindOption, Table: FontStyles},
	{Name: SettingFontSize, Label: "Base font size", Kind: KindPattern, Rule: RuleFontSize},
	{Name: SettingHeadingSize, Label: "Heading size", Kind: KindOption, Table: FontSizes},
	{Name: SettingButtonSize, Label: "Button size", Kind: KindOption, Table: ButtonSizes},
	{Name: SettingHeaderLayout, Label: "Header layout", Kind: KindOption, Table: HeaderLayouts},
	{Name: SettingHeaderHeight, Label: "Header height", Kind: KindPattern, Rule: RuleHeight},
	{Name: SettingFooterBannerHeight, Label: "Footer banner height", Kind: KindOption, Table: FooterBannerHeights},
	{Name: SettingBorderWidth, Label: "Border width", Kind: KindPattern, Rule: RuleBorderWidth},
	{Name: SettingPrimaryColor, Label: "Primary color", Kind: KindPattern, Rule: RuleColor},
	{Name: SettingSecondaryColor, Label: "Secondary color", Kind: KindPattern, Rule: RuleColor},
	{Name: SettingAccentColor, Label: "Accent color", Kind: KindPattern, Rule: RuleColor},
	{Name: SettingTextColor, Label: "Text color", Kind: KindPattern, Rule: RuleColor},
	{Name: SettingBackgroundColor, Label: "Background color", Kind: KindPattern, Rule: RuleColor},
	{Name: SettingLinkColor, Label: "Link color", Kind: KindPattern, Rule: RuleColor},
	{Name: SettingFooterText, Label: "Footer text", Kind: KindText},
}

var fieldIndex = func() map[string]int {
	m := make(map[string]int, len(fields))
	for i, f := range fields {
		m[f.Name] = i
	}
	return m
}()

// Fields returns the settings schema in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldByName returns the field definition for name.
func FieldByName(name string) (Field, bool) {
	i, ok := fieldIndex[name]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}

var ruleMessages = map[string]string{
	RuleColor:       "invalid_color",
	RuleFontSize:    "invalid_font_size",
	RuleHeight:      "invalid_height",
	RuleBorderWidth: "invalid_border_width",
}

// ValidationError describes a rejected setting value.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationErrors collects every rejected value of a settings bundle.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return ErrorMessage("invalid_settings", len(errs)) + ": " + strings.Join(msgs, "; ")
}

// ValidateSetting checks a single value against the schema.
func ValidateSetting(name, value string) error {
	f, ok := FieldByName(name)
	if !ok {
		return &ValidationError{Field: name, Value: value, Message: ErrorMessage("unknown_setting", name)}
	}

	switch f.Kind {
	case KindOption:
		if !f.Table.Has(value) {
			return &ValidationError{Field: name, Value: value, Message: ErrorMessage("invalid_option", name, value)}
		}
	case KindPattern:
		if !Matches(f.Rule, value) {
			return &ValidationError{Field: name, Value: value, Message: ErrorMessage(ruleMessages[f.Rule], name, value)}
		}
	case KindText:
		if utf8.RuneCountInString(value) > MaxTextLength {
			return &ValidationError{Field: name, Value: value, Message: ErrorMessage("text_too_long", name, MaxTextLength)}
		}
	}
	return nil
}

// ValidateSettings checks every value in values. It returns nil when all are
// valid, otherwise ValidationErrors sorted by field name.
func ValidateSettings(values map[string]string) error {
	var errs ValidationErrors
	for name, value := range values {
		if err := ValidateSetting(name, value); err != nil {
			errs = append(errs, err.(*ValidationError))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}
