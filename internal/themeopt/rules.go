// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package themeopt

import "regexp"

// Validation rule names.
const (
	RuleColor       = "color"
	RuleFontSize    = "font_size"
	RuleHeight      = "height"
	RuleBorderWidth = "border_width"
)

var rulePatterns = map[string]string{
	RuleColor:       `^#[0-9A-Fa-f]{6}$`,
	RuleFontSize:    `^\d+(\.\d+)?(rem|px|em|%)$`,
	RuleHeight:      `^\d+(\.\d+)?(px|rem|em|vh)$`,
	RuleBorderWidth: `^\d+(\.\d+)?px$`,
}

var compiledRules = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(rulePatterns))
	for name, pattern := range rulePatterns {
		m[name] = regexp.MustCompile(pattern)
	}
	return m
}()

// Rules returns a copy of the rule name to pattern mapping.
func Rules() map[string]string {
	m := make(map[string]string, len(rulePatterns))
	for k, v := range rulePatterns {
		m[k] = v
	}
	return m
}

// Matches reports whether value satisfies the named rule.
// Unknown rules never match.
func Matches(rule, value string) bool {
	re, ok := compiledRules[rule]
	if !ok {
		return false
	}
	return re.MatchString(value)
}

// IsValidColor reports whether value is a 6-digit hex color such as #1A5490.
func IsValidColor(value string) bool {
	return Matches(RuleColor, value)
}

// IsValidFontSize reports whether value is a number followed by rem, px, em or %.
func IsValidFontSize(value string) bool {
	return Matches(RuleFontSize, value)
}

// IsValidHeight reports whether value is a CSS height in px, rem, em or vh.
func IsValidHeight(value string) bool {
	return Matches(RuleHeight, value)
}

// IsValidBorderWidth reports whether value is a pixel border width.
func IsValidBorderWidth(value string) bool {
	return Matches(RuleBorderWidth, value)
}
