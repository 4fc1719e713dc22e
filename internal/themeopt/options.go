// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package themeopt

// SystemFontStack is the font-family stack used when no font is chosen.
const SystemFontStack = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`

// Font groups.
const (
	FontGroupSans      = "sans-serif"
	FontGroupSerif     = "serif"
	FontGroupDisplay   = "display"
	FontGroupMonospace = "monospace"
)

// Fonts maps font keys to CSS font-family stacks.
var Fonts = newTable("font_family", "system",
	// Sans-serif
	"system", SystemFontStack,
	"helvetica", `"Helvetica Neue", Helvetica, Arial, sans-serif`,
	"arial", `Arial, "Helvetica Neue", sans-serif`,
	"verdana", `Verdana, Geneva, sans-serif`,
	"tahoma", `Tahoma, Verdana, sans-serif`,
	"trebuchet", `"Trebuchet MS", Helvetica, sans-serif`,
	"open-sans", `"Open Sans", Arial, sans-serif`,
	"roboto", `Roboto, Arial, sans-serif`,
	"lato", `Lato, "Helvetica Neue", sans-serif`,
	"montserrat", `Montserrat, Arial, sans-serif`,
	"source-sans", `"Source Sans Pro", Arial, sans-serif`,
	"inter", `Inter, "Helvetica Neue", sans-serif`,
	"noto-sans", `"Noto Sans", Arial, sans-serif`,
	"raleway", `Raleway, Arial, sans-serif`,

	// Serif
	"georgia", `Georgia, "Times New Roman", serif`,
	"times", `"Times New Roman", Times, serif`,
	"garamond", `Garamond, Baskerville, serif`,
	"palatino", `"Palatino Linotype", Palatino, serif`,
	"merriweather", `Merriweather, Georgia, serif`,
	"playfair", `"Playfair Display", Georgia, serif`,
	"libre-baskerville", `"Libre Baskerville", Georgia, serif`,
	"lora", `Lora, Georgia, serif`,
	"crimson", `"Crimson Text", Georgia, serif`,

	// Display
	"oswald", `Oswald, Impact, sans-serif`,
	"bebas", `"Bebas Neue", Impact, sans-serif`,
	"abril", `"Abril Fatface", Georgia, serif`,
	"lobster", `Lobster, Georgia, cursive`,
	"pacifico", `Pacifico, cursive`,

	// Monospace
	"courier", `"Courier New", Courier, monospace`,
	"consolas", `Consolas, Monaco, monospace`,
	"source-code", `"Source Code Pro", Consolas, monospace`,
	"fira-code", `"Fira Code", Consolas, monospace`,
	"jetbrains-mono", `"JetBrains Mono", Consolas, monospace`,
)

var fontGroups = map[string]string{
	"system": FontGroupSans, "helvetica": FontGroupSans, "arial": FontGroupSans,
	"verdana": FontGroupSans, "tahoma": FontGroupSans, "trebuchet": FontGroupSans,
	"open-sans": FontGroupSans, "roboto": FontGroupSans, "lato": FontGroupSans,
	"montserrat": FontGroupSans, "source-sans": FontGroupSans, "inter": FontGroupSans,
	"noto-sans": FontGroupSans, "raleway": FontGroupSans,

	"georgia": FontGroupSerif, "times": FontGroupSerif, "garamond": FontGroupSerif,
	"palatino": FontGroupSerif, "merriweather": FontGroupSerif, "playfair": FontGroupSerif,
	"libre-baskerville": FontGroupSerif, "lora": FontGroupSerif, "crimson": FontGroupSerif,

	"oswald": FontGroupDisplay, "bebas": FontGroupDisplay, "abril": FontGroupDisplay,
	"lobster": FontGroupDisplay, "pacifico": FontGroupDisplay,

	"courier": FontGroupMonospace, "consolas": FontGroupMonospace, "source-code": FontGroupMonospace,
	"fira-code": FontGroupMonospace, "jetbrains-mono": FontGroupMonospace,
}

// FontGroup returns the family group of a font key, or "" if unknown.
func FontGroup(key string) string {
	return fontGroups[key]
}

// FontWeights maps weight names to numeric CSS weights.
var FontWeights = newTable("font_weight", "normal",
	"light", "300",
	"normal", "400",
	"medium", "500",
	"semibold", "600",
	"bold", "700",
)

// FontStyles maps style names to CSS font-style values.
var FontStyles = newTable("font_style", "normal",
	"normal", "normal",
	"italic", "italic",
	"oblique", "oblique",
)

// FontSizes maps named sizes to CSS lengths.
var FontSizes = newTable("font_size", "medium",
	"small", "0.875rem",
	"medium", "1rem",
	"large", "1.125rem",
	"x-large", "1.25rem",
	"xx-large", "1.5rem",
)

// ButtonSizes maps button sizes to CSS padding shorthands.
var ButtonSizes = newTable("button_size", "medium",
	"small", "0.375rem 0.75rem",
	"medium", "0.5rem 1rem",
	"large", "0.75rem 1.5rem",
)

// HeaderLayouts maps header layout keys to CSS class tokens.
var HeaderLayouts = newTable("header_layout", "logo-left",
	"logo-left", "header--logo-left",
	"logo-center", "header--logo-center",
	"logo-right", "header--logo-right",
	"stacked", "header--stacked",
)

// FooterBannerHeights maps footer banner sizes to CSS heights.
var FooterBannerHeights = newTable("footer_banner_height", "medium",
	"none", "0px",
	"small", "80px",
	"medium", "120px",
	"large", "180px",
)

// Colors is the named palette.
var Colors = newTable("color", "primary",
	"primary", "#1a5490",
	"secondary", "#2c3e50",
	"accent", "#e67e22",
	"text", "#333333",
	"muted", "#6b7280",
	"background", "#ffffff",
	"surface", "#f5f5f5",
	"border", "#dddddd",
	"link", "#1a5490",
	"link-hover", "#0f3a66",
	"success", "#10b981",
	"warning", "#f59e0b",
	"danger", "#ef4444",
)

// tables indexes every option table by name.
var tables = map[string]*Table{
	Fonts.Name():               Fonts,
	FontWeights.Name():         FontWeights,
	FontStyles.Name():          FontStyles,
	FontSizes.Name():           FontSizes,
	ButtonSizes.Name():         ButtonSizes,
	HeaderLayouts.Name():       HeaderLayouts,
	FooterBannerHeights.Name(): FooterBannerHeights,
	Colors.Name():              Colors,
}

// TableByName returns the option table with the given category name.
func TableByName(name string) (*Table, bool) {
	t, ok := tables[name]
	return t, ok
}
