package config

import "strings"

// Theme identifies a colour theme applied to work or break segments.
type Theme string

const (
	ThemeCatppuccinFrappe Theme = "catppuccin_frappe"
	ThemeCatppuccinLatte  Theme = "catppuccin_latte"
	ThemeDark             Theme = "dark"
	ThemeLight            Theme = "light"
	ThemeGruvboxDark      Theme = "gruvbox_dark"
	ThemeGruvboxLight     Theme = "gruvbox_light"
	ThemeSolarizedDark    Theme = "solarized_dark"
	ThemeSolarizedLight   Theme = "solarized_light"
	ThemeTokyoNightStorm  Theme = "tokyonight_storm"
	ThemeTokyoNightLight  Theme = "tokyonight_light"
)

// Themes lists every supported theme in display order.
var Themes = []Theme{
	ThemeCatppuccinFrappe,
	ThemeCatppuccinLatte,
	ThemeDark,
	ThemeLight,
	ThemeGruvboxDark,
	ThemeGruvboxLight,
	ThemeSolarizedDark,
	ThemeSolarizedLight,
	ThemeTokyoNightStorm,
	ThemeTokyoNightLight,
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	for _, v := range Themes {
		if v == t {
			return true
		}
	}

	return false
}

// Or returns t if it is valid, otherwise fallback.
func (t Theme) Or(fallback Theme) Theme {
	if t.Valid() {
		return t
	}

	return fallback
}

// Title returns a human readable theme name.
func (t Theme) Title() string {
	switch t {
	case ThemeTokyoNightStorm:
		return "TokyoNight Storm"
	case ThemeTokyoNightLight:
		return "TokyoNight Light"
	}

	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}

		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
