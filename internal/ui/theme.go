package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomo/internal/config"
)

// Palette is the set of colours a theme contributes to the timer view.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Done       lipgloss.Color
}

var palettes = map[config.Theme]Palette{
	config.ThemeCatppuccinFrappe: {
		Background: "#303446",
		Foreground: "#c6d0f5",
		Accent:     "#ca9ee6",
		Muted:      "#737994",
		Done:       "#a6d189",
	},
	config.ThemeCatppuccinLatte: {
		Background: "#eff1f5",
		Foreground: "#4c4f69",
		Accent:     "#8839ef",
		Muted:      "#9ca0b0",
		Done:       "#40a02b",
	},
	config.ThemeDark: {
		Background: "#1e1e1e",
		Foreground: "#e0e0e0",
		Accent:     "#ff6b6b",
		Muted:      "#7a7a7a",
		Done:       "#69db7c",
	},
	config.ThemeLight: {
		Background: "#fafafa",
		Foreground: "#212121",
		Accent:     "#d32f2f",
		Muted:      "#9e9e9e",
		Done:       "#388e3c",
	},
	config.ThemeGruvboxDark: {
		Background: "#282828",
		Foreground: "#ebdbb2",
		Accent:     "#fe8019",
		Muted:      "#928374",
		Done:       "#b8bb26",
	},
	config.ThemeGruvboxLight: {
		Background: "#fbf1c7",
		Foreground: "#3c3836",
		Accent:     "#af3a03",
		Muted:      "#928374",
		Done:       "#79740e",
	},
	config.ThemeSolarizedDark: {
		Background: "#002b36",
		Foreground: "#93a1a1",
		Accent:     "#cb4b16",
		Muted:      "#586e75",
		Done:       "#859900",
	},
	config.ThemeSolarizedLight: {
		Background: "#fdf6e3",
		Foreground: "#586e75",
		Accent:     "#268bd2",
		Muted:      "#93a1a1",
		Done:       "#859900",
	},
	config.ThemeTokyoNightStorm: {
		Background: "#24283b",
		Foreground: "#c0caf5",
		Accent:     "#7aa2f7",
		Muted:      "#565f89",
		Done:       "#9ece6a",
	},
	config.ThemeTokyoNightLight: {
		Background: "#d5d6db",
		Foreground: "#343b58",
		Accent:     "#34548a",
		Muted:      "#9699a3",
		Done:       "#485e30",
	},
}

// PaletteFor returns the palette of t, or the solarized dark palette when t
// is unknown.
func PaletteFor(t config.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}

	return palettes[config.ThemeSolarizedDark]
}

// Styles are the lipgloss styles the timer view renders with.
type Styles struct {
	Base    lipgloss.Style
	Title   lipgloss.Style
	Clock   lipgloss.Style
	Help    lipgloss.Style
	Task    lipgloss.Style
	Active  lipgloss.Style
	Done    lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles derives the view styles from p.
func NewStyles(p Palette) Styles {
	base := lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Background)

	return Styles{
		Base:    base.Padding(1, 2),
		Title:   base.Bold(true).Foreground(p.Accent),
		Clock:   base.Bold(true).Foreground(p.Foreground),
		Help:    base.Foreground(p.Muted),
		Task:    base,
		Active:  base.Bold(true).Foreground(p.Accent),
		Done:    base.Strikethrough(true).Foreground(p.Done),
		Warning: base.Foreground(p.Accent).Italic(true),
	}
}
