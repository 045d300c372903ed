package ui

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomo/internal/config"
)

func TestEveryThemeHasPalette(t *testing.T) {
	for _, theme := range config.Themes {
		_, ok := palettes[theme]
		assert.True(t, ok, "missing palette for %s", theme)
	}
}

func TestPaletteForUnknownTheme(t *testing.T) {
	assert.Equal(
		t,
		palettes[config.ThemeSolarizedDark],
		PaletteFor(config.Theme("neon")),
	)
}

func TestColorsFollowBackground(t *testing.T) {
	pterm.EnableColor()

	t.Cleanup(func() {
		Dark = true
	})

	Dark = true
	assert.Equal(t, pterm.LightGreen("ok"), Green("ok"))
	assert.Equal(t, pterm.LightCyan("ok"), Cyan("ok"))

	Dark = false
	assert.Equal(t, pterm.Green("ok"), Green("ok"))
	assert.Equal(t, pterm.Cyan("ok"), Cyan("ok"))
}
