package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██████╗  ██████╗ ███╗   ███╗ ██████╗
██╔══██╗██╔═══██╗████╗ ████║██╔═══██╗
██████╔╝██║   ██║██╔████╔██║██║   ██║
██╔═══╝ ██║   ██║██║╚██╔╝██║██║   ██║
██║     ╚██████╔╝██║ ╚═╝ ██║╚██████╔╝
╚═╝      ╚═════╝ ╚═╝     ╚═╝ ╚═════╝`

var (
	workChoices           = []int{15, 25, 35, 45, 50, 60, 90}
	breakChoices          = []int{3, 5, 10, 15}
	longBreakChoices      = []int{15, 20, 30, 45, 60}
	longBreakAfterChoices = []int{2, 3, 4, 5, 6, 8}
)

// WithPromptConfig returns an Option that asks for the initial settings
// when no settings document exists yet and writes the answers to it.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return nil
		}

		pterm.Println(asciiLogo)

		_ = putils.BulletListFromString(`Follow the prompts below to configure Pomo for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Run 'pomo settings' or 'pomo edit-config' to change any settings later.`, " ").
			Render()

		s, err := Prompt(c.Settings)
		if err != nil {
			return err
		}

		c.Settings = s

		return Save(configPath, s)
	}
}

// Prompt runs the interactive settings editor starting from current and
// returns the submitted settings. Cancelling the form returns an error and
// leaves current untouched.
func Prompt(current Settings) (Settings, error) {
	s := current

	form := huh.NewForm(
		huh.NewGroup(
			minutesSelect("Work session length", workChoices, &s.WorkMin),
			minutesSelect("Short break length", breakChoices, &s.BreakMin),
			minutesSelect(
				"Long break length",
				longBreakChoices,
				&s.LongBreakMin,
			),
			huh.NewSelect[int]().
				Title("Work sessions before long break").
				Options(intOptions(longBreakAfterChoices, s.LongBreakAfter, "%d sessions")...).
				Value(&s.LongBreakAfter),
		),
		huh.NewGroup(
			themeSelect("Work theme", &s.WorkTheme),
			themeSelect("Break theme", &s.BreakTheme),
			huh.NewConfirm().
				Title("Desktop notifications").
				Value(&s.Notify),
			huh.NewConfirm().
				Title("Alert sound").
				Value(&s.AlertSound),
			huh.NewConfirm().
				Title("Use 24-hour clock").
				Value(&s.TwentyFourHour),
			huh.NewInput().
				Title("Command to run when a session ends").
				Placeholder("leave empty to disable").
				Value(&s.SessionCmd),
		),
	)

	if err := form.Run(); err != nil {
		return current, errPromptFailed.Wrap(err)
	}

	if err := s.Validate(); err != nil {
		return current, err
	}

	return s, nil
}

func minutesSelect(title string, choices []int, value *int) *huh.Select[int] {
	return huh.NewSelect[int]().
		Title(title).
		Options(intOptions(choices, *value, "%d minutes")...).
		Value(value)
}

func themeSelect(title string, value *Theme) *huh.Select[Theme] {
	opts := make([]huh.Option[Theme], 0, len(Themes))

	for _, t := range Themes {
		opts = append(opts, huh.NewOption(t.Title(), t).Selected(t == *value))
	}

	return huh.NewSelect[Theme]().
		Title(title).
		Options(opts...).
		Value(value)
}

// intOptions builds select options for choices. The current value is
// included even when it is not one of the presets.
func intOptions(choices []int, current int, format string) []huh.Option[int] {
	values := slices.Clone(choices)
	if current > 0 && !slices.Contains(values, current) {
		values = append(values, current)
		slices.Sort(values)
	}

	opts := make([]huh.Option[int], 0, len(values))

	for _, v := range values {
		opts = append(
			opts,
			huh.NewOption(fmt.Sprintf(format, v), v).Selected(v == current),
		)
	}

	return opts
}
