// Package config is responsible for setting the program config from
// the settings file and command-line arguments
package config

import (
	"fmt"
	"time"
)

type (
	// Config holds the settings for the current run of the program together
	// with the options that only apply to it.
	Config struct {
		Settings     Settings
		SettingsPath string
		// Fresh discards any saved timer snapshot on startup
		Fresh bool
	}

	// Settings is the persisted settings document. Minutes are kept as
	// integers to match the file format.
	Settings struct {
		WorkMin        int    `mapstructure:"work_min"         json:"work_min"`
		BreakMin       int    `mapstructure:"break_min"        json:"break_min"`
		LongBreakMin   int    `mapstructure:"long_break_min"   json:"long_break_min"`
		LongBreakAfter int    `mapstructure:"long_break_after" json:"long_break_after"`
		WorkTheme      Theme  `mapstructure:"work_theme"       json:"work_theme"`
		BreakTheme     Theme  `mapstructure:"break_theme"      json:"break_theme"`
		SessionCmd     string `mapstructure:"session_cmd"      json:"session_cmd"`
		Notify         bool   `mapstructure:"notify"           json:"notify"`
		AlertSound     bool   `mapstructure:"alert_sound"      json:"alert_sound"`
		TwentyFourHour bool   `mapstructure:"twenty_four_hour" json:"twenty_four_hour"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	defaultWorkMinutes      = 25
	defaultBreakMinutes     = 5
	defaultLongBreakMinutes = 60
	defaultLongBreakAfter   = 4
)

// Default returns the settings used when no settings document exists or it
// cannot be read.
func Default() Settings {
	return Settings{
		WorkMin:        defaultWorkMinutes,
		BreakMin:       defaultBreakMinutes,
		LongBreakMin:   defaultLongBreakMinutes,
		LongBreakAfter: defaultLongBreakAfter,
		WorkTheme:      ThemeSolarizedDark,
		BreakTheme:     ThemeSolarizedLight,
		Notify:         true,
		AlertSound:     true,
	}
}

// WorkDuration is the full length of a work segment.
func (s Settings) WorkDuration() time.Duration {
	return minutes(s.WorkMin)
}

// BreakDuration is the full length of a short break.
func (s Settings) BreakDuration() time.Duration {
	return minutes(s.BreakMin)
}

// LongBreakDuration is the full length of a long break.
func (s Settings) LongBreakDuration() time.Duration {
	return minutes(s.LongBreakMin)
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		Settings: Default(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	cfg.Settings.WorkTheme = cfg.Settings.WorkTheme.Or(ThemeSolarizedDark)
	cfg.Settings.BreakTheme = cfg.Settings.BreakTheme.Or(ThemeSolarizedLight)

	return cfg, nil
}

// WithSettings returns an Option that replaces the settings wholesale.
func WithSettings(s Settings) Option {
	return func(c *Config) error {
		c.Settings = s

		return nil
	}
}

func (s Settings) String() string {
	return fmt.Sprintf(
		"work=%dm break=%dm long_break=%dm long_break_after=%d",
		s.WorkMin,
		s.BreakMin,
		s.LongBreakMin,
		s.LongBreakAfter,
	)
}
