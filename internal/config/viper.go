package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

const (
	keyWorkMin        = "work_min"
	keyBreakMin       = "break_min"
	keyLongBreakMin   = "long_break_min"
	keyLongBreakAfter = "long_break_after"
	keyWorkTheme      = "work_theme"
	keyBreakTheme     = "break_theme"
	keyNotify         = "notify"
	keyAlertSound     = "alert_sound"
	keySessionCmd     = "session_cmd"
	keyTwentyFourHour = "twenty_four_hour"
)

// WithViperConfig returns an Option that loads settings from the JSON
// settings document at configPath. A missing document is created with the
// defaults. An unreadable one is moved aside and replaced by the defaults.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		c.SettingsPath = configPath

		v := newViper(configPath)
		setDefaults(v, c.Settings)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn(
				"settings file unreadable, falling back to defaults",
				slog.String("path", configPath),
				slog.Any("error", err),
			)

			_ = os.Rename(configPath, configPath+".corrupt")
		}

		if err := writeViper(v, configPath); err != nil {
			return err
		}

		return loadViperConfig(v, c)
	}
}

// Save persists s as the settings document at configPath.
func Save(configPath string, s Settings) error {
	v := newViper(configPath)
	setValues(v, s)

	return writeViper(v, configPath)
}

// Load reads the settings document at configPath without creating it.
func Load(configPath string) (Settings, error) {
	v := newViper(configPath)
	setDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		return Default(), errReadConfig.Wrap(err)
	}

	c := &Config{}
	if err := loadViperConfig(v, c); err != nil {
		return Default(), err
	}

	return c.Settings, nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("json")

	return v
}

func setDefaults(v *viper.Viper, s Settings) {
	v.SetDefault(keyWorkMin, s.WorkMin)
	v.SetDefault(keyBreakMin, s.BreakMin)
	v.SetDefault(keyLongBreakMin, s.LongBreakMin)
	v.SetDefault(keyLongBreakAfter, s.LongBreakAfter)
	v.SetDefault(keyWorkTheme, string(s.WorkTheme))
	v.SetDefault(keyBreakTheme, string(s.BreakTheme))
	v.SetDefault(keyNotify, s.Notify)
	v.SetDefault(keyAlertSound, s.AlertSound)
	v.SetDefault(keySessionCmd, s.SessionCmd)
	v.SetDefault(keyTwentyFourHour, s.TwentyFourHour)
}

func setValues(v *viper.Viper, s Settings) {
	v.Set(keyWorkMin, s.WorkMin)
	v.Set(keyBreakMin, s.BreakMin)
	v.Set(keyLongBreakMin, s.LongBreakMin)
	v.Set(keyLongBreakAfter, s.LongBreakAfter)
	v.Set(keyWorkTheme, string(s.WorkTheme))
	v.Set(keyBreakTheme, string(s.BreakTheme))
	v.Set(keyNotify, s.Notify)
	v.Set(keyAlertSound, s.AlertSound)
	v.Set(keySessionCmd, s.SessionCmd)
	v.Set(keyTwentyFourHour, s.TwentyFourHour)
}

func writeViper(v *viper.Viper, configPath string) error {
	err := os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
	if err != nil {
		return errWriteConfig.Wrap(err)
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}

// loadViperConfig loads settings from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	var s Settings

	if err := v.Unmarshal(&s); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.Settings = s

	return nil
}
