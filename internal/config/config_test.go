package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViperConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomo", "settings.json")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg.Settings); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}

	assert.FileExists(t, path)
	assert.Equal(t, path, cfg.SettingsPath)
	assert.Equal(t, 60, cfg.Settings.LongBreakMin)
}

func TestViperConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	want := Settings{
		WorkMin:        50,
		BreakMin:       10,
		LongBreakMin:   30,
		LongBreakAfter: 3,
		WorkTheme:      ThemeGruvboxDark,
		BreakTheme:     ThemeTokyoNightLight,
		SessionCmd:     "notify-send done",
		Notify:         false,
		AlertSound:     true,
		TwentyFourHour: true,
	}

	require.NoError(t, Save(path, want))

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	if diff := cmp.Diff(want, cfg.Settings); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestViperConfigPartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	err := os.WriteFile(path, []byte(`{"work_min": 40}`), 0o600)
	require.NoError(t, err)

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	want := Default()
	want.WorkMin = 40

	assert.Equal(t, want, cfg.Settings)
}

func TestViperConfigCorruptFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	err := os.WriteFile(path, []byte(`{not json`), 0o600)
	require.NoError(t, err)

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg.Settings)
	assert.FileExists(t, path+".corrupt")
}

func TestUnknownThemeFallsBack(t *testing.T) {
	s := Default()
	s.WorkTheme = "neon"

	cfg, err := New(WithSettings(s))
	require.NoError(t, err)

	assert.Equal(t, ThemeSolarizedDark, cfg.Settings.WorkTheme)
}

func TestApplyCLIOptions(t *testing.T) {
	cases := []struct {
		name    string
		opts    CLIOptions
		want    func(s *Settings)
		wantErr error
	}{
		{
			name: "zero values keep settings",
			opts: CLIOptions{},
			want: func(_ *Settings) {},
		},
		{
			name: "overrides durations",
			opts: CLIOptions{WorkMin: 45, BreakMin: 7, LongBreakMin: 20},
			want: func(s *Settings) {
				s.WorkMin = 45
				s.BreakMin = 7
				s.LongBreakMin = 20
			},
		},
		{
			name: "disables notifications",
			opts: CLIOptions{DisableNotify: true, SessionCmd: "echo hi"},
			want: func(s *Settings) {
				s.Notify = false
				s.SessionCmd = "echo hi"
			},
		},
		{
			name:    "rejects out of range work",
			opts:    CLIOptions{WorkMin: 500},
			wantErr: errInvalidDuration,
		},
		{
			name:    "rejects out of range interval",
			opts:    CLIOptions{LongBreakAfter: 11},
			wantErr: errInvalidLongBreakAfter,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Config{Settings: Default()}

			err := applyCLIOptions(c, tc.opts)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, Default(), c.Settings)

				return
			}

			require.NoError(t, err)

			want := Default()
			tc.want(&want)

			assert.Equal(t, want, c.Settings)
		})
	}
}

func TestApplyCLIOptionsKeepsDocumentValues(t *testing.T) {
	s := Default()
	s.LongBreakMin = 90
	s.WorkMin = 300

	c := &Config{Settings: s}
	require.NoError(t, applyCLIOptions(c, CLIOptions{}))
	assert.Equal(t, 90, c.Settings.LongBreakMin)

	require.NoError(t, applyCLIOptions(c, CLIOptions{BreakMin: 10}))
	assert.Equal(t, 10, c.Settings.BreakMin)
	assert.Equal(t, 300, c.Settings.WorkMin)

	err := applyCLIOptions(c, CLIOptions{LongBreakMin: 61})
	require.ErrorIs(t, err, errInvalidDuration)
	assert.Equal(t, 90, c.Settings.LongBreakMin)
}

func TestThemeTitle(t *testing.T) {
	assert.Equal(t, "Solarized Dark", ThemeSolarizedDark.Title())
	assert.Equal(t, "Catppuccin Frappe", ThemeCatppuccinFrappe.Title())
	assert.Equal(t, "TokyoNight Storm", ThemeTokyoNightStorm.Title())
	assert.Equal(t, "Dark", ThemeDark.Title())
}

func TestIntOptionsIncludesCurrent(t *testing.T) {
	opts := intOptions([]int{5, 10}, 7, "%d minutes")

	got := make([]int, 0, len(opts))
	for _, o := range opts {
		got = append(got, o.Value)
	}

	assert.Equal(t, []int{5, 7, 10}, got)
}
