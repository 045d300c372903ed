package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options. Zero values
// leave the corresponding setting untouched.
type CLIOptions struct {
	SessionCmd     string
	WorkMin        uint
	BreakMin       uint
	LongBreakMin   uint
	LongBreakAfter uint
	DisableNotify  bool
	Fresh          bool
}

// WithCLIConfig returns an Option that overrides settings from CLI flags for
// the current run only. Overrides are validated but never persisted.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			WorkMin:        ctx.Uint("work"),
			BreakMin:       ctx.Uint("break"),
			LongBreakMin:   ctx.Uint("long-break"),
			LongBreakAfter: ctx.Uint("long-break-after"),
			SessionCmd:     ctx.String("session-cmd"),
			DisableNotify:  ctx.Bool("disable-notification"),
			Fresh:          ctx.Bool("fresh"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config. Only the values a flag
// sets are validated; settings read from the document are kept as they are.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	s := c.Settings

	if opts.WorkMin > 0 {
		s.WorkMin = int(opts.WorkMin)
		if err := validateWork(s.WorkMin); err != nil {
			return err
		}
	}

	if opts.BreakMin > 0 {
		s.BreakMin = int(opts.BreakMin)
		if err := validateBreak("break", s.BreakMin); err != nil {
			return err
		}
	}

	if opts.LongBreakMin > 0 {
		s.LongBreakMin = int(opts.LongBreakMin)
		if err := validateBreak("long break", s.LongBreakMin); err != nil {
			return err
		}
	}

	if opts.LongBreakAfter > 0 {
		s.LongBreakAfter = int(opts.LongBreakAfter)
		if err := validateLongBreakAfter(s.LongBreakAfter); err != nil {
			return err
		}
	}

	if opts.SessionCmd != "" {
		s.SessionCmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		s.Notify = false
	}

	c.Settings = s
	c.Fresh = opts.Fresh

	return nil
}
