package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	workFlag = &cli.UintFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes (default: 25)",
	}

	breakFlag = &cli.UintFlag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Short break duration in minutes (default: 5)",
	}

	longBreakFlag = &cli.UintFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (default: 60)",
	}

	longBreakAfterFlag = &cli.UintFlag{
		Name:    "long-break-after",
		Aliases: []string{"a"},
		Usage:   "The number of work sessions before a long break (default: 4)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	freshFlag = &cli.BoolFlag{
		Name:  "fresh",
		Usage: "Ignore the paused timer from the previous run",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort tasks by id, name or spent",
		Value: "id",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: all-time, today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Report from this date onwards (e.g. '2 weeks ago', 'last monday', '2026-03-01')",
	}
)
