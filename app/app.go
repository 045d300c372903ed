// Package app defines the pomo command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/ui"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	ui.DisableColor()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomo app instance.
func Get() *cli.App {
	rangeFlags := []cli.Flag{periodFlag, sinceFlag, jsonFlag}

	return &cli.App{
		Name: "pomo",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Pomo is a pomodoro timer and task list for the terminal. Time spent in
		work sessions is credited to the active task and rolled into a daily
		report when you end the day.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "tasks",
				Usage:  "List the tasks",
				Flags:  []cli.Flag{jsonFlag, sortFlag},
				Action: tasksAction,
			},
			{
				Name:      "add",
				Usage:     "Add a task",
				ArgsUsage: "<description>",
				Action:    addAction,
			},
			{
				Name:      "done",
				Usage:     "Toggle the completion of a task",
				ArgsUsage: "<id>",
				Action:    doneAction,
			},
			{
				Name:      "rm",
				Usage:     "Delete a task",
				ArgsUsage: "<id>",
				Action:    rmAction,
			},
			{
				Name:   "end-day",
				Usage:  "Move the completed tasks into today's report",
				Action: endDayAction,
			},
			{
				Name:   "report",
				Usage:  "Show your streaks and the daily report history",
				Flags:  rangeFlags,
				Action: reportAction,
				Subcommands: []*cli.Command{
					{
						Name:      "export",
						Usage:     "Write the report to a file",
						ArgsUsage: "<path>",
						Action:    reportExportAction,
					},
					{
						Name:      "import",
						Usage:     "Replace the report with the contents of a file",
						ArgsUsage: "<path>",
						Action:    reportImportAction,
					},
					{
						Name:   "clear",
						Usage:  "Delete the report history",
						Action: reportClearAction,
					},
				},
			},
			{
				Name:   "sessions",
				Usage:  "List the finished work sessions",
				Flags:  rangeFlags,
				Action: sessionsAction,
			},
			{
				Name:   "settings",
				Usage:  "Change the settings interactively",
				Action: settingsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the settings file",
				Action: editConfigAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			workFlag,
			breakFlag,
			longBreakFlag,
			longBreakAfterFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			freshFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
