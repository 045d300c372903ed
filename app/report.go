package app

import (
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/stats"
	"github.com/ayoisaiah/pomo/store"
)

// reportAction prints the streaks and the report history.
func reportAction(ctx *cli.Context) error {
	now := time.Now()

	r, err := stats.ParseRange(ctx.String("period"), ctx.String("since"), now)
	if err != nil {
		return err
	}

	l := newFiles().LoadReport()

	return stats.ShowReport(os.Stdout, l, timeutil.DateOf(now), r, ctx.Bool("json"))
}

func reportExportAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errMissingArg.Fmt("a file path")
	}

	files := newFiles()

	if err := files.ExportReport(path, files.LoadReport()); err != nil {
		return err
	}

	pterm.Success.Printfln("Report exported to %s", path)

	return nil
}

func reportImportAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errMissingArg.Fmt("a file path")
	}

	c, p, err := documents()
	if err != nil {
		return err
	}

	defer p.Close()

	if err := c.ImportReport(path); err != nil {
		return err
	}

	if p.err != nil {
		return p.err
	}

	pterm.Success.Printfln("Report imported from %s", path)

	return nil
}

func reportClearAction(_ *cli.Context) error {
	c, p, err := documents()
	if err != nil {
		return err
	}

	defer p.Close()

	var confirmed bool

	err = huh.NewConfirm().
		Title("Delete the report history?").
		Description("Your streaks and daily totals will be lost").
		Value(&confirmed).
		Run()
	if err != nil || !confirmed {
		return err
	}

	c.ClearReport()

	return p.err
}

// sessionsAction prints the finished work sessions.
func sessionsAction(ctx *cli.Context) error {
	r, err := stats.ParseRange(ctx.String("period"), ctx.String("since"), time.Now())
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	segs, err := db.Segments(r.Start, r.End)
	if err != nil {
		return err
	}

	names := make(map[uint64]string)
	for _, t := range newFiles().LoadTasks() {
		names[t.ID] = t.Desc
	}

	return stats.ShowSessions(os.Stdout, segs, names, r, ctx.Bool("json"))
}
