// Package stats prints the report history and the segment log for the
// command-line interface
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
)

const (
	barChartChar = "▇"
	dateFormat   = "January 02, 2006"
)

// bar is one labelled value of a breakdown chart.
type bar struct {
	label string
	value time.Duration
}

// Humanize formats d with at most two units, hours being the largest.
func Humanize(d time.Duration) string {
	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(d).LimitToUnit("hours").LimitFirstN(2).String()
}

func periodHeader(start, end time.Time) string {
	timePeriod := "Reporting period: " + start.Format(dateFormat) +
		" - " + end.Format(dateFormat)

	return pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)
}

func section(title string) string {
	return fmt.Sprintf("\n%s\n", ui.Cyan(title))
}

// barChart renders a horizontal chart of bars in minutes. Charts where
// every bar is empty are omitted.
func barChart(title string, bars []bar) string {
	var (
		pbars pterm.Bars
		total time.Duration
	)

	for _, b := range bars {
		total += b.value

		pbars = append(pbars, pterm.Bar{
			Value: timeutil.Round(b.value.Minutes()),
			Label: b.label,
		})
	}

	if total == 0 {
		return ""
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(pbars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return section(title+" (minutes)") + chart
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func info(w io.Writer, msg string) {
	pterm.Info.WithWriter(w).Println(msg)
}
