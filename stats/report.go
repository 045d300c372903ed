package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/report"
)

const noReportsMsg = "No reports found for the specified time range"

type dayJSON struct {
	Date      string `json:"date"`
	Focused   int64  `json:"focused"`
	Completed int    `json:"completed"`
}

type reportJSON struct {
	History        []dayJSON `json:"history"`
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	FocusedToday   int64     `json:"focused_today"`
	LongestFocused int64     `json:"longest_focused"`
}

// ShowReport prints the ledger summary as of today followed by the days
// recorded within r.
func ShowReport(
	w io.Writer,
	l *report.Ledger,
	today timeutil.Date,
	r Range,
	asJSON bool,
) error {
	summary := l.Summarize(today)
	history := l.Between(r.Dates())

	if asJSON {
		out := reportJSON{
			History:        make([]dayJSON, 0, len(history)),
			CurrentStreak:  summary.CurrentStreak,
			LongestStreak:  summary.LongestStreak,
			FocusedToday:   timeutil.ToSeconds(summary.FocusedToday),
			LongestFocused: timeutil.ToSeconds(summary.LongestFocused),
		}

		for _, d := range history {
			out.History = append(out.History, dayJSON{
				Date:      d.Date.String(),
				Focused:   timeutil.ToSeconds(d.Focused),
				Completed: d.Completed,
			})
		}

		return printJSON(w, out)
	}

	start := r.Start
	if r.AllTime() && len(history) > 0 {
		start = history[0].Date.Time(r.End.Location())
	}

	var b strings.Builder

	b.WriteString(periodHeader(start, r.End))
	b.WriteString(summaryText(summary))

	if len(history) == 0 {
		fmt.Fprintln(w, strings.TrimSpace(b.String()))
		info(w, noReportsMsg)

		return nil
	}

	b.WriteString(historyTotals(history))
	b.WriteString(barChart("Daily breakdown", dailyBars(history)))

	fmt.Fprintln(w, strings.TrimSpace(b.String()))

	ui.PrintTable(historyTable(history), w)

	return nil
}

func summaryText(s report.Summary) string {
	return section("Summary") +
		fmt.Sprintln("Current streak:", ui.Green(days(s.CurrentStreak))) +
		fmt.Sprintln("Longest streak:", ui.Green(days(s.LongestStreak))) +
		fmt.Sprintln("Focused today:", ui.Green(Humanize(s.FocusedToday))) +
		fmt.Sprintln("Longest focus:", ui.Green(Humanize(s.LongestFocused)))
}

func historyTotals(history []report.DayReport) string {
	var total report.DayReport

	for _, d := range history {
		total.Focused = timeutil.SaturatingAdd(total.Focused, d.Focused)
		total.Completed += d.Completed
	}

	avg := total.Focused / time.Duration(len(history))

	return section("Period") +
		fmt.Sprintln("Days recorded:", ui.Green(len(history))) +
		fmt.Sprintln("Time focused:", ui.Green(Humanize(total.Focused))) +
		fmt.Sprintln("Tasks completed:", ui.Green(total.Completed)) +
		fmt.Sprintln("Average per day:", ui.Green(Humanize(avg)))
}

func dailyBars(history []report.DayReport) []bar {
	bars := make([]bar, 0, len(history))

	for _, d := range history {
		bars = append(bars, bar{
			label: d.Date.Time(time.UTC).Format("Jan 02, 2006"),
			value: d.Focused,
		})
	}

	return bars
}

func historyTable(history []report.DayReport) [][]string {
	data := [][]string{
		{"DATE", "FOCUSED", "COMPLETED"},
	}

	for _, d := range history {
		data = append(data, []string{
			d.Date.String(),
			Humanize(d.Focused),
			strconv.Itoa(d.Completed),
		})
	}

	return data
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}

	return strconv.Itoa(n) + " days"
}
