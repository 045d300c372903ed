package app

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/task"
)

const noTasksMsg = "No tasks yet. Add one with 'pomo add <description>'"

// tasksAction prints the task list.
func tasksAction(ctx *cli.Context) error {
	key, err := task.ParseSortKey(ctx.String("sort"))
	if err != nil {
		return err
	}

	tasks := newFiles().LoadTasks()
	task.Sort(tasks, key)

	if ctx.Bool("json") {
		if tasks == nil {
			tasks = []task.Task{}
		}

		b, err := json.Marshal(tasks)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(tasks) == 0 {
		pterm.Info.Println(noTasksMsg)
		return nil
	}

	ui.PrintTable(tasksTable(tasks), os.Stdout)

	return nil
}

func tasksTable(tasks []task.Task) [][]string {
	data := [][]string{
		{"ID", "TASK", "SPENT", "STATUS"},
	}

	for _, t := range tasks {
		status := ui.Yellow("open")
		if t.Done {
			status = ui.Green("done")
		}

		data = append(data, []string{
			strconv.FormatUint(t.ID, 10),
			t.Desc,
			timeutil.Clock(t.Spent),
			status,
		})
	}

	return data
}

func addAction(ctx *cli.Context) error {
	desc := strings.Join(ctx.Args().Slice(), " ")

	c, p, err := documents()
	if err != nil {
		return err
	}

	defer p.Close()

	t, ok := c.AddTask(desc)
	if !ok {
		return errEmptyTask
	}

	if p.err != nil {
		return p.err
	}

	pterm.Success.Printfln("Added task %d: %s", t.ID, t.Desc)

	return nil
}

func doneAction(ctx *cli.Context) error {
	id, err := taskID(ctx)
	if err != nil {
		return err
	}

	c, p, err := documents()
	if err != nil {
		return err
	}

	defer p.Close()

	if !c.Complete(id) {
		return errTaskNotFound.Fmt(id)
	}

	return p.err
}

func rmAction(ctx *cli.Context) error {
	id, err := taskID(ctx)
	if err != nil {
		return err
	}

	c, p, err := documents()
	if err != nil {
		return err
	}

	defer p.Close()

	if !c.Delete(id) {
		return errTaskNotFound.Fmt(id)
	}

	return p.err
}

func endDayAction(_ *cli.Context) error {
	c, p, err := documents()
	if err != nil {
		return err
	}

	defer p.Close()

	focused, completed := c.EndDay()
	if p.err != nil {
		return p.err
	}

	if completed == 0 {
		pterm.Info.Println("No completed tasks to report")
		return nil
	}

	pterm.Success.Printfln(
		"Day ended: %d completed, %s focused",
		completed,
		timeutil.Clock(focused),
	)

	return nil
}

func taskID(ctx *cli.Context) (uint64, error) {
	arg := ctx.Args().First()
	if arg == "" {
		return 0, errMissingArg.Fmt("a task id")
	}

	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, errInvalidID.Fmt(arg)
	}

	return id, nil
}
