package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
)

func (a *App) List(ctx context.Context) error {
	s, err := a.currentSession()
	if err != nil {
		return a.explain(err)
	}

	tasks, err := a.api.ListTasks(ctx, s)
	if err != nil {
		return a.explain(err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks.")
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintln(a.out, formatTask(t))
	}
	return nil
}

// Add creates a task. With args the title is taken from them and no further
// prompts are shown.
func (a *App) Add(ctx context.Context, args []string) error {
	s, err := a.currentSession()
	if err != nil {
		return a.explain(err)
	}

	var in client.NewTask
	if len(args) > 0 {
		in.Title = strings.Join(args, " ")
	} else {
		if in.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
			return err
		}
		desc, err := GetMultiline(a.reader, "Description (optional)", a.out)
		if err != nil {
			return err
		}
		if desc != "" {
			in.Description = &desc
		}
		due, err := GetSimpleText(a.reader, "Due date YYYY-MM-DD (optional)", a.out)
		if err != nil {
			return err
		}
		if due != "" {
			in.DueDate = &due
		}
	}

	task, err := a.api.CreateTask(ctx, s, in)
	if err != nil {
		return a.explain(err)
	}

	fmt.Fprintln(a.out, "Added:", formatTask(*task))
	return nil
}

func (a *App) SetCompleted(ctx context.Context, args []string, completed bool) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	s, err := a.currentSession()
	if err != nil {
		return a.explain(err)
	}

	task, err := a.api.SetCompleted(ctx, s, id, completed)
	if err != nil {
		return a.explain(err)
	}

	fmt.Fprintln(a.out, formatTask(*task))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	s, err := a.currentSession()
	if err != nil {
		return a.explain(err)
	}

	if err := a.api.DeleteTask(ctx, s, id); err != nil {
		return a.explain(err)
	}

	fmt.Fprintf(a.out, "Task %d deleted\n", id)
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: <command> <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", args[0])
	}
	return id, nil
}

func formatTask(t client.Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	s := fmt.Sprintf("[%s] %d  %s", mark, t.ID, t.Title)
	if t.DueDate != nil {
		s += fmt.Sprintf("  (due %s)", *t.DueDate)
	}
	return s
}
