package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

// AddTask prompts for title, description, and priority and creates a task
// owned by the active user.
func (a *App) AddTask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	priority, err := getSimpleText(a.reader, "Enter priority: low, medium or high (default medium)", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.tasks.Add(ctx, title, description, priority)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Task added: %s", task.ID))
	return nil
}

// ListTasks prints the active user's tasks in insertion order.
func (a *App) ListTasks(ctx context.Context) error {
	visible := a.tasks.ListVisible(ctx)
	if len(visible) == 0 {
		printlnFn("No tasks to show")
		return nil
	}

	for _, task := range visible {
		printlnFn(formatTask(task))
	}
	return nil
}

func formatTask(t models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s (priority: %s, comments: %d)\n", t.Status, t.Title, t.Priority, len(t.Comments))
	if t.Description != "" {
		fmt.Fprintf(&b, "    %s\n", t.Description)
	}
	fmt.Fprintf(&b, "    id: %s, created: %s", t.ID, t.CreatedAt.Local().Format("2006-01-02 15:04"))
	return b.String()
}

// CompleteTask prompts for a task id and marks it done. An unknown id
// changes nothing.
func (a *App) CompleteTask(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter task id to complete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.tasks.Complete(ctx, id); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Done")
	return nil
}

// DeleteTask prompts for a task id, asks for confirmation, and deletes the
// task only on an explicit "y". The delete request and its confirmation are
// separate service calls tied together by a one-shot token.
func (a *App) DeleteTask(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter task id to delete", os.Stdout)
	if err != nil {
		return err
	}

	token, err := a.tasks.RequestDelete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such task")
			return nil
		}
		printlnFn(err.Error())
		return err
	}

	answer, err := getSimpleText(a.reader, "Are you sure you want to delete this task? (y/n)", os.Stdout)
	if err != nil {
		a.tasks.CancelDelete(token)
		return err
	}

	if !strings.EqualFold(answer, "y") {
		a.tasks.CancelDelete(token)
		printlnFn("Cancelled")
		return nil
	}

	if err := a.tasks.ConfirmDelete(ctx, token); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Task deleted")
	return nil
}
