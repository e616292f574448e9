package cli

import (
	"context"
	"fmt"
	"os"
)

// AddComment prompts for a task id and comment text and appends the comment
// as the active user. A task id that no longer resolves is reported but
// changes nothing.
func (a *App) AddComment(ctx context.Context) error {
	taskID, err := getSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		return err
	}

	text, err := getSimpleText(a.reader, "Enter comment text", os.Stdout)
	if err != nil {
		return err
	}

	comment, err := a.comments.Add(ctx, taskID, text)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if comment == nil {
		printlnFn("No such task")
		return nil
	}

	printlnFn("Comment added")
	return nil
}

// ListComments prompts for a task id and prints its comments in insertion
// order with resolved author names.
func (a *App) ListComments(ctx context.Context) error {
	taskID, err := getSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		return err
	}

	views := a.comments.List(ctx, taskID)
	if len(views) == 0 {
		printlnFn("No comments")
		return nil
	}

	for _, v := range views {
		printlnFn(fmt.Sprintf("%s at %s:\n    %s", v.Author, v.CreatedAt.Local().Format("2006-01-02 15:04"), v.Text))
	}
	return nil
}
