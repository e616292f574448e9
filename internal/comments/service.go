// Package comments implements comment operations on tasks: appending and
// listing with author resolution.
package comments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/store"
)

// UnknownAuthor is shown when a comment's author id no longer resolves to a
// user record.
const UnknownAuthor = "unknown"

// View is a comment prepared for display, with the author id resolved to a
// username.
type View struct {
	ID        string
	Text      string
	CreatedAt time.Time
	Author    string
}

type Service struct {
	store  *store.Store
	logger logging.Logger
}

func NewService(st *store.Store, logger logging.Logger) *Service {
	return &Service{store: st, logger: logger.With("component", "comments")}
}

// Add appends a comment authored by the active user. It fails with
// ErrUnauthorized when nobody is logged in and with ErrValidation when the
// trimmed text is empty. An unresolvable task id is a silent no-op: the
// call returns (nil, nil) and nothing changes.
func (s *Service) Add(ctx context.Context, taskID, text string) (*models.Comment, error) {
	userID, ok := s.store.ActiveUserID()
	if !ok {
		return nil, fmt.Errorf("commenting requires login: %w", common.ErrUnauthorized)
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text must not be empty", common.ErrValidation)
	}

	task, ok := s.store.FindTask(taskID)
	if !ok {
		s.logger.Debug(ctx, "add comment: task not found", "taskId", taskID)
		return nil, nil
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
		UserID:    userID,
	}
	task.Comments = append(task.Comments, comment)

	if err := s.store.PersistTasks(ctx); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "comment added", "taskId", taskID, "commentId", comment.ID)
	return &comment, nil
}

// List returns the task's comments in insertion order with authors
// resolved. A dangling author reference falls back to UnknownAuthor; an
// unknown task yields an empty slice.
func (s *Service) List(_ context.Context, taskID string) []View {
	task, ok := s.store.FindTask(taskID)
	if !ok {
		return []View{}
	}

	views := make([]View, 0, len(task.Comments))
	for _, c := range task.Comments {
		author := UnknownAuthor
		if user, ok := s.store.FindUserByID(c.UserID); ok {
			author = user.Username
		}
		views = append(views, View{
			ID:        c.ID,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
			Author:    author,
		})
	}
	return views
}
