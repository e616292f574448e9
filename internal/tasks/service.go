// Package tasks implements task operations scoped to the active user:
// creation, completion, two-step deletion, and listing.
package tasks

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

type Service struct {
	store  *store.Store
	logger logging.Logger

	// pendingDeletes maps one-shot confirmation tokens to task ids.
	pendingDeletes map[string]string
}

func NewService(st *store.Store, logger logging.Logger) *Service {
	return &Service{
		store:          st,
		logger:         logger.With("component", "tasks"),
		pendingDeletes: make(map[string]string),
	}
}

// Add creates a task owned by the active user. It fails with
// ErrUnauthorized when nobody is logged in and with ErrValidation when the
// trimmed title is empty or the priority is unknown; in those cases the
// task collection is left untouched. An empty priority defaults to medium.
func (s *Service) Add(ctx context.Context, title, description, priority string) (*models.Task, error) {
	userID, ok := s.store.ActiveUserID()
	if !ok {
		return nil, fmt.Errorf("adding a task requires login: %w", common.ErrUnauthorized)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}

	p, err := models.ParsePriority(priority)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Priority:    p,
		Status:      models.StatusNew,
		CreatedAt:   time.Now().UTC(),
		UserID:      userID,
		Comments:    []models.Comment{},
	}

	if err := s.store.AddTask(ctx, task); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "task added", "id", task.ID, "title", task.Title)
	return &task, nil
}

// Complete marks the task done and persists. An unknown id is a silent
// no-op, and completing an already-done task changes nothing.
func (s *Service) Complete(ctx context.Context, id string) error {
	task, ok := s.store.FindTask(id)
	if !ok {
		s.logger.Debug(ctx, "complete: task not found", "id", id)
		return nil
	}
	if task.Status == models.StatusDone {
		return nil
	}
	task.Status = models.StatusDone
	if err := s.store.PersistTasks(ctx); err != nil {
		return err
	}
	s.logger.Info(ctx, "task completed", "id", id)
	return nil
}

// RequestDelete starts the two-step deletion protocol: it returns a one-shot
// confirmation token for the given task, or ErrNotFound when the id does not
// resolve. Nothing is removed until the token is passed to ConfirmDelete.
func (s *Service) RequestDelete(_ context.Context, id string) (string, error) {
	if _, ok := s.store.FindTask(id); !ok {
		return "", fmt.Errorf("task %q: %w", id, common.ErrNotFound)
	}
	token := uuid.NewString()
	s.pendingDeletes[token] = id
	return token, nil
}

// ConfirmDelete consumes a confirmation token and removes the referenced
// task. An unknown or already-consumed token yields ErrNotFound. If the task
// vanished between the two steps, the call is a silent no-op.
func (s *Service) ConfirmDelete(ctx context.Context, token string) error {
	id, ok := s.pendingDeletes[token]
	if !ok {
		return fmt.Errorf("confirmation token: %w", common.ErrNotFound)
	}
	delete(s.pendingDeletes, token)

	removed, err := s.store.RemoveTask(ctx, id)
	if err != nil {
		return err
	}
	if removed {
		s.logger.Info(ctx, "task deleted", "id", id)
	}
	return nil
}

// CancelDelete discards a pending confirmation token. Unknown tokens are
// ignored.
func (s *Service) CancelDelete(token string) {
	delete(s.pendingDeletes, token)
}

// ListVisible returns the active user's tasks in insertion order, or an
// empty slice when nobody is logged in.
func (s *Service) ListVisible(_ context.Context) []models.Task {
	userID, ok := s.store.ActiveUserID()
	if !ok {
		return []models.Task{}
	}

	visible := []models.Task{}
	for _, task := range s.store.Tasks() {
		if task.UserID == userID {
			visible = append(visible, task)
		}
	}
	return visible
}
