// Package store implements the domain store: the single owner of the user
// and task collections and of the active-session user id. All mutations go
// through it and are written through to the persistence adapter immediately.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/storage"
)

// Collection keys in the persistence adapter.
const (
	KeyUsers = "users"
	KeyTasks = "tasks"
)

// Store holds the in-memory collections and the active-user id. The session
// always starts logged out; the active-user id is never persisted.
type Store struct {
	adapter  storage.Adapter
	logger   logging.Logger
	validate *validator.Validate

	users        []models.User
	tasks        []models.Task
	activeUserID string
}

func New(adapter storage.Adapter, logger logging.Logger) *Store {
	return &Store{
		adapter:  adapter,
		logger:   logger.With("component", "store"),
		validate: validator.New(),
		users:    []models.User{},
		tasks:    []models.Task{},
	}
}

// Load populates both collections from the adapter. An absent or unparsable
// collection degrades to empty, and records failing schema validation are
// skipped with a warning; Load itself never fails.
func (s *Store) Load(ctx context.Context) {
	s.users = loadCollection[models.User](ctx, s, KeyUsers)
	s.tasks = loadCollection[models.Task](ctx, s, KeyTasks)
	s.activeUserID = ""
	s.logger.Debug(ctx, "collections loaded", "users", len(s.users), "tasks", len(s.tasks))
}

// loadCollection reads and decodes one collection, enforcing the record
// schema per entry.
func loadCollection[T any](ctx context.Context, s *Store, key string) []T {
	data, err := s.adapter.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn(ctx, "reading collection failed, starting empty", "key", key, "error", err)
		}
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn(ctx, "collection is not a valid JSON array, starting empty", "key", key, "error", err)
		return []T{}
	}

	valid := make([]T, 0, len(items))
	for _, item := range items {
		if err := s.validate.Struct(item); err != nil {
			s.logger.Warn(ctx, "skipping malformed record", "key", key, "error", err)
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

// PersistUsers writes the user collection through to the adapter.
func (s *Store) PersistUsers(ctx context.Context) error {
	return s.persist(ctx, KeyUsers, s.users)
}

// PersistTasks writes the task collection through to the adapter.
func (s *Store) PersistTasks(ctx context.Context) error {
	return s.persist(ctx, KeyTasks, s.tasks)
}

func (s *Store) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.adapter.Put(ctx, key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// Users returns the user collection in insertion order.
func (s *Store) Users() []models.User {
	return s.users
}

// FindUserByID performs a linear search; absence is not an error.
func (s *Store) FindUserByID(id string) (*models.User, bool) {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], true
		}
	}
	return nil, false
}

// FindUserByName performs a linear, case-sensitive search by username.
func (s *Store) FindUserByName(username string) (*models.User, bool) {
	for i := range s.users {
		if s.users[i].Username == username {
			return &s.users[i], true
		}
	}
	return nil, false
}

// AddUser appends the user and persists the collection.
func (s *Store) AddUser(ctx context.Context, user models.User) error {
	s.users = append(s.users, user)
	return s.PersistUsers(ctx)
}

// Tasks returns the task collection in insertion order.
func (s *Store) Tasks() []models.Task {
	return s.tasks
}

// FindTask performs a linear search; absence is not an error. The returned
// pointer addresses the live record, so callers may mutate it and then call
// PersistTasks.
func (s *Store) FindTask(id string) (*models.Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i], true
		}
	}
	return nil, false
}

// AddTask appends the task and persists the collection.
func (s *Store) AddTask(ctx context.Context, task models.Task) error {
	s.tasks = append(s.tasks, task)
	return s.PersistTasks(ctx)
}

// RemoveTask deletes the task with the given id, reporting whether anything
// was removed. The collection is only persisted when it changed.
func (s *Store) RemoveTask(ctx context.Context, id string) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true, s.PersistTasks(ctx)
		}
	}
	return false, nil
}

// ActiveUserID returns the current session's user id, if any.
func (s *Store) ActiveUserID() (string, bool) {
	return s.activeUserID, s.activeUserID != ""
}

// SetActiveUser marks the given user as the current session.
func (s *Store) SetActiveUser(id string) {
	s.activeUserID = id
}

// ClearActiveUser ends the current session. Always succeeds.
func (s *Store) ClearActiveUser() {
	s.activeUserID = ""
}
