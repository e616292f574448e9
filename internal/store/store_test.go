package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryAdapter) {
	t.Helper()
	adapter := storage.NewMemoryAdapter()
	s := New(adapter, logging.NewDefault("error"))
	s.Load(context.Background())
	return s, adapter
}

func sampleUser(id, name string) models.User {
	return models.User{
		ID:        id,
		Username:  name,
		Password:  "$2a$10$notarealhashnotarealhashnotarea",
		Email:     name + "@example.org",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func sampleTask(id, owner string) models.Task {
	return models.Task{
		ID:        id,
		Title:     "task " + id,
		Priority:  models.PriorityMedium,
		Status:    models.StatusNew,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		UserID:    owner,
		Comments:  []models.Comment{},
	}
}

func TestLoad_EmptyAdapter(t *testing.T) {
	s, _ := newTestStore(t)
	require.Empty(t, s.Users())
	require.Empty(t, s.Tasks())
	_, ok := s.ActiveUserID()
	require.False(t, ok)
}

func TestLoad_CorruptCollectionStartsEmpty(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewMemoryAdapter()
	require.NoError(t, adapter.Put(ctx, KeyTasks, []byte(`{not json`)))
	require.NoError(t, adapter.Put(ctx, KeyUsers, []byte(`"also wrong shape"`)))

	s := New(adapter, logging.NewDefault("error"))
	s.Load(ctx)

	require.Empty(t, s.Users())
	require.Empty(t, s.Tasks())
}

func TestLoad_SkipsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewMemoryAdapter()
	// second record is missing required fields and must be quarantined
	require.NoError(t, adapter.Put(ctx, KeyUsers, []byte(`[
		{"id":"u1","username":"alice","password":"h","email":"a@x.com","createdAt":"2025-01-02T03:04:05Z"},
		{"id":"","username":"","password":"","email":""}
	]`)))

	s := New(adapter, logging.NewDefault("error"))
	s.Load(ctx)

	require.Len(t, s.Users(), 1)
	require.Equal(t, "alice", s.Users()[0].Username)
}

func TestRoundTrip_TasksWithComments(t *testing.T) {
	ctx := context.Background()
	s, adapter := newTestStore(t)

	task := sampleTask("t1", "u1")
	task.Description = "with a nested comment"
	task.Comments = []models.Comment{{
		ID:        "c1",
		Text:      "first",
		CreatedAt: time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC),
		UserID:    "u1",
	}}
	require.NoError(t, s.AddTask(ctx, task))

	reloaded := New(adapter, logging.NewDefault("error"))
	reloaded.Load(ctx)

	require.Equal(t, s.Tasks(), reloaded.Tasks())
}

func TestLoad_SessionNotPersisted(t *testing.T) {
	ctx := context.Background()
	s, adapter := newTestStore(t)

	require.NoError(t, s.AddUser(ctx, sampleUser("u1", "alice")))
	s.SetActiveUser("u1")

	reloaded := New(adapter, logging.NewDefault("error"))
	reloaded.Load(ctx)

	require.Len(t, reloaded.Users(), 1)
	_, ok := reloaded.ActiveUserID()
	require.False(t, ok, "session must start unset after reload")
}

func TestFindUser(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	require.NoError(t, s.AddUser(ctx, sampleUser("u1", "alice")))

	u, ok := s.FindUserByID("u1")
	require.True(t, ok)
	require.Equal(t, "alice", u.Username)

	u, ok = s.FindUserByName("alice")
	require.True(t, ok)
	require.Equal(t, "u1", u.ID)

	_, ok = s.FindUserByID("nope")
	require.False(t, ok)
	_, ok = s.FindUserByName("Alice") // case-sensitive
	require.False(t, ok)
}

func TestFindTask_MutationThroughPointer(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	require.NoError(t, s.AddTask(ctx, sampleTask("t1", "u1")))

	task, ok := s.FindTask("t1")
	require.True(t, ok)
	task.Status = models.StatusDone
	require.NoError(t, s.PersistTasks(ctx))

	got, ok := s.FindTask("t1")
	require.True(t, ok)
	require.Equal(t, models.StatusDone, got.Status)
}

func TestRemoveTask(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	require.NoError(t, s.AddTask(ctx, sampleTask("t1", "u1")))
	require.NoError(t, s.AddTask(ctx, sampleTask("t2", "u1")))

	removed, err := s.RemoveTask(ctx, "t1")
	require.NoError(t, err)
	require.True(t, removed)
	require.Len(t, s.Tasks(), 1)
	require.Equal(t, "t2", s.Tasks()[0].ID)

	removed, err = s.RemoveTask(ctx, "t1")
	require.NoError(t, err)
	require.False(t, removed, "removing an absent id is a no-op")
}

func TestActiveUserLifecycle(t *testing.T) {
	s, _ := newTestStore(t)

	_, ok := s.ActiveUserID()
	require.False(t, ok)

	s.SetActiveUser("u1")
	id, ok := s.ActiveUserID()
	require.True(t, ok)
	require.Equal(t, "u1", id)

	s.ClearActiveUser()
	_, ok = s.ActiveUserID()
	require.False(t, ok)
}
