package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/comments"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

// stubTextInputs replaces getSimpleText with a stub that pops answers from a
// queue, one per prompt, and getPassword with a fixed value.
func stubTextInputs(t *testing.T, password []byte, answers ...string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	queue := append([]string(nil), answers...)
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(queue) == 0 {
			return "", io.EOF
		}
		next := queue[0]
		queue = queue[1:]
		return next, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

// capturePrintln replaces printlnFn with a recorder and returns the captured
// lines plus a restore func.
func capturePrintln(t *testing.T) (*[]string, func()) {
	t.Helper()
	orig := printlnFn
	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	return &lines, func() { printlnFn = orig }
}

func contains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// ---- fake services ----

type fakeAuth struct {
	regUsername, regPassword, regEmail string
	regUser                            *models.User
	regErr                             error

	loginUsername, loginPassword string
	loginUser                    *models.User
	loginErr                     error

	logoutCalled bool
	current      *models.User
}

func (f *fakeAuth) Register(_ context.Context, username, password, email string) (*models.User, error) {
	f.regUsername, f.regPassword, f.regEmail = username, password, email
	return f.regUser, f.regErr
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (*models.User, error) {
	f.loginUsername, f.loginPassword = username, password
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) { f.logoutCalled = true }

func (f *fakeAuth) CurrentUser() (*models.User, bool) {
	return f.current, f.current != nil
}

type fakeTasks struct {
	addTitle, addDescription, addPriority string
	addTask                               *models.Task
	addErr                                error

	completeID  string
	completeErr error

	requestID    string
	requestToken string
	requestErr   error

	confirmToken string
	confirmErr   error

	cancelToken string

	visible []models.Task
}

func (f *fakeTasks) Add(_ context.Context, title, description, priority string) (*models.Task, error) {
	f.addTitle, f.addDescription, f.addPriority = title, description, priority
	return f.addTask, f.addErr
}

func (f *fakeTasks) Complete(_ context.Context, id string) error {
	f.completeID = id
	return f.completeErr
}

func (f *fakeTasks) RequestDelete(_ context.Context, id string) (string, error) {
	f.requestID = id
	return f.requestToken, f.requestErr
}

func (f *fakeTasks) ConfirmDelete(_ context.Context, token string) error {
	f.confirmToken = token
	return f.confirmErr
}

func (f *fakeTasks) CancelDelete(token string) { f.cancelToken = token }

func (f *fakeTasks) ListVisible(context.Context) []models.Task { return f.visible }

type fakeComments struct {
	addTaskID, addText string
	addComment         *models.Comment
	addErr             error

	listTaskID string
	views      []comments.View
}

func (f *fakeComments) Add(_ context.Context, taskID, text string) (*models.Comment, error) {
	f.addTaskID, f.addText = taskID, text
	return f.addComment, f.addErr
}

func (f *fakeComments) List(_ context.Context, taskID string) []comments.View {
	f.listTaskID = taskID
	return f.views
}

func sampleUser() *models.User {
	return &models.User{
		ID:        "u1",
		Username:  "alice",
		Password:  "hash",
		Email:     "a@x.com",
		CreatedAt: time.Now().UTC(),
	}
}
