package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/comments"
	"github.com/dmitrijs2005/taskkeeper/internal/config"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/storage"
	"github.com/dmitrijs2005/taskkeeper/internal/store"
	"github.com/dmitrijs2005/taskkeeper/internal/tasks"
)

// Service surfaces the App depends on. The real services satisfy these;
// tests provide lightweight fakes.
type authService interface {
	Register(ctx context.Context, username, password, email string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context)
	CurrentUser() (*models.User, bool)
}

type taskService interface {
	Add(ctx context.Context, title, description, priority string) (*models.Task, error)
	Complete(ctx context.Context, id string) error
	RequestDelete(ctx context.Context, id string) (string, error)
	ConfirmDelete(ctx context.Context, token string) error
	CancelDelete(token string)
	ListVisible(ctx context.Context) []models.Task
}

type commentService interface {
	Add(ctx context.Context, taskID, text string) (*models.Comment, error)
	List(ctx context.Context, taskID string) []comments.View
}

type App struct {
	config   *config.Config
	auth     authService
	tasks    taskService
	comments commentService
	reader   *bufio.Reader
	logger   logging.Logger
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	adapter, err := storage.NewFileAdapter(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	st := store.New(adapter, logger)
	st.Load(context.Background())

	return &App{
		config:   cfg,
		auth:     auth.NewService(st, logger),
		tasks:    tasks.NewService(st, logger),
		comments: comments.NewService(st, logger),
		reader:   bufio.NewReader(os.Stdin),
		logger:   logger,
	}, nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.auth.CurrentUser()
	return ok
}

func (a *App) getStatus() string {
	if user, ok := a.auth.CurrentUser(); ok {
		return fmt.Sprintf("(%s)", user.Username)
	}
	return ""
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to taskkeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
