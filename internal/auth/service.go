// Package auth implements the session module: registration, login, and
// logout against the domain store. The session lives in memory only and
// never survives a restart.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/store"
)

type Service struct {
	store    *store.Store
	validate *validator.Validate
	logger   logging.Logger
}

func NewService(st *store.Store, logger logging.Logger) *Service {
	return &Service{
		store:    st,
		validate: validator.New(),
		logger:   logger.With("component", "auth"),
	}
}

// registerRequest and loginRequest carry trimmed values purely for
// validation; the stored record keeps the caller's original input.
type registerRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Email    string `validate:"required"`
}

type loginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Register creates a new account. It fails with ErrValidation when any
// field is empty after trimming and with ErrAlreadyExists when the username
// is taken; in both cases the user collection is left untouched. On success
// the new user is persisted and becomes the active session (auto-login).
func (s *Service) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	req := registerRequest{
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
		Email:    strings.TrimSpace(email),
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: all fields must be filled in", common.ErrValidation)
	}

	if _, exists := s.store.FindUserByName(username); exists {
		return nil, fmt.Errorf("username %q: %w", username, common.ErrAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  string(hash),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.AddUser(ctx, user); err != nil {
		return nil, err
	}

	s.store.SetActiveUser(user.ID)
	s.logger.Info(ctx, "user registered", "username", user.Username)
	return &user, nil
}

// Login authenticates against the stored credentials. The username match is
// exact and case-sensitive. Any failure leaves the current session
// unchanged.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	req := loginRequest{
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: username and password must be filled in", common.ErrValidation)
	}

	user, ok := s.store.FindUserByName(username)
	if !ok {
		return nil, common.ErrInvalidLoginPassword
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, common.ErrInvalidLoginPassword
	}

	s.store.SetActiveUser(user.ID)
	s.logger.Info(ctx, "user logged in", "username", user.Username)
	return user, nil
}

// Logout clears the active session. It always succeeds, logged in or not.
func (s *Service) Logout(ctx context.Context) {
	s.store.ClearActiveUser()
	s.logger.Info(ctx, "logged out")
}

// CurrentUser resolves the active session to its user record.
func (s *Service) CurrentUser() (*models.User, bool) {
	id, ok := s.store.ActiveUserID()
	if !ok {
		return nil, false
	}
	return s.store.FindUserByID(id)
}
