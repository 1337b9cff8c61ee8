package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Users

func (s *Service) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return ErrInvalidArgs
	}

	// Pre-check keeps the common case cheap; the unique constraint still
	// catches concurrent signups for the same email.
	_, err := s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.store.CreateUser(ctx, username, email, hash); err != nil {
		return err
	}
	return nil
}

// Login verifies credentials against the stored hash. Unknown email and
// wrong password both come back as ErrUnauthorized so callers cannot
// enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, ErrUnauthorized
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrUnauthorized
		}
		return User{}, err
	}

	if !CheckPassword(user.PasswordHash, password) {
		return User{}, ErrUnauthorized
	}
	return user, nil
}

// Todos

// AddTodo stores a new task. The title is rejected when blank but is
// otherwise persisted exactly as supplied.
func (s *Service) AddTodo(ctx context.Context, title, description string, owner Ownership) (Todo, error) {
	if strings.TrimSpace(title) == "" {
		return Todo{}, ErrInvalidArgs
	}
	if id, ok := owner.UserID(); ok && id <= 0 {
		return Todo{}, ErrInvalidArgs
	}
	return s.store.CreateTodo(ctx, title, description, owner)
}

// ListTodos returns one user's tasks newest-first when userID is set,
// otherwise guest tasks still within the retention window.
func (s *Service) ListTodos(ctx context.Context, userID *int64) ([]Todo, error) {
	if userID != nil {
		if *userID <= 0 {
			return nil, ErrInvalidArgs
		}
		return s.store.ListTodosByUser(ctx, *userID)
	}
	return s.store.ListGuestTodos(ctx, GuestCutoff(s.now()))
}

func (s *Service) EditTodo(ctx context.Context, id int64, title, description string) error {
	if id <= 0 || strings.TrimSpace(title) == "" {
		return ErrInvalidArgs
	}
	return s.store.UpdateTodo(ctx, id, title, description)
}

func (s *Service) ToggleTodo(ctx context.Context, id int64, completed bool) error {
	if id <= 0 {
		return ErrInvalidArgs
	}
	return s.store.SetTodoCompleted(ctx, id, completed)
}

func (s *Service) DeleteTodo(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgs
	}
	return s.store.DeleteTodo(ctx, id)
}

// CleanupGuests removes guest tasks older than the retention window and
// reports how many rows went away.
func (s *Service) CleanupGuests(ctx context.Context) (int64, error) {
	return s.store.DeleteGuestTodosBefore(ctx, GuestCutoff(s.now()))
}
