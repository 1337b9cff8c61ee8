package core

import (
	"context"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is the persistence port. Every mutation is a single atomic
// statement; the implementation releases its connection on all paths.
type Store interface {
	Pinger

	// users
	CreateUser(ctx context.Context, username, email, passwordHash string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)

	// todos
	CreateTodo(ctx context.Context, title, description string, owner Ownership) (Todo, error)
	ListTodosByUser(ctx context.Context, userID int64) ([]Todo, error)
	ListGuestTodos(ctx context.Context, notBefore time.Time) ([]Todo, error)
	UpdateTodo(ctx context.Context, id int64, title, description string) error
	SetTodoCompleted(ctx context.Context, id int64, completed bool) error
	DeleteTodo(ctx context.Context, id int64) error
	DeleteGuestTodosBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
