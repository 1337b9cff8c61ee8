package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sethvargo/go-retry"

	"github.com/Harisshabbir76/todo/core"
)

type DB struct {
	log  *slog.Logger
	conn *sqlx.DB
}

// New opens a bounded connection pool without probing it; call WaitReady
// before serving traffic.
func New(log *slog.Logger, address string, maxConns int) (*DB, error) {
	conn, err := sqlx.Open("pgx", address)
	if err != nil {
		log.Error("cannot open database", "error", err)
		return nil, err
	}
	conn.SetMaxOpenConns(maxConns)
	conn.SetMaxIdleConns(maxConns)
	return &DB{log: log, conn: conn}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// WaitReady blocks until a liveness probe succeeds, retrying up to
// attempts times with a fixed delay between probes. The caller must treat
// an error as fatal and refuse to serve.
func (db *DB) WaitReady(ctx context.Context, attempts uint64, delay time.Duration) error {
	if attempts == 0 {
		attempts = 1
	}
	backoff := retry.WithMaxRetries(attempts-1, retry.NewConstant(delay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.conn.PingContext(ctx); err != nil {
			db.log.Warn("database not ready", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

// Users

func (db *DB) CreateUser(ctx context.Context, username, email, passwordHash string) (core.User, error) {
	const q = `
		INSERT INTO users(username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`

	u := core.User{Username: username, Email: email, PasswordHash: passwordHash}
	if err := db.conn.QueryRowxContext(ctx, q, username, email, passwordHash).Scan(&u.ID, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return core.User{}, core.ErrEmailTaken
		}
		return core.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (core.User, error) {
	const q = `SELECT id, username, email, password_hash, created_at FROM users WHERE email = $1`

	var u core.User
	if err := db.conn.GetContext(ctx, &u, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.User{}, core.ErrNotFound
		}
		return core.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Todos

func (db *DB) CreateTodo(ctx context.Context, title, description string, owner core.Ownership) (core.Todo, error) {
	const q = `
		INSERT INTO todos(title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, is_completed, created_at;
	`

	t := core.Todo{Title: title, Description: description, UserID: owner.Column()}
	if err := db.conn.QueryRowxContext(ctx, q, title, description, t.UserID).Scan(&t.ID, &t.IsCompleted, &t.CreatedAt); err != nil {
		return core.Todo{}, fmt.Errorf("insert todo: %w", err)
	}
	return t, nil
}

func (db *DB) ListTodosByUser(ctx context.Context, userID int64) ([]core.Todo, error) {
	const q = `
		SELECT id, title, description, is_completed, user_id, created_at
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`

	var out []core.Todo
	if err := db.conn.SelectContext(ctx, &out, q, userID); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return out, nil
}

func (db *DB) ListGuestTodos(ctx context.Context, notBefore time.Time) ([]core.Todo, error) {
	const q = `
		SELECT id, title, description, is_completed, user_id, created_at
		FROM todos
		WHERE user_id IS NULL AND created_at > $1
		ORDER BY created_at DESC;
	`

	var out []core.Todo
	if err := db.conn.SelectContext(ctx, &out, q, notBefore); err != nil {
		return nil, fmt.Errorf("list guest todos: %w", err)
	}
	return out, nil
}

func (db *DB) UpdateTodo(ctx context.Context, id int64, title, description string) error {
	const q = `UPDATE todos SET title = $2, description = $3 WHERE id = $1`

	res, err := db.conn.ExecContext(ctx, q, id, title, description)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (db *DB) SetTodoCompleted(ctx context.Context, id int64, completed bool) error {
	const q = `UPDATE todos SET is_completed = $2 WHERE id = $1`

	res, err := db.conn.ExecContext(ctx, q, id, completed)
	if err != nil {
		return fmt.Errorf("toggle todo: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (db *DB) DeleteTodo(ctx context.Context, id int64) error {
	const q = `DELETE FROM todos WHERE id = $1`

	res, err := db.conn.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (db *DB) DeleteGuestTodosBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `DELETE FROM todos WHERE user_id IS NULL AND created_at < $1`

	res, err := db.conn.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup guest todos: %w", err)
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}

// pg helpers

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
