package core

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type Todo struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	IsCompleted bool      `db:"is_completed" json:"isCompleted"`
	UserID      *int64    `db:"user_id" json:"userId,omitempty"` // Nil - guest task
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
