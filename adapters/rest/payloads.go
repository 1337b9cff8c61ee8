package rest

type SignupIn struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AddTodoIn struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      *int64 `json:"userId,omitempty"` // Nil or 0 - guest task
}

type EditTodoIn struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ToggleTodoIn struct {
	IsCompleted bool `json:"isCompleted"`
}
