package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Harisshabbir76/todo/core"
)

func Register(mux *http.ServeMux, log *slog.Logger, svc *core.Service) {
	// health
	mux.Handle("GET /health", NewHealthHandler(log, svc))

	// users
	mux.Handle("POST /signup", NewSignupHandler(log, svc))
	mux.Handle("POST /login", NewLoginHandler(log, svc))
	mux.Handle("POST /logout", NewLogoutHandler(log))

	// todos
	mux.Handle("POST /add-todo", NewAddTodoHandler(log, svc))
	mux.Handle("GET /all/todos", NewListTodosHandler(log, svc))
	mux.Handle("PUT /edit-todo/{id}", NewEditTodoHandler(log, svc))
	mux.Handle("PATCH /toggle-todo/{id}", NewToggleTodoHandler(log, svc))
	mux.Handle("DELETE /delete-todo/{id}", NewDeleteTodoHandler(log, svc))
	mux.Handle("DELETE /cleanup-guests", NewCleanupGuestsHandler(log, svc))
}
