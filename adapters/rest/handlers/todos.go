package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Harisshabbir76/todo/adapters/rest"
	"github.com/Harisshabbir76/todo/core"
	"github.com/Harisshabbir76/todo/pkg/res"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func NewAddTodoHandler(log *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.AddTodoIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// userId: nil or 0 means a guest task
		owner := core.Anonymous()
		if in.UserID != nil && *in.UserID != 0 {
			owner = core.Owned(*in.UserID)
		}

		todo, err := svc.AddTodo(r.Context(), in.Title, in.Description, owner)
		if err != nil {
			rest.WriteErr(log, w, err)
			return
		}
		res.Json(w, map[string]any{
			"message": "todo added successfully",
			"todoId":  todo.ID,
		}, http.StatusCreated)
	}
}

func NewListTodosHandler(log *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var userID *int64
		if v := r.URL.Query().Get("userId"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil || id <= 0 {
				res.Error(w, "invalid userId", http.StatusBadRequest)
				return
			}
			userID = &id
		}

		todos, err := svc.ListTodos(r.Context(), userID)
		if err != nil {
			rest.WriteErr(log, w, err)
			return
		}
		if todos == nil {
			todos = []core.Todo{}
		}
		res.Json(w, todos, http.StatusOK)
	}
}

func NewEditTodoHandler(log *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.EditTodoIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.EditTodo(r.Context(), id, in.Title, in.Description); err != nil {
			rest.WriteErr(log, w, err)
			return
		}
		res.Json(w, map[string]any{
			"message":   "todo updated successfully",
			"updatedId": id,
		}, http.StatusOK)
	}
}

func NewToggleTodoHandler(log *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.ToggleTodoIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.ToggleTodo(r.Context(), id, in.IsCompleted); err != nil {
			rest.WriteErr(log, w, err)
			return
		}
		res.Json(w, map[string]any{
			"message":   "todo status updated",
			"todoId":    id,
			"newStatus": in.IsCompleted,
		}, http.StatusOK)
	}
}

func NewDeleteTodoHandler(log *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		if err := svc.DeleteTodo(r.Context(), id); err != nil {
			rest.WriteErr(log, w, err)
			return
		}
		res.Json(w, map[string]any{
			"message":   "todo deleted successfully",
			"deletedId": id,
		}, http.StatusOK)
	}
}

func NewCleanupGuestsHandler(log *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := svc.CleanupGuests(r.Context())
		if err != nil {
			rest.WriteErr(log, w, err)
			return
		}
		res.Json(w, map[string]any{
			"message":      "old guest tasks removed successfully",
			"deletedCount": deleted,
		}, http.StatusOK)
	}
}
