package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Harisshabbir76/todo/adapters/rest"
	"github.com/Harisshabbir76/todo/core"
	"github.com/Harisshabbir76/todo/pkg/res"
)

func NewSignupHandler(log *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.SignupIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.Register(r.Context(), in.Username, in.Email, in.Password); err != nil {
			rest.WriteErr(log, w, err)
			return
		}
		res.Json(w, map[string]any{"message": "user registered successfully"}, http.StatusCreated)
	}
}

func NewLoginHandler(log *slog.Logger, svc *core.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.LoginIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		user, err := svc.Login(r.Context(), in.Email, in.Password)
		if err != nil {
			rest.WriteErr(log, w, err)
			return
		}
		res.Json(w, map[string]any{
			"message":  "login successful",
			"userId":   user.ID,
			"username": user.Username,
		}, http.StatusOK)
	}
}

// NewLogoutHandler acknowledges logout; identity lives on the client, so
// there is no server-side session to tear down.
func NewLogoutHandler(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]any{
			"success": true,
			"message": "logged out successfully",
		}, http.StatusOK)
	}
}
