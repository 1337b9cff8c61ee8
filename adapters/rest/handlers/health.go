package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Harisshabbir76/todo/core"
	"github.com/Harisshabbir76/todo/pkg/res"
)

func NewHealthHandler(log *slog.Logger, p core.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			log.Warn("health probe failed", "error", err)
			res.Json(w, map[string]any{
				"status":   "Service Unavailable",
				"database": "Disconnected",
			}, http.StatusServiceUnavailable)
			return
		}
		res.Json(w, map[string]any{
			"status":   "OK",
			"database": "Connected",
		}, http.StatusOK)
	}
}
