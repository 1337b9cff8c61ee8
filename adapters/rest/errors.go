package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Harisshabbir76/todo/core"
	"github.com/Harisshabbir76/todo/pkg/res"
)

// WriteErr maps a service error to one response. Anything outside the
// known taxonomy is logged and comes back as a generic 500.
func WriteErr(log *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidArgs):
		res.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrNotFound):
		res.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, core.ErrEmailTaken):
		res.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, core.ErrUnauthorized):
		res.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, core.ErrUnavailable):
		res.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		log.Error("request failed", "error", err)
		res.Error(w, "internal error", http.StatusInternalServerError)
	}
}
