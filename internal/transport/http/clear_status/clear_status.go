package clearstatus

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/pollosrrj/pos/internal/service/models/status"
)

type service interface {
	ClearByStatus(ctx context.Context, st status.Status) error
}

type clearStatusRequest struct {
	Status string `schema:"status,required"`
}

// Clear bulk-deletes every order in the given status ("clear all
// delivered"). Clearing a status with no orders is a no-op.
func Clear(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &clearStatusRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request", "error", err)

		return
	}

	st, err := status.ParseStatus(query.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	if err := service.ClearByStatus(r.Context(), st); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error clearing orders", "status", st, "error", err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
