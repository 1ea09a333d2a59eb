package deleteorder

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type service interface {
	Delete(ctx context.Context, id int64) error
}

// Delete removes one order. Deleting an id that no longer exists is fine;
// the operation is idempotent.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	if err := service.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error deleting order", "error", err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
