package getorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	postgresrepo "github.com/pollosrrj/pos/internal/dal/repositories/order/postgres"
	"github.com/pollosrrj/pos/internal/service/models/order"
)

type service interface {
	ByID(ctx context.Context, id int64) (order.Order, error)
}

// GetOrder fetches one order by id.
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	o, err := service.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, postgresrepo.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting order", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(o); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response", "error", err)
	}
}
