package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/pollosrrj/pos/internal/service/models/order"
	"github.com/pollosrrj/pos/internal/service/models/status"
)

type service interface {
	ListActive(ctx context.Context) ([]order.Order, error)
	ByStatus(ctx context.Context, st status.Status) ([]order.Order, error)
}

type listOrdersRequest struct {
	Status string `schema:"status,omitempty"`
}

// ListOrders lists orders. Without a status parameter it returns the
// active board; with one, all orders in that status newest first.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &listOrdersRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request", "error", err)

		return
	}

	var (
		orders []order.Order
		err    error
	)
	if query.Status == "" {
		orders, err = service.ListActive(r.Context())
	} else {
		var st status.Status
		st, err = status.ParseStatus(query.Status)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}
		orders, err = service.ByStatus(r.Context(), st)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting orders", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(orders); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response", "error", err)
	}
}
