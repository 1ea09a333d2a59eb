package deliverorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	postgresrepo "github.com/pollosrrj/pos/internal/dal/repositories/order/postgres"
	"github.com/pollosrrj/pos/internal/service/models/order"
	"github.com/pollosrrj/pos/internal/service/models/payment"
	"github.com/pollosrrj/pos/internal/service/models/status"
)

type service interface {
	MarkDelivered(ctx context.Context, id int64, m payment.Method) (order.Order, error)
}

// deliverOrderRequest carries the chosen payment method. FIADO parks the
// order as credit instead of closing it.
type deliverOrderRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

func (r *deliverOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// Deliver handles the deliver action on an active order.
func Deliver(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	req := deliverOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for deliver order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	method, err := payment.ParseMethod(req.PaymentMethod)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	o, err := service.MarkDelivered(r.Context(), id, method)
	if err != nil {
		writeDeliverError(w, err)
		slog.Error("Error delivering order", "order_id", id, "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(o); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for deliver order", "error", err)
	}
}

func writeDeliverError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, postgresrepo.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, status.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, payment.ErrInvalidMethod):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
