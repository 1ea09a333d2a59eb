package paycredit

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
	PayCredit(ctx context.Context, id int64, m payment.Method) (order.Order, error)
}

// payCreditRequest carries the settlement method for a FIADO order.
type payCreditRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

func (r *payCreditRequest) Validate() error {
	return validator.New().Struct(r)
}

// Pay settles a credit order.
func Pay(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	req := payCreditRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for pay credit", "error", err)

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

	o, err := service.PayCredit(r.Context(), id, method)
	if err != nil {
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
		slog.Error("Error settling credit order", "order_id", id, "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(o); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for pay credit", "error", err)
	}
}
