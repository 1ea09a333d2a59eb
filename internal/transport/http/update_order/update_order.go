package updateorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pollosrrj/pos/internal/service/cart"
	"github.com/pollosrrj/pos/internal/service/models/delivery"
	"github.com/pollosrrj/pos/internal/service/models/menu"
	"github.com/pollosrrj/pos/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	Update(ctx context.Context, id int64, o order.Order) error
	ByID(ctx context.Context, id int64) (order.Order, error)
}

// addInOrderRequest is one add-to-cart action: a menu selection.
type addInOrderRequest struct {
	Food    string `json:"food"`
	Cut     string `json:"cut"`
	Variant string `json:"variant"`
	Soda    string `json:"soda"`
	FoodQty int    `json:"foodQty" validate:"gte=0,lte=20"`
	SodaQty int    `json:"sodaQty" validate:"gte=0,lte=20"`
}

// updateOrderRequest is a full re-composition of the order: the client
// resubmits the whole cart, exactly like the edit screen re-saving.
type updateOrderRequest struct {
	CustomerName string              `json:"customerName"`
	DeliveryType string              `json:"deliveryType" validate:"required"`
	MotoFee      string              `json:"motoFee"`
	Adds         []addInOrderRequest `json:"adds"         validate:"required,min=1,dive"`
}

// Validate validates the update order request.
func (r *updateOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// Update handles the update order request.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	req := updateOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for update order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for update order", "error", err)

		return
	}

	dt, err := delivery.ParseType(req.DeliveryType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	b := cart.NewBuilder()
	b.SelectDeliveryType(dt)
	b.SetMotoFee(req.MotoFee)
	for _, add := range req.Adds {
		b.SetSelection(menu.Selection{
			Food:    add.Food,
			Cut:     add.Cut,
			Variant: add.Variant,
			Soda:    add.Soda,
			FoodQty: add.FoodQty,
			SodaQty: add.SodaQty,
		})
		b.AddLine()
	}

	composed, err := b.Commit(req.CustomerName)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, cart.ErrEmptyCart) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		slog.Error("Error composing order", "error", err)

		return
	}

	if err := service.Update(r.Context(), id, composed); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error updating order", "error", err)

		return
	}

	updated, err := service.ByID(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error fetching updated order", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(updated); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for update order", "error", err)
	}
}
