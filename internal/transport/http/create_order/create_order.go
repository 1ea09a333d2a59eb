package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pollosrrj/pos/internal/service/cart"
	"github.com/pollosrrj/pos/internal/service/models/delivery"
	"github.com/pollosrrj/pos/internal/service/models/menu"
	"github.com/pollosrrj/pos/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, o order.Order) (order.Order, error)
}

// addInOrderRequest is one add-to-cart action: a menu selection. Pricing
// happens server-side; the client only picks options.
type addInOrderRequest struct {
	Food    string `json:"food"`
	Cut     string `json:"cut"`
	Variant string `json:"variant"`
	Soda    string `json:"soda"`
	FoodQty int    `json:"foodQty" validate:"gte=0,lte=20"`
	SodaQty int    `json:"sodaQty" validate:"gte=0,lte=20"`
}

func (r *addInOrderRequest) toSelection() menu.Selection {
	return menu.Selection{
		Food:    r.Food,
		Cut:     r.Cut,
		Variant: r.Variant,
		Soda:    r.Soda,
		FoodQty: r.FoodQty,
		SodaQty: r.SodaQty,
	}
}

// createOrderRequest represents a create order request.
type createOrderRequest struct {
	CustomerName string              `json:"customerName"`
	DeliveryType string              `json:"deliveryType" validate:"required"`
	MotoFee      string              `json:"motoFee"`
	Adds         []addInOrderRequest `json:"adds"         validate:"required,min=1,dive"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// BuildOrder runs the request through the cart builder: delivery first
// (it gates the moto fee), then one AddLine per selection.
func BuildOrder(customerName, deliveryType, motoFee string, adds []addInOrderRequest) (order.Order, error) {
	dt, err := delivery.ParseType(deliveryType)
	if err != nil {
		return order.Order{}, err
	}

	b := cart.NewBuilder()
	b.SelectDeliveryType(dt)
	b.SetMotoFee(motoFee)
	for _, add := range adds {
		b.SetSelection(add.toSelection())
		b.AddLine()
	}

	return b.Commit(customerName)
}

// Create handles the create order request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	composed, err := BuildOrder(req.CustomerName, req.DeliveryType, req.MotoFee, req.Adds)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, cart.ErrEmptyCart) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		slog.Error("Error composing order", "error", err)

		return
	}

	created, err := service.Create(r.Context(), composed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating order", "error", err)

		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for create order", "error", err)
	}
}
