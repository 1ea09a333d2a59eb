package iorderrepo

import (
	"context"
	"time"

	"github.com/pollosrrj/pos/internal/service/models/order"
	"github.com/pollosrrj/pos/internal/service/models/payment"
	"github.com/pollosrrj/pos/internal/service/models/status"
)

// IOrderRepository is the interface for the order postgres repository.
type IOrderRepository interface {
	// Insert stores a new order and returns it with the assigned id.
	Insert(ctx context.Context, o order.Order) (order.Order, error)

	// Update overwrites the editable fields (customer, details, price,
	// delivery, moto fee, cart) of an existing order.
	Update(ctx context.Context, o order.Order) error

	// UpdateStatus applies a status transition together with its payment
	// method and payment timestamp.
	UpdateStatus(ctx context.Context, id int64, s status.Status, m payment.Method, datePaid *time.Time) error

	// Delete removes an order; deleting a missing id is a no-op.
	Delete(ctx context.Context, id int64) error

	// DeleteByStatus removes every order with the given status.
	DeleteByStatus(ctx context.Context, s status.Status) error

	// ByID fetches a single order.
	ByID(ctx context.Context, id int64) (order.Order, error)

	// ListActive lists ACTIVO orders.
	ListActive(ctx context.Context) ([]order.Order, error)

	// ByStatus lists orders with the given status, newest created first.
	ByStatus(ctx context.Context, s status.Status) ([]order.Order, error)

	// ReportData lists ENTREGADO orders ordered by date_paid descending.
	ReportData(ctx context.Context) ([]order.Order, error)
}
