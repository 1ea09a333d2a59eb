package ordersvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pollosrrj/pos/internal/dal/interfaces/iauditrepo"
	"github.com/pollosrrj/pos/internal/dal/interfaces/iorderrepo"
	"github.com/pollosrrj/pos/internal/service/models/auditevent"
	"github.com/pollosrrj/pos/internal/service/models/order"
	"github.com/pollosrrj/pos/internal/service/models/payment"
	"github.com/pollosrrj/pos/internal/service/models/status"
)

// ErrPendingNotPayable is returned when a delivery is attempted with the
// PENDIENTE placeholder method.
var ErrPendingNotPayable = errors.New("payment method cannot be PENDIENTE")

// OrderService owns the durable order records and their status machine.
type OrderService struct {
	orderRepo iorderrepo.IOrderRepository
	auditRepo iauditrepo.IAuditRepository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.orderRepo == nil {
		panic("order service requires an order repository")
	}

	return s
}

// WithOrderRepository sets the order repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.orderRepo = repo
	}
}

// WithAuditRepository sets the audit event publisher for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithAuditRepository(repo iauditrepo.IAuditRepository) option {
	return func(s *OrderService) {
		s.auditRepo = repo
	}
}

// Create persists a composed order. The total and details rendering are
// recomputed here; whatever the caller put in those fields is discarded.
// New orders always start ACTIVO / PENDIENTE with no payment date.
func (s *OrderService) Create(ctx context.Context, o order.Order) (order.Order, error) {
	if !o.DeliveryType.AllowsFee() {
		o.MotoFee = 0
	}
	o.TotalPrice = o.ComputeTotal()
	o.Details = o.RenderDetails()
	o.Status = status.StatusActive
	o.Payment = payment.MethodPending
	o.DateCreated = time.Now()
	o.DatePaid = nil

	created, err := s.orderRepo.Insert(ctx, o)
	if err != nil {
		return order.Order{}, err
	}

	s.logEvent(ctx, auditevent.Event{
		Action:     auditevent.ActionCreated,
		OrderID:    created.ID,
		Status:     created.Status.String(),
		Payment:    created.Payment.String(),
		TotalPrice: created.TotalPrice,
		At:         time.Now(),
	})

	return created, nil
}

// Update overwrites the customer, cart, totals and delivery fields of an
// existing order. Status, payment method and dates are never touched.
// Any id is accepted, mirroring the re-edit flow of the tracker, which
// only offers editing for ACTIVO orders but does not enforce it here.
func (s *OrderService) Update(ctx context.Context, id int64, o order.Order) error {
	o.ID = id
	if !o.DeliveryType.AllowsFee() {
		o.MotoFee = 0
	}
	o.TotalPrice = o.ComputeTotal()
	o.Details = o.RenderDetails()

	if err := s.orderRepo.Update(ctx, o); err != nil {
		return err
	}

	s.logEvent(ctx, auditevent.Event{
		Action:     auditevent.ActionUpdated,
		OrderID:    id,
		TotalPrice: o.TotalPrice,
		At:         time.Now(),
	})

	return nil
}

// MarkDelivered is the single transition out of ACTIVO. Paying FIADO
// parks the order as credit with no payment date; any real method closes
// it as ENTREGADO stamped now.
func (s *OrderService) MarkDelivered(ctx context.Context, id int64, m payment.Method) (order.Order, error) {
	if m == payment.MethodPending {
		return order.Order{}, ErrPendingNotPayable
	}

	o, err := s.orderRepo.ByID(ctx, id)
	if err != nil {
		return order.Order{}, err
	}

	target := status.StatusDelivered
	action := auditevent.ActionDelivered
	var datePaid *time.Time
	if m == payment.MethodCredit {
		target = status.StatusCredit
	} else {
		now := time.Now()
		datePaid = &now
	}

	if err := status.Transition(o.Status, target); err != nil {
		return order.Order{}, fmt.Errorf("failed to deliver order %d: %w", id, err)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, target, m, datePaid); err != nil {
		return order.Order{}, err
	}

	o.Status = target
	o.Payment = m
	o.DatePaid = datePaid

	s.logEvent(ctx, auditevent.Event{
		Action:     action,
		OrderID:    id,
		Status:     target.String(),
		Payment:    m.String(),
		TotalPrice: o.TotalPrice,
		At:         time.Now(),
	})

	return o, nil
}

// PayCredit settles a FIADO order: it becomes ENTREGADO with the given
// method and a payment date of now. FIADO itself is not a settlement.
func (s *OrderService) PayCredit(ctx context.Context, id int64, m payment.Method) (order.Order, error) {
	if m == payment.MethodPending || m == payment.MethodCredit {
		return order.Order{}, fmt.Errorf("%w: cannot settle credit with %s", payment.ErrInvalidMethod, m)
	}

	o, err := s.orderRepo.ByID(ctx, id)
	if err != nil {
		return order.Order{}, err
	}

	if err := status.Transition(o.Status, status.StatusDelivered); err != nil {
		return order.Order{}, fmt.Errorf("failed to settle order %d: %w", id, err)
	}

	now := time.Now()
	if err := s.orderRepo.UpdateStatus(ctx, id, status.StatusDelivered, m, &now); err != nil {
		return order.Order{}, err
	}

	o.Status = status.StatusDelivered
	o.Payment = m
	o.DatePaid = &now

	s.logEvent(ctx, auditevent.Event{
		Action:     auditevent.ActionCreditPaid,
		OrderID:    id,
		Status:     o.Status.String(),
		Payment:    m.String(),
		TotalPrice: o.TotalPrice,
		At:         now,
	})

	return o, nil
}

// Delete removes an order regardless of status. Idempotent.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logEvent(ctx, auditevent.Event{
		Action:  auditevent.ActionDeleted,
		OrderID: id,
		At:      time.Now(),
	})

	return nil
}

// ClearByStatus bulk-deletes all orders with the given status.
func (s *OrderService) ClearByStatus(ctx context.Context, st status.Status) error {
	if err := s.orderRepo.DeleteByStatus(ctx, st); err != nil {
		return err
	}

	s.logEvent(ctx, auditevent.Event{
		Action: auditevent.ActionCleared,
		Status: st.String(),
		At:     time.Now(),
	})

	return nil
}

// ByID fetches a single order.
func (s *OrderService) ByID(ctx context.Context, id int64) (order.Order, error) {
	return s.orderRepo.ByID(ctx, id)
}

// ListActive lists the open orders shown on the home board.
func (s *OrderService) ListActive(ctx context.Context) ([]order.Order, error) {
	return s.orderRepo.ListActive(ctx)
}

// ByStatus lists orders with the given status, newest created first.
func (s *OrderService) ByStatus(ctx context.Context, st status.Status) ([]order.Order, error) {
	return s.orderRepo.ByStatus(ctx, st)
}

// logEvent publishes an audit event best-effort; a failure never fails
// the mutation that produced it.
func (s *OrderService) logEvent(ctx context.Context, ev auditevent.Event) {
	if s.auditRepo == nil {
		return
	}
	if err := s.auditRepo.LogEvents(ctx, []auditevent.Event{ev}); err != nil {
		slog.Error("Failed to publish audit event", "action", ev.Action, "order_id", ev.OrderID, "error", err)
	}
}
