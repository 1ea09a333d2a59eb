package postgresrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/pollosrrj/pos/internal/service/models/cartline"
	"github.com/pollosrrj/pos/internal/service/models/delivery"
	"github.com/pollosrrj/pos/internal/service/models/order"
	"github.com/pollosrrj/pos/internal/service/models/payment"
	"github.com/pollosrrj/pos/internal/service/models/status"
)

// ErrOrderNotFound is returned by ByID when no row matches.
var ErrOrderNotFound = errors.New("order not found")

// OrderDal represents the order data access layer model: one row of the
// orders table, timestamps as text, cart as serialized JSON.
type OrderDal struct {
	Id            int64          `db:"id"`
	CustomerName  string         `db:"customer_name"`
	Details       string         `db:"details"`
	Price         float64        `db:"price"`
	Status        string         `db:"status"`
	PaymentMethod string         `db:"payment_method"`
	DateCreated   string         `db:"date_created"`
	DatePaid      sql.NullString `db:"date_paid"`
	DeliveryType  string         `db:"delivery_type"`
	MotoPrice     float64        `db:"moto_price"`
	CartJson      string         `db:"cart_json"`
}

// ToModel converts an OrderDal row to the service layer Order model.
// cart_json is authoritative for the structured cart; when it does not
// parse, the lines stay empty and the stored details text is the fallback
// rendering. That is never an error.
func (d *OrderDal) ToModel() (*order.Order, error) {
	st, err := status.ParseStatus(d.Status)
	if err != nil {
		return nil, err
	}
	pm, err := payment.ParseMethod(d.PaymentMethod)
	if err != nil {
		return nil, err
	}
	dt, err := delivery.ParseType(d.DeliveryType)
	if err != nil {
		return nil, err
	}
	created, err := time.Parse(order.TimeLayout, d.DateCreated)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date_created: %w", err)
	}

	var paid *time.Time
	if d.DatePaid.Valid {
		t, err := time.Parse(order.TimeLayout, d.DatePaid.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date_paid: %w", err)
		}
		paid = &t
	}

	lines, err := cartline.UnmarshalCart(d.CartJson)
	if err != nil {
		lines = nil
	}

	return &order.Order{
		ID:           d.Id,
		CustomerName: d.CustomerName,
		Details:      d.Details,
		TotalPrice:   d.Price,
		Status:       st,
		Payment:      pm,
		DateCreated:  created,
		DatePaid:     paid,
		DeliveryType: dt,
		MotoFee:      d.MotoPrice,
		CartLines:    lines,
	}, nil
}

// OrderDalFromModel converts the service layer Order model to OrderDal.
func OrderDalFromModel(o *order.Order) (*OrderDal, error) {
	cartJson, err := cartline.MarshalCart(o.CartLines)
	if err != nil {
		return nil, err
	}

	dal := &OrderDal{
		Id:            o.ID,
		CustomerName:  o.CustomerName,
		Details:       o.Details,
		Price:         o.TotalPrice,
		Status:        o.Status.String(),
		PaymentMethod: o.Payment.String(),
		DateCreated:   o.DateCreated.Format(order.TimeLayout),
		DeliveryType:  o.DeliveryType.String(),
		MotoPrice:     o.MotoFee,
		CartJson:      cartJson,
	}
	if o.DatePaid != nil {
		dal.DatePaid = sql.NullString{String: o.DatePaid.Format(order.TimeLayout), Valid: true}
	}

	return dal, nil
}

var orderColumns = []string{
	"id",
	"customer_name",
	"details",
	"price",
	"status",
	"payment_method",
	"date_created",
	"date_paid",
	"delivery_type",
	"moto_price",
	"cart_json",
}

type PostgresOrderRepository struct {
	conn sqlx.ExtContext
}

func NewPostgresOrderRepository(conn sqlx.ExtContext) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
	}
}

// Insert stores a new order and returns it with the assigned id.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (order.Order, error) {
	dal, err := OrderDalFromModel(&o)
	if err != nil {
		return order.Order{}, err
	}

	query, args, err := sq.Insert("orders").
		Columns(
			"customer_name",
			"details",
			"price",
			"status",
			"payment_method",
			"date_created",
			"date_paid",
			"delivery_type",
			"moto_price",
			"cart_json",
		).
		Values(
			dal.CustomerName,
			dal.Details,
			dal.Price,
			dal.Status,
			dal.PaymentMethod,
			dal.DateCreated,
			dal.DatePaid,
			dal.DeliveryType,
			dal.MotoPrice,
			dal.CartJson,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, r.conn, &id, query, args...); err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	o.ID = id

	return o, nil
}

// Update overwrites the editable fields of an order. Status, payment
// method and both dates are left untouched.
func (r *PostgresOrderRepository) Update(ctx context.Context, o order.Order) error {
	dal, err := OrderDalFromModel(&o)
	if err != nil {
		return err
	}

	query, args, err := sq.Update("orders").
		Set("customer_name", dal.CustomerName).
		Set("details", dal.Details).
		Set("price", dal.Price).
		Set("delivery_type", dal.DeliveryType).
		Set("moto_price", dal.MotoPrice).
		Set("cart_json", dal.CartJson).
		Where(sq.Eq{"id": o.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}

// UpdateStatus applies a status transition with its payment method and
// payment timestamp.
func (r *PostgresOrderRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	s status.Status,
	m payment.Method,
	datePaid *time.Time,
) error {
	var paid sql.NullString
	if datePaid != nil {
		paid = sql.NullString{String: datePaid.Format(order.TimeLayout), Valid: true}
	}

	query, args, err := sq.Update("orders").
		Set("status", s.String()).
		Set("payment_method", m.String()).
		Set("date_paid", paid).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build status update query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}

// Delete removes an order. A missing id is a no-op, not an error.
func (r *PostgresOrderRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("orders").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

// DeleteByStatus removes every order with the given status.
func (r *PostgresOrderRepository) DeleteByStatus(ctx context.Context, s status.Status) error {
	query, args, err := sq.Delete("orders").
		Where(sq.Eq{"status": s.String()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete orders by status: %w", err)
	}

	return nil
}

// ByID fetches a single order.
func (r *PostgresOrderRepository) ByID(ctx context.Context, id int64) (order.Order, error) {
	query, args, err := sq.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to build select query: %w", err)
	}

	var dal OrderDal
	if err := sqlx.GetContext(ctx, r.conn, &dal, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return order.Order{}, ErrOrderNotFound
		}

		return order.Order{}, fmt.Errorf("failed to query order: %w", err)
	}

	model, err := dal.ToModel()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to convert order dal to model: %w", err)
	}

	return *model, nil
}

// ListActive lists ACTIVO orders.
func (r *PostgresOrderRepository) ListActive(ctx context.Context) ([]order.Order, error) {
	return r.list(ctx, sq.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": status.StatusActive.String()}))
}

// ByStatus lists orders with the given status, newest created first.
func (r *PostgresOrderRepository) ByStatus(ctx context.Context, s status.Status) ([]order.Order, error) {
	return r.list(ctx, sq.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": s.String()}).
		OrderBy("date_created DESC"))
}

// ReportData lists ENTREGADO orders ordered by date_paid descending,
// newest payment first.
func (r *PostgresOrderRepository) ReportData(ctx context.Context) ([]order.Order, error) {
	return r.list(ctx, sq.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": status.StatusDelivered.String()}).
		OrderBy("date_paid DESC"))
}

func (r *PostgresOrderRepository) list(ctx context.Context, builder sq.SelectBuilder) ([]order.Order, error) {
	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var dals []OrderDal
	if err := sqlx.SelectContext(ctx, r.conn, &dals, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	result := make([]order.Order, 0, len(dals))
	for i := range dals {
		model, err := dals[i].ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
		}
		result = append(result, *model)
	}

	return result, nil
}
