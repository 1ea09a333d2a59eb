package postgresrepo_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgresrepo "github.com/pollosrrj/pos/internal/dal/repositories/order/postgres"
	"github.com/pollosrrj/pos/internal/service/models/cartline"
	"github.com/pollosrrj/pos/internal/service/models/delivery"
	"github.com/pollosrrj/pos/internal/service/models/order"
	"github.com/pollosrrj/pos/internal/service/models/payment"
	"github.com/pollosrrj/pos/internal/service/models/status"
)

func TestOrderDal_RoundTrip(t *testing.T) {
	paid := time.Date(2026, 3, 15, 20, 12, 5, 0, time.UTC)
	o := order.Order{
		ID:           3,
		CustomerName: "Maria",
		Details:      "2x Pollo Pecho (36 Bs)\n(Para Mesa)",
		TotalPrice:   36,
		Status:       status.StatusDelivered,
		Payment:      payment.MethodQR,
		DateCreated:  time.Date(2026, 3, 15, 19, 45, 0, 0, time.UTC),
		DatePaid:     &paid,
		DeliveryType: delivery.TypeDineIn,
		CartLines:    []cartline.CartLine{cartline.New(2, "Pollo Pecho", 18)},
	}

	dal, err := postgresrepo.OrderDalFromModel(&o)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-15 19:45:00", dal.DateCreated)
	require.True(t, dal.DatePaid.Valid)
	assert.Equal(t, "2026-03-15 20:12:05", dal.DatePaid.String)

	got, err := dal.ToModel()
	require.NoError(t, err)

	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, o.CustomerName, got.CustomerName)
	assert.Equal(t, o.Status, got.Status)
	assert.Equal(t, o.Payment, got.Payment)
	require.NotNil(t, got.DatePaid)
	assert.True(t, got.DatePaid.Equal(paid))
	require.Len(t, got.CartLines, 1)
	assert.Equal(t, o.CartLines[0], got.CartLines[0])
}

func TestOrderDal_NullDatePaid(t *testing.T) {
	o := order.Order{
		Status:       status.StatusActive,
		Payment:      payment.MethodPending,
		DateCreated:  time.Date(2026, 3, 15, 19, 45, 0, 0, time.UTC),
		DeliveryType: delivery.TypeDineIn,
	}

	dal, err := postgresrepo.OrderDalFromModel(&o)
	require.NoError(t, err)
	assert.False(t, dal.DatePaid.Valid)

	got, err := dal.ToModel()
	require.NoError(t, err)
	assert.Nil(t, got.DatePaid)
}

func TestOrderDal_MalformedCartFallsBackToDetails(t *testing.T) {
	dal := postgresrepo.OrderDal{
		Id:            9,
		CustomerName:  "Cliente",
		Details:       "1x Salchipapa (16 Bs)\n(Para Mesa)",
		Price:         16,
		Status:        status.StatusActive.String(),
		PaymentMethod: payment.MethodPending.String(),
		DateCreated:   "2026-03-15 19:45:00",
		DeliveryType:  delivery.TypeDineIn.String(),
		CartJson:      "{not json",
	}

	got, err := dal.ToModel()
	require.NoError(t, err)

	assert.Nil(t, got.CartLines)
	assert.Equal(t, "1x Salchipapa (16 Bs)\n(Para Mesa)", got.Details)
}

func TestOrderDal_RejectsUnknownEnums(t *testing.T) {
	base := postgresrepo.OrderDal{
		Status:        status.StatusActive.String(),
		PaymentMethod: payment.MethodPending.String(),
		DateCreated:   "2026-03-15 19:45:00",
		DeliveryType:  delivery.TypeDineIn.String(),
		CartJson:      "[]",
	}

	bad := base
	bad.Status = "PAGADO"
	_, err := bad.ToModel()
	assert.ErrorIs(t, err, status.ErrInvalidStatus)

	bad = base
	bad.PaymentMethod = "TARJETA"
	_, err = bad.ToModel()
	assert.ErrorIs(t, err, payment.ErrInvalidMethod)

	bad = base
	bad.DatePaid = sql.NullString{String: "15/03/2026", Valid: true}
	_, err = bad.ToModel()
	assert.Error(t, err)
}
