package order

import (
	"strings"
	"time"

	"github.com/pollosrrj/pos/internal/service/models/cartline"
	"github.com/pollosrrj/pos/internal/service/models/delivery"
	"github.com/pollosrrj/pos/internal/service/models/payment"
	"github.com/pollosrrj/pos/internal/service/models/status"
)

// TimeLayout is the persisted timestamp format for date_created/date_paid.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultCustomerName is used when the customer field is left blank.
const DefaultCustomerName = "Cliente"

// Order is a finalized, persisted order.
type Order struct {
	ID           int64               `json:"id"`
	CustomerName string              `json:"customerName"`
	Details      string              `json:"details"`
	TotalPrice   float64             `json:"totalPrice"`
	Status       status.Status       `json:"status"`
	Payment      payment.Method      `json:"paymentMethod"`
	DateCreated  time.Time           `json:"dateCreated"`
	DatePaid     *time.Time          `json:"datePaid,omitempty"`
	DeliveryType delivery.Type       `json:"deliveryType"`
	MotoFee      float64             `json:"motoFee"`
	CartLines    []cartline.CartLine `json:"cartLines"`
}

// ComputeTotal recomputes the order total from its lines and moto fee.
// Stored totals are never trusted from the caller.
func (o *Order) ComputeTotal() float64 {
	return cartline.Total(o.CartLines) + o.MotoFee
}

// RenderDetails produces the denormalized human-readable summary persisted
// alongside cart_json: one line per cart entry, the moto fee if nonzero and
// the delivery type annotation.
func (o *Order) RenderDetails() string {
	var b strings.Builder
	for _, l := range o.CartLines {
		b.WriteString(l.String())
		b.WriteString("\n")
	}
	if o.MotoFee > 0 {
		b.WriteString("Moto: " + cartline.FormatPrice(o.MotoFee) + " Bs\n")
	}
	b.WriteString("(" + o.DeliveryType.String() + ")")

	return b.String()
}
