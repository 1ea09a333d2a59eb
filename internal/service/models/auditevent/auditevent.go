package auditevent

import "time"

// Action identifies what happened to an order.
type Action string

const (
	ActionCreated    Action = "order.created"
	ActionUpdated    Action = "order.updated"
	ActionDelivered  Action = "order.delivered"
	ActionCreditPaid Action = "order.credit_paid"
	ActionDeleted    Action = "order.deleted"
	ActionCleared    Action = "order.cleared"
)

// Event is one audit record published for every order mutation.
type Event struct {
	Action     Action    `json:"action"`
	OrderID    int64     `json:"orderId"`
	Status     string    `json:"status,omitempty"`
	Payment    string    `json:"paymentMethod,omitempty"`
	TotalPrice float64   `json:"totalPrice,omitempty"`
	At         time.Time `json:"at"`
}
