package payment

import (
	"database/sql/driver"
	"errors"
)

// Method is how an order was (or will be) paid.
type Method string

const (
	// MethodPending is set on creation, before the order is delivered.
	MethodPending Method = "PENDIENTE"
	MethodCash    Method = "EFECTIVO"
	MethodQR      Method = "QR"
	// MethodCredit marks the order as owed ("fiado").
	MethodCredit Method = "FIADO"
)

var ErrInvalidMethod = errors.New("invalid payment method")

func (m Method) String() string {
	return string(m)
}

func (m Method) Value() (driver.Value, error) {
	return m.String(), nil
}

func ParseMethod(v string) (Method, error) {
	switch v {
	case MethodPending.String():
		return MethodPending, nil
	case MethodCash.String():
		return MethodCash, nil
	case MethodQR.String():
		return MethodQR, nil
	case MethodCredit.String():
		return MethodCredit, nil
	default:
		return "", ErrInvalidMethod
	}
}
