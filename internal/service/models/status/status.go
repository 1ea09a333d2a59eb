package status

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// Status is the lifecycle state of a persisted order.
type Status string

const (
	// StatusActive is the initial, editable state.
	StatusActive Status = "ACTIVO"
	// StatusDelivered means the order was handed over and paid.
	StatusDelivered Status = "ENTREGADO"
	// StatusCredit means the order was handed over but is still owed.
	StatusCredit Status = "FIADO"
)

var ErrInvalidStatus = errors.New("invalid status")

func (s Status) String() string {
	return string(s)
}

func (s Status) Value() (driver.Value, error) {
	return s.String(), nil
}

func ParseStatus(v string) (Status, error) {
	switch v {
	case StatusActive.String():
		return StatusActive, nil
	case StatusDelivered.String():
		return StatusDelivered, nil
	case StatusCredit.String():
		return StatusCredit, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Transition validates a status change. The only legal moves are
// ACTIVO -> ENTREGADO, ACTIVO -> FIADO and FIADO -> ENTREGADO; nothing
// ever returns to ACTIVO.
func Transition(from, to Status) error {
	switch {
	case from == StatusActive && to == StatusDelivered:
		return nil
	case from == StatusActive && to == StatusCredit:
		return nil
	case from == StatusCredit && to == StatusDelivered:
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
}

var ErrInvalidTransition = errors.New("invalid status transition")
