package delivery

import (
	"database/sql/driver"
	"errors"
)

// Type is where and how the order leaves the counter.
type Type string

const (
	TypeDineIn        Type = "Para Mesa"
	TypeTakeoutPerson Type = "Para Llevar (Persona)"
	TypeTakeoutMoto   Type = "Para Llevar (Moto)"
)

var ErrInvalidType = errors.New("invalid delivery type")

func (t Type) String() string {
	return string(t)
}

func (t Type) Value() (driver.Value, error) {
	return t.String(), nil
}

// AllowsFee reports whether this delivery type carries a rider fee.
// Only moto takeout does; every other type forces the fee to zero.
func (t Type) AllowsFee() bool {
	return t == TypeTakeoutMoto
}

func ParseType(v string) (Type, error) {
	switch v {
	case TypeDineIn.String():
		return TypeDineIn, nil
	case TypeTakeoutPerson.String():
		return TypeTakeoutPerson, nil
	case TypeTakeoutMoto.String():
		return TypeTakeoutMoto, nil
	default:
		return "", ErrInvalidType
	}
}
