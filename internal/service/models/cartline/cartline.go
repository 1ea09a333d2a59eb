package cartline

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CartLine is one priced menu selection inside an order. Price is always
// UnitPrice * Qty; it is carried on the wire (cart_json) but recomputed
// whenever a line is built.
type CartLine struct {
	Qty       int     `json:"qty"`
	Desc      string  `json:"desc"`
	UnitPrice float64 `json:"unit_price"`
	Price     float64 `json:"price"`
}

// New builds a line with the subtotal computed from its inputs.
func New(qty int, desc string, unitPrice float64) CartLine {
	return CartLine{
		Qty:       qty,
		Desc:      desc,
		UnitPrice: unitPrice,
		Price:     unitPrice * float64(qty),
	}
}

func (l CartLine) String() string {
	return fmt.Sprintf("%dx %s (%s Bs)", l.Qty, l.Desc, FormatPrice(l.Price))
}

// Total sums the line subtotals of a cart.
func Total(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price
	}

	return total
}

// MarshalCart serializes a cart to the cart_json wire format.
func MarshalCart(lines []CartLine) (string, error) {
	data, err := json.Marshal(lines)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cart: %w", err)
	}

	return string(data), nil
}

// UnmarshalCart parses cart_json. Malformed or legacy payloads return an
// error; callers fall back to the stored details text instead of failing.
func UnmarshalCart(raw string) ([]CartLine, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty cart payload")
	}

	var lines []CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return lines, nil
}

// FormatPrice renders a monetary amount the way receipts show it: whole
// numbers without a decimal point, fractions as entered.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
