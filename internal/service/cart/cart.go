package cart

import (
	"errors"
	"strconv"
	"strings"

	"github.com/pollosrrj/pos/internal/service/models/cartline"
	"github.com/pollosrrj/pos/internal/service/models/delivery"
	"github.com/pollosrrj/pos/internal/service/models/menu"
	"github.com/pollosrrj/pos/internal/service/models/order"
)

// ErrEmptyCart is returned when an order with no lines is committed.
var ErrEmptyCart = errors.New("empty order")

// Builder accumulates the state of one order under construction: the
// per-add selectors, the committed cart lines and the delivery fee input.
// It is discarded on save or cancel.
type Builder struct {
	selection    menu.Selection
	deliveryType delivery.Type
	feeInput     string
	lines        []cartline.CartLine
	editingID    int64
}

// NewBuilder starts a fresh order form.
func NewBuilder() *Builder {
	return &Builder{
		selection:    menu.DefaultSelection(),
		deliveryType: delivery.TypeDineIn,
	}
}

func (b *Builder) Selection() menu.Selection {
	return b.selection
}

func (b *Builder) SetSelection(sel menu.Selection) {
	b.selection = sel
}

func (b *Builder) DeliveryType() delivery.Type {
	return b.deliveryType
}

// SelectDeliveryType switches the delivery type. Moving away from moto
// takeout resets the fee input; it has to be re-entered.
func (b *Builder) SelectDeliveryType(t delivery.Type) {
	b.deliveryType = t
	if !t.AllowsFee() {
		b.feeInput = ""
	}
}

// SetMotoFee stores the raw fee input. Parsing is deferred and
// best-effort: garbage counts as zero, never as an error.
func (b *Builder) SetMotoFee(raw string) {
	b.feeInput = raw
}

// MotoFee returns the parsed delivery fee, zero when unparsable.
func (b *Builder) MotoFee() float64 {
	fee, err := strconv.ParseFloat(strings.TrimSpace(b.feeInput), 64)
	if err != nil {
		return 0
	}

	return fee
}

// AddLine prices the current selection and appends the resulting line(s)
// to the cart, then resets the per-add selectors: quantities back to 1 and
// soda back to none. Food, cut, variant and delivery stay as chosen.
func (b *Builder) AddLine() {
	b.lines = append(b.lines, menu.Lines(b.selection)...)

	b.selection.FoodQty = 1
	b.selection.SodaQty = 1
	b.selection.Soda = menu.SodaNone
}

// RemoveLine drops the line at position i; out-of-range is a silent no-op.
func (b *Builder) RemoveLine(i int) {
	if i < 0 || i >= len(b.lines) {
		return
	}
	b.lines = append(b.lines[:i], b.lines[i+1:]...)
}

func (b *Builder) Lines() []cartline.CartLine {
	return b.lines
}

// CurrentTotal is the running total shown while composing: all line
// subtotals plus the parsed delivery fee.
func (b *Builder) CurrentTotal() float64 {
	return cartline.Total(b.lines) + b.MotoFee()
}

// EditingID is nonzero when the builder was seeded from a stored order;
// commit then updates instead of creating.
func (b *Builder) EditingID() int64 {
	return b.editingID
}

// Commit finalizes the cart into an Order value ready for persistence.
// The total and details rendering are computed here; an empty cart is
// rejected before anything reaches the store.
func (b *Builder) Commit(customerName string) (order.Order, error) {
	if len(b.lines) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	if strings.TrimSpace(customerName) == "" {
		customerName = order.DefaultCustomerName
	}

	o := order.Order{
		ID:           b.editingID,
		CustomerName: customerName,
		DeliveryType: b.deliveryType,
		MotoFee:      b.MotoFee(),
		CartLines:    append([]cartline.CartLine(nil), b.lines...),
	}
	o.TotalPrice = o.ComputeTotal()
	o.Details = o.RenderDetails()

	return o, nil
}

// LoadExisting seeds the builder from a stored order for re-editing.
func (b *Builder) LoadExisting(o order.Order) {
	b.editingID = o.ID
	b.deliveryType = o.DeliveryType
	b.feeInput = ""
	if o.MotoFee > 0 {
		b.feeInput = cartline.FormatPrice(o.MotoFee)
	}
	b.lines = append([]cartline.CartLine(nil), o.CartLines...)
}
