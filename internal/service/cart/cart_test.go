package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollosrrj/pos/internal/service/cart"
	"github.com/pollosrrj/pos/internal/service/models/cartline"
	"github.com/pollosrrj/pos/internal/service/models/delivery"
	"github.com/pollosrrj/pos/internal/service/models/menu"
	"github.com/pollosrrj/pos/internal/service/models/order"
)

func TestAddLine_AppendsAndResetsSelectors(t *testing.T) {
	b := cart.NewBuilder()
	sel := b.Selection()
	sel.Food = menu.FoodBroaster
	sel.Cut = "Pecho"
	sel.FoodQty = 2
	b.SetSelection(sel)

	b.AddLine()

	require.Len(t, b.Lines(), 1)
	assert.Equal(t, 36.0, b.Lines()[0].Price)

	// Quantities and soda reset, food side stays.
	after := b.Selection()
	assert.Equal(t, 1, after.FoodQty)
	assert.Equal(t, 1, after.SodaQty)
	assert.Equal(t, menu.SodaNone, after.Soda)
	assert.Equal(t, menu.FoodBroaster, after.Food)
	assert.Equal(t, "Pecho", after.Cut)
}

func TestAddLine_SodaProducesOnlySodaLine(t *testing.T) {
	b := cart.NewBuilder()
	sel := b.Selection()
	sel.Soda = "Oro Peque"
	sel.SodaQty = 2
	b.SetSelection(sel)

	b.AddLine()

	require.Len(t, b.Lines(), 1)
	assert.Equal(t, "Oro Peque", b.Lines()[0].Desc)
	assert.Equal(t, 6.0, b.Lines()[0].Price)
}

func TestRemoveLine_OutOfRangeIsNoOp(t *testing.T) {
	b := cart.NewBuilder()
	b.AddLine()
	require.Len(t, b.Lines(), 1)

	b.RemoveLine(-1)
	b.RemoveLine(5)
	assert.Len(t, b.Lines(), 1)

	b.RemoveLine(0)
	assert.Empty(t, b.Lines())
}

func TestCurrentTotal_FeeParsing(t *testing.T) {
	b := cart.NewBuilder()
	b.SelectDeliveryType(delivery.TypeTakeoutMoto)
	b.AddLine() // default broaster pierna, 16

	b.SetMotoFee("25")
	assert.Equal(t, 41.0, b.CurrentTotal())

	b.SetMotoFee("garbage")
	assert.Equal(t, 16.0, b.CurrentTotal())

	b.SetMotoFee("")
	assert.Equal(t, 16.0, b.CurrentTotal())
}

func TestSelectDeliveryType_SwitchingAwayResetsFee(t *testing.T) {
	b := cart.NewBuilder()
	b.SelectDeliveryType(delivery.TypeTakeoutMoto)
	b.SetMotoFee("25")
	assert.Equal(t, 25.0, b.MotoFee())

	b.SelectDeliveryType(delivery.TypeDineIn)
	assert.Zero(t, b.MotoFee())

	// Coming back does not restore the old fee.
	b.SelectDeliveryType(delivery.TypeTakeoutMoto)
	assert.Zero(t, b.MotoFee())
}

func TestCommit_EmptyCart(t *testing.T) {
	b := cart.NewBuilder()
	_, err := b.Commit("Juan")
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
}

func TestCommit_ComputesTotalsAndDetails(t *testing.T) {
	b := cart.NewBuilder()
	b.SelectDeliveryType(delivery.TypeTakeoutMoto)
	b.SetMotoFee("5")
	b.AddLine() // 16

	o, err := b.Commit("")
	require.NoError(t, err)

	assert.Equal(t, order.DefaultCustomerName, o.CustomerName)
	assert.Equal(t, 21.0, o.TotalPrice)
	assert.Equal(t, 5.0, o.MotoFee)
	assert.Equal(t, delivery.TypeTakeoutMoto, o.DeliveryType)
	assert.Contains(t, o.Details, "1x Pollo Pierna (16 Bs)")
	assert.Contains(t, o.Details, "Moto: 5 Bs")
	assert.Contains(t, o.Details, "(Para Llevar (Moto))")
	assert.Zero(t, o.ID)
}

func TestLoadExisting_RoundTrip(t *testing.T) {
	existing := order.Order{
		ID:           7,
		CustomerName: "Maria",
		DeliveryType: delivery.TypeTakeoutMoto,
		MotoFee:      10,
		CartLines: []cartline.CartLine{
			cartline.New(2, "Hamburguesa", 17),
		},
	}

	b := cart.NewBuilder()
	b.LoadExisting(existing)

	assert.Equal(t, int64(7), b.EditingID())
	assert.Equal(t, 44.0, b.CurrentTotal())

	o, err := b.Commit("Maria")
	require.NoError(t, err)
	assert.Equal(t, int64(7), o.ID)
	assert.Equal(t, 44.0, o.TotalPrice)
}
