package cartline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollosrrj/pos/internal/service/models/cartline"
)

func TestNew_ComputesSubtotal(t *testing.T) {
	l := cartline.New(3, "Hamburguesa", 17)
	assert.Equal(t, 51.0, l.Price)
	assert.Equal(t, "3x Hamburguesa (51 Bs)", l.String())
}

func TestTotal(t *testing.T) {
	lines := []cartline.CartLine{
		cartline.New(2, "Pollo Pecho", 18),
		cartline.New(1, "Coca 3L", 20),
	}
	assert.Equal(t, 56.0, cartline.Total(lines))
	assert.Zero(t, cartline.Total(nil))
}

func TestMarshalCart_RoundTrip(t *testing.T) {
	lines := []cartline.CartLine{
		cartline.New(2, "Pollo Pecho [Solo Papa]", 19),
		cartline.New(1, "Mendocina 1L", 7),
		cartline.New(4, "Porción Solo Arroz", 4),
	}

	raw, err := cartline.MarshalCart(lines)
	require.NoError(t, err)

	got, err := cartline.UnmarshalCart(raw)
	require.NoError(t, err)
	require.Len(t, got, len(lines))
	for i := range lines {
		assert.Equal(t, lines[i].Qty, got[i].Qty)
		assert.Equal(t, lines[i].Desc, got[i].Desc)
		assert.Equal(t, lines[i].UnitPrice, got[i].UnitPrice)
		assert.Equal(t, lines[i].Price, got[i].Price)
	}
}

func TestUnmarshalCart_Malformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "not json", `{"qty":1}`} {
		_, err := cartline.UnmarshalCart(raw)
		assert.Error(t, err, raw)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "41", cartline.FormatPrice(41))
	assert.Equal(t, "25.5", cartline.FormatPrice(25.5))
	assert.Equal(t, "0", cartline.FormatPrice(0))
}
