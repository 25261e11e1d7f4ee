package board

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewOrderValid(t *testing.T) {
	o, err := NewOrder("user1", dec("3.5"), 306, SideSell)
	require.NoError(t, err)
	require.Equal(t, "user1", o.UserID())
	require.True(t, o.Quantity().Equal(dec("3.5")))
	require.Equal(t, int64(306), o.PricePerKilo())
	require.Equal(t, SideSell, o.Side())
}

func TestNewOrderMissingUserID(t *testing.T) {
	o, err := NewOrder("", dec("3.5"), 306, SideSell)
	require.ErrorIs(t, err, ErrMissingUserID)
	require.Nil(t, o)
}

func TestNewOrderMissingSide(t *testing.T) {
	o, err := NewOrder("user1", dec("3.5"), 306, "")
	require.ErrorIs(t, err, ErrMissingSide)
	require.Nil(t, o)
}

func TestNewOrderUnknownSide(t *testing.T) {
	o, err := NewOrder("user1", dec("3.5"), 306, "HOLD")
	require.Error(t, err)
	require.Nil(t, o)
}

func TestNewOrderQuantityNotPositive(t *testing.T) {
	for _, qty := range []string{"0", "-1", "-0.001"} {
		o, err := NewOrder("user1", dec(qty), 306, SideBuy)
		require.ErrorIs(t, err, ErrQuantityNotPositive, "quantity %s", qty)
		require.Nil(t, o)
	}
}

func TestNewOrderPriceNotPositive(t *testing.T) {
	for _, price := range []int64{0, -1, -306} {
		o, err := NewOrder("user1", dec("3.5"), price, SideBuy)
		require.ErrorIs(t, err, ErrPriceNotPositive, "price %d", price)
		require.Nil(t, o)
	}
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("BUY")
	require.NoError(t, err)
	require.Equal(t, SideBuy, side)

	side, err = ParseSide("SELL")
	require.NoError(t, err)
	require.Equal(t, SideSell, side)

	_, err = ParseSide("buy")
	require.Error(t, err)
	_, err = ParseSide("")
	require.Error(t, err)
}

func TestIsValidationError(t *testing.T) {
	_, err := NewOrder("", dec("1"), 1, SideBuy)
	require.True(t, IsValidationError(err))
	require.True(t, IsValidationError(ErrNilOrder))
	require.False(t, IsValidationError(nil))
}
