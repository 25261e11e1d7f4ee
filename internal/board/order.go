package board

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// ParseSide maps a wire-level side string onto a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideBuy:
		return SideBuy, nil
	case SideSell:
		return SideSell, nil
	default:
		return "", fmt.Errorf("unknown order side %q", s)
	}
}

// Validation failures. Missing-field and out-of-range errors are kept
// distinct so callers can report them separately.
var (
	ErrMissingUserID       = errors.New("user id is required")
	ErrMissingSide         = errors.New("order side is required")
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
	ErrPriceNotPositive    = errors.New("price per kilo must be greater than zero")
	ErrNilOrder            = errors.New("order is required")
)

// IsValidationError reports whether err is a bad-input error raised by
// NewOrder or Registry.Register.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingUserID) ||
		errors.Is(err, ErrMissingSide) ||
		errors.Is(err, ErrQuantityNotPositive) ||
		errors.Is(err, ErrPriceNotPositive) ||
		errors.Is(err, ErrNilOrder)
}

// Order is one registered trade intent: a user offering to buy or sell a
// quantity of the commodity at a whole-unit price per kilo. Orders are
// immutable once constructed; changing price or quantity means cancelling
// and registering a new order.
type Order struct {
	userID       string
	quantity     decimal.Decimal // kilograms
	pricePerKilo int64           // whole currency units
	side         Side
}

// NewOrder validates its arguments and returns the order. An order that
// fails validation is never constructed.
func NewOrder(userID string, quantity decimal.Decimal, pricePerKilo int64, side Side) (*Order, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w, got %s", ErrQuantityNotPositive, quantity)
	}
	if pricePerKilo <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrPriceNotPositive, pricePerKilo)
	}
	if side == "" {
		return nil, ErrMissingSide
	}
	if _, err := ParseSide(string(side)); err != nil {
		return nil, err
	}
	return &Order{
		userID:       userID,
		quantity:     quantity,
		pricePerKilo: pricePerKilo,
		side:         side,
	}, nil
}

func (o *Order) UserID() string            { return o.userID }
func (o *Order) Quantity() decimal.Decimal { return o.quantity }
func (o *Order) PricePerKilo() int64       { return o.pricePerKilo }
func (o *Order) Side() Side                { return o.side }
