package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyLineName      = errors.New("cart line name cannot be empty")
	ErrInvalidQuantity    = errors.New("cart line quantity must be positive")
	ErrNegativeUnitPrice  = errors.New("cart line price cannot be negative")
	ErrInvalidFulfillment = errors.New("fulfillment must be pickup or delivery")
)

type Fulfillment string

const (
	FulfillmentPickup   Fulfillment = "pickup"
	FulfillmentDelivery Fulfillment = "delivery"
)

func NewFulfillment(value string) (Fulfillment, error) {
	switch Fulfillment(value) {
	case FulfillmentPickup, FulfillmentDelivery:
		return Fulfillment(value), nil
	default:
		return "", ErrInvalidFulfillment
	}
}

// CartLine is ephemeral; it is constructed fresh from the customer's
// cart for each computation and never persisted by the pricing core.
// The constructor is the only place quantity and price are checked, so
// downstream arithmetic can assume both are well-formed.
type CartLine struct {
	name      string
	quantity  int
	unitPrice decimal.Decimal
}

func NewCartLine(name string, quantity int, unitPrice decimal.Decimal) (CartLine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CartLine{}, ErrEmptyLineName
	}
	if quantity <= 0 {
		return CartLine{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return CartLine{}, ErrNegativeUnitPrice
	}
	return CartLine{name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l CartLine) Name() string               { return l.name }
func (l CartLine) Quantity() int              { return l.quantity }
func (l CartLine) UnitPrice() decimal.Decimal { return l.unitPrice }

// Amount is quantity times unit price, unrounded; the subtotal rounds
// once over the sum.
func (l CartLine) Amount() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}
