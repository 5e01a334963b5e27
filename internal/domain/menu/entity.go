package menu

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyItemName     = errors.New("menu item name cannot be empty")
	ErrNegativeBasePrice = errors.New("menu item price cannot be negative")
)

// Item is a sellable menu entry. An item can carry a stored
// promotional price resolved from an offer code in the admin editor;
// EffectivePrice is what the storefront charges.
type Item struct {
	id              uuid.UUID
	name            string
	description     string
	category        string
	basePrice       decimal.Decimal
	offerCode       *string
	discountedPrice *decimal.Decimal
	isAvailable     bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewItem(id uuid.UUID, name, description, category string, basePrice decimal.Decimal) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyItemName
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativeBasePrice
	}
	return &Item{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		basePrice:   basePrice,
		isAvailable: true,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, description, category string,
	basePrice decimal.Decimal,
	offerCode *string,
	discountedPrice *decimal.Decimal,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:              id,
		name:            name,
		description:     description,
		category:        category,
		basePrice:       basePrice,
		offerCode:       offerCode,
		discountedPrice: discountedPrice,
		isAvailable:     isAvailable,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ApplyOffer stores a resolved promotional price alongside the code it
// came from. The caller resolves the price; the item only records it.
func (i *Item) ApplyOffer(code string, discountedPrice decimal.Decimal) {
	i.offerCode = &code
	i.discountedPrice = &discountedPrice
}

// ClearOffer drops the stored promotional price; the item reverts to
// its base price.
func (i *Item) ClearOffer() {
	i.offerCode = nil
	i.discountedPrice = nil
}

// EffectivePrice is the discounted price when one is stored, otherwise
// the base price.
func (i *Item) EffectivePrice() decimal.Decimal {
	if i.discountedPrice != nil {
		return *i.discountedPrice
	}
	return i.basePrice
}

func (i *Item) ID() uuid.UUID                     { return i.id }
func (i *Item) Name() string                      { return i.name }
func (i *Item) Description() string               { return i.description }
func (i *Item) Category() string                  { return i.category }
func (i *Item) BasePrice() decimal.Decimal        { return i.basePrice }
func (i *Item) OfferCode() *string                { return i.offerCode }
func (i *Item) DiscountedPrice() *decimal.Decimal { return i.discountedPrice }
func (i *Item) IsAvailable() bool                 { return i.isAvailable }
func (i *Item) CreatedAt() time.Time              { return i.createdAt }
func (i *Item) UpdatedAt() time.Time              { return i.updatedAt }

func (i *Item) SetAvailability(available bool) {
	i.isAvailable = available
}
