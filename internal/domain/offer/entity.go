package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidValidityWindow = errors.New("valid_from must not be after valid_to")

type Offer struct {
	id        uuid.UUID
	code      Code
	discount  Discount
	validFrom time.Time
	validTo   time.Time
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewOffer(
	id uuid.UUID,
	code string,
	discountType string,
	discountValue decimal.Decimal,
	validFrom, validTo time.Time,
	isActive bool,
) (*Offer, error) {
	offerCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(discountType, discountValue)
	if err != nil {
		return nil, err
	}

	if validFrom.After(validTo) {
		return nil, ErrInvalidValidityWindow
	}

	return &Offer{
		id:        id,
		code:      offerCode,
		discount:  discount,
		validFrom: validFrom,
		validTo:   validTo,
		isActive:  isActive,
	}, nil
}

// Reconstruct rebuilds an offer from persisted fields without running
// the constructor validations again.
func Reconstruct(
	id uuid.UUID,
	code Code,
	discount Discount,
	validFrom, validTo time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:        id,
		code:      code,
		discount:  discount,
		validFrom: validFrom,
		validTo:   validTo,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// IsWithinWindow reports whether t falls inside the validity window.
// Both boundaries are inclusive.
func (o *Offer) IsWithinWindow(t time.Time) bool {
	return !t.Before(o.validFrom) && !t.After(o.validTo)
}

func (o *Offer) MatchesCode(code string) bool {
	normalized, err := NewCode(code)
	if err != nil {
		return false
	}
	return o.code == normalized
}

// DiscountAmount computes the rounded discount for a given pre-discount
// reference amount.
func (o *Offer) DiscountAmount(reference decimal.Decimal) decimal.Decimal {
	return o.discount.Amount(reference)
}

func (o *Offer) ID() uuid.UUID        { return o.id }
func (o *Offer) Code() Code           { return o.code }
func (o *Offer) Discount() Discount   { return o.discount }
func (o *Offer) ValidFrom() time.Time { return o.validFrom }
func (o *Offer) ValidTo() time.Time   { return o.validTo }
func (o *Offer) IsActive() bool       { return o.isActive }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time { return o.updatedAt }
