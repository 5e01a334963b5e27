package order

import (
	"errors"
	"time"

	"restro-api/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder    = errors.New("order must contain at least one line")
	ErrInvalidStatus = errors.New("invalid order status")
)

type Status string

const (
	StatusPlaced    Status = "placed"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func NewStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPlaced, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Order is the priced, placed cart. Totals are computed once at
// placement from the lines and the offer valid at that instant; they
// are stored with the order and never recomputed afterwards.
type Order struct {
	id          uuid.UUID
	userID      uuid.UUID
	fulfillment pricing.Fulfillment
	lines       []pricing.CartLine
	offerID     *uuid.UUID
	offerCode   *string
	totals      pricing.Totals
	status      Status
	placedAt    time.Time
}

func NewOrder(
	userID uuid.UUID,
	fulfillment pricing.Fulfillment,
	lines []pricing.CartLine,
	offerID *uuid.UUID,
	offerCode *string,
	totals pricing.Totals,
	placedAt time.Time,
) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	return &Order{
		id:          uuid.New(),
		userID:      userID,
		fulfillment: fulfillment,
		lines:       lines,
		offerID:     offerID,
		offerCode:   offerCode,
		totals:      totals,
		status:      StatusPlaced,
		placedAt:    placedAt,
	}, nil
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) UserID() uuid.UUID                { return o.userID }
func (o *Order) Fulfillment() pricing.Fulfillment { return o.fulfillment }
func (o *Order) Lines() []pricing.CartLine        { return o.lines }
func (o *Order) OfferID() *uuid.UUID              { return o.offerID }
func (o *Order) OfferCode() *string               { return o.offerCode }
func (o *Order) Totals() pricing.Totals           { return o.totals }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) PlacedAt() time.Time              { return o.placedAt }
