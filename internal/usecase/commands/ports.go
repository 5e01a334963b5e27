package commands

import (
	"time"

	"restro-api/internal/domain/offer"
	"restro-api/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type OfferSnapshot struct {
	ID            uuid.UUID
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	ValidFrom     time.Time
	ValidTo       time.Time
	IsActive      bool
}

func (s OfferSnapshot) ToDomain() (*offer.Offer, error) {
	return offer.NewOffer(s.ID, s.Code, s.DiscountType, s.DiscountValue, s.ValidFrom, s.ValidTo, s.IsActive)
}

func toDomainOffers(snapshots []OfferSnapshot) ([]*offer.Offer, error) {
	offers := make([]*offer.Offer, 0, len(snapshots))
	for _, s := range snapshots {
		o, err := s.ToDomain()
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, nil
}

type MenuItemSnapshot struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Category        string
	BasePrice       decimal.Decimal
	OfferCode       *string
	DiscountedPrice *decimal.Decimal
	IsAvailable     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type SettingsSnapshot struct {
	GSTRatePercent decimal.Decimal
	DeliveryCharge decimal.Decimal
	ServiceCharge  decimal.Decimal
}

func (s SettingsSnapshot) Rates() pricing.Rates {
	return pricing.Rates{
		GSTRatePercent: s.GSTRatePercent,
		DeliveryCharge: s.DeliveryCharge,
		ServiceCharge:  s.ServiceCharge,
	}
}
