//go:build unit || e2e

package builder

import (
	"time"

	domoffer "restro-api/internal/domain/offer"
	"restro-api/internal/handler/dto/request"
	"restro-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	ID            uuid.UUID
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	ValidFrom     time.Time
	ValidTo       time.Time
	IsActive      bool
}

func NewOfferBuilder() *OfferBuilder {
	now := time.Now()
	return &OfferBuilder{
		ID:            uuid.New(),
		Code:          "WELCOME10",
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(10),
		ValidFrom:     now.Add(-24 * time.Hour),
		ValidTo:       now.Add(24 * time.Hour),
		IsActive:      true,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithCode(code string) *OfferBuilder {
	b.Code = code
	return b
}

func (b *OfferBuilder) WithFixedDiscount(value string) *OfferBuilder {
	b.DiscountType = "fixed"
	b.DiscountValue = decimal.RequireFromString(value)
	return b
}

func (b *OfferBuilder) WithPercentageDiscount(value string) *OfferBuilder {
	b.DiscountType = "percentage"
	b.DiscountValue = decimal.RequireFromString(value)
	return b
}

func (b *OfferBuilder) WithWindow(from, to time.Time) *OfferBuilder {
	b.ValidFrom = from
	b.ValidTo = to
	return b
}

func (b *OfferBuilder) WithActive(active bool) *OfferBuilder {
	b.IsActive = active
	return b
}

func (b *OfferBuilder) BuildDomain() (*domoffer.Offer, error) {
	return domoffer.NewOffer(b.ID, b.Code, b.DiscountType, b.DiscountValue, b.ValidFrom, b.ValidTo, b.IsActive)
}

func (b *OfferBuilder) MustBuildDomain() *domoffer.Offer {
	o, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return o
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	now := time.Now()
	return &queries.OfferView{
		ID:            b.ID,
		Code:          b.Code,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		ValidFrom:     b.ValidFrom,
		ValidTo:       b.ValidTo,
		IsActive:      b.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *OfferBuilder) BuildCreateRequestDTO() request.CreateOfferRequest {
	return request.CreateOfferRequest{
		Code:          b.Code,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		ValidFrom:     b.ValidFrom,
		ValidTo:       b.ValidTo,
		IsActive:      b.IsActive,
	}
}
