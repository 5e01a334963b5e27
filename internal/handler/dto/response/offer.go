package response

import (
	"time"

	"restro-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	ValidFrom     time.Time       `json:"validFrom"`
	ValidTo       time.Time       `json:"validTo"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func FromOfferView(view *queries.OfferView) *OfferResponse {
	return &OfferResponse{
		ID:            view.ID,
		Code:          view.Code,
		DiscountType:  view.DiscountType,
		DiscountValue: view.DiscountValue,
		ValidFrom:     view.ValidFrom,
		ValidTo:       view.ValidTo,
		IsActive:      view.IsActive,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
}
