package response

import (
	"time"

	"restro-api/internal/domain/pricing"
	"restro-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuItemResponse struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	BasePrice       decimal.Decimal  `json:"basePrice"`
	OfferCode       *string          `json:"offerCode,omitempty"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice,omitempty"`
	EffectivePrice  decimal.Decimal  `json:"effectivePrice"`
	IsAvailable     bool             `json:"isAvailable"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type ItemOfferPreviewResponse struct {
	IsValid         bool             `json:"isValid"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice,omitempty"`
	Message         string           `json:"message"`
}

func FromMenuItemView(view *queries.MenuItemView) *MenuItemResponse {
	return &MenuItemResponse{
		ID:              view.ID,
		Name:            view.Name,
		Description:     view.Description,
		Category:        view.Category,
		BasePrice:       view.BasePrice,
		OfferCode:       view.OfferCode,
		DiscountedPrice: view.DiscountedPrice,
		EffectivePrice:  view.EffectivePrice,
		IsAvailable:     view.IsAvailable,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	}
}

func FromItemOfferResolution(r *pricing.ItemOfferResolution) *ItemOfferPreviewResponse {
	resp := &ItemOfferPreviewResponse{
		IsValid: r.IsValid,
		Message: r.Message,
	}
	if r.IsValid {
		price := r.DiscountedPrice
		resp.DiscountedPrice = &price
	}
	return resp
}
