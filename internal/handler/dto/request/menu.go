package request

import (
	"github.com/shopspring/decimal"
)

type CreateMenuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	BasePrice   decimal.Decimal `json:"base_price" binding:"required"`
}

type UpdateMenuItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	BasePrice   *decimal.Decimal `json:"base_price,omitempty"`
	IsAvailable *bool            `json:"is_available,omitempty"`
	// OfferCode set to a code stores the resolved promotional price on
	// the item; set to an empty string it clears the stored offer.
	OfferCode *string `json:"offer_code,omitempty"`
}

type ItemOfferPreviewRequest struct {
	Code      string          `json:"code" binding:"required"`
	BasePrice decimal.Decimal `json:"base_price" binding:"required"`
}
