package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOfferRequest struct {
	Code          string          `json:"code" binding:"required"`
	DiscountType  string          `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue decimal.Decimal `json:"discount_value" binding:"required"`
	ValidFrom     time.Time       `json:"valid_from" binding:"required"`
	ValidTo       time.Time       `json:"valid_to" binding:"required"`
	IsActive      bool            `json:"is_active"`
}

type UpdateOfferRequest struct {
	DiscountType  *string          `json:"discount_type,omitempty" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue *decimal.Decimal `json:"discount_value,omitempty"`
	ValidFrom     *time.Time       `json:"valid_from,omitempty"`
	ValidTo       *time.Time       `json:"valid_to,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

type ValidateOfferRequest struct {
	Code            string          `json:"code" binding:"required"`
	ReferenceAmount decimal.Decimal `json:"reference_amount" binding:"required"`
}
