package response

import (
	"restro-api/internal/domain/offer"
	"restro-api/internal/domain/pricing"
	"restro-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TotalsResponse struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	GSTAmount       decimal.Decimal `json:"gstAmount"`
	DeliveryCharges decimal.Decimal `json:"deliveryCharges"`
	ServiceCharges  decimal.Decimal `json:"serviceCharges"`
	Total           decimal.Decimal `json:"total"`
}

type CouponResultResponse struct {
	IsValid        bool            `json:"isValid"`
	OfferID        *uuid.UUID      `json:"offerId,omitempty"`
	Code           string          `json:"code,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Message        string          `json:"message"`
}

type QuoteResponse struct {
	Totals TotalsResponse        `json:"totals"`
	Coupon *CouponResultResponse `json:"coupon,omitempty"`
}

func FromTotals(t pricing.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:        t.Subtotal,
		Discount:        t.Discount,
		GSTAmount:       t.GSTAmount,
		DeliveryCharges: t.DeliveryCharges,
		ServiceCharges:  t.ServiceCharges,
		Total:           t.Total,
	}
}

func FromCouponResult(r *offer.Result) *CouponResultResponse {
	if r == nil {
		return nil
	}
	return &CouponResultResponse{
		IsValid:        r.IsValid,
		OfferID:        r.OfferID,
		Code:           r.Code,
		DiscountAmount: r.DiscountAmount,
		Message:        r.Message,
	}
}

func FromQuoteResult(result *commands.QuoteResult) *QuoteResponse {
	return &QuoteResponse{
		Totals: FromTotals(result.Totals),
		Coupon: FromCouponResult(result.Coupon),
	}
}
