package request

import (
	"github.com/shopspring/decimal"
)

type UpdateSettingsRequest struct {
	GSTRatePercent decimal.Decimal `json:"gst_rate_percent" binding:"required"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge" binding:"required"`
	ServiceCharge  decimal.Decimal `json:"service_charge" binding:"required"`
}
