package response

import (
	"time"

	"restro-api/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type SettingsResponse struct {
	GSTRatePercent decimal.Decimal `json:"gstRatePercent"`
	DeliveryCharge decimal.Decimal `json:"deliveryCharge"`
	ServiceCharge  decimal.Decimal `json:"serviceCharge"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func FromSettingsView(view *queries.SettingsView) *SettingsResponse {
	return &SettingsResponse{
		GSTRatePercent: view.GSTRatePercent,
		DeliveryCharge: view.DeliveryCharge,
		ServiceCharge:  view.ServiceCharge,
		UpdatedAt:      view.UpdatedAt,
	}
}
