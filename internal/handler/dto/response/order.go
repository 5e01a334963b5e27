package response

import (
	"time"

	"restro-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderLineResponse struct {
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Amount    decimal.Decimal `json:"amount"`
}

type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"userId"`
	Fulfillment string              `json:"fulfillment"`
	Status      string              `json:"status"`
	Lines       []OrderLineResponse `json:"lines"`
	OfferID     *uuid.UUID          `json:"offerId,omitempty"`
	OfferCode   *string             `json:"offerCode,omitempty"`
	Totals      TotalsResponse      `json:"totals"`
	PlacedAt    time.Time           `json:"placedAt"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type OrderListResponse struct {
	ID          uuid.UUID       `json:"id"`
	Fulfillment string          `json:"fulfillment"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	PlacedAt    time.Time       `json:"placedAt"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	lines := make([]OrderLineResponse, len(view.Lines))
	for i, l := range view.Lines {
		lines[i] = OrderLineResponse{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Amount:    l.Amount,
		}
	}

	return &OrderResponse{
		ID:          view.ID,
		UserID:      view.UserID,
		Fulfillment: view.Fulfillment,
		Status:      view.Status,
		Lines:       lines,
		OfferID:     view.OfferID,
		OfferCode:   view.OfferCode,
		Totals: TotalsResponse{
			Subtotal:        view.Subtotal,
			Discount:        view.Discount,
			GSTAmount:       view.GSTAmount,
			DeliveryCharges: view.DeliveryCharges,
			ServiceCharges:  view.ServiceCharges,
			Total:           view.Total,
		},
		PlacedAt:  view.PlacedAt,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func FromOrderListItem(item *queries.OrderListItem) *OrderListResponse {
	return &OrderListResponse{
		ID:          item.ID,
		Fulfillment: item.Fulfillment,
		Status:      item.Status,
		Total:       item.Total,
		PlacedAt:    item.PlacedAt,
	}
}
