//go:build unit || e2e

package builder

import (
	"fmt"

	"restro-api/internal/domain/pricing"
	"restro-api/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type CartBuilder struct {
	lines []pricing.CartLine
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{}
}

func (b *CartBuilder) WithLine(name string, quantity int, unitPrice string) *CartBuilder {
	line, err := pricing.NewCartLine(name, quantity, decimal.RequireFromString(unitPrice))
	if err != nil {
		panic(fmt.Sprintf("cart builder: %v", err))
	}
	b.lines = append(b.lines, line)
	return b
}

func (b *CartBuilder) Build() []pricing.CartLine {
	return b.lines
}

func (b *CartBuilder) BuildQuoteRequestDTO(fulfillment string, offerCode *string) request.QuoteRequest {
	return request.QuoteRequest{
		Lines:       b.buildLineDTOs(),
		Fulfillment: fulfillment,
		OfferCode:   offerCode,
	}
}

func (b *CartBuilder) BuildPlaceOrderRequestDTO(fulfillment string, offerCode *string) request.PlaceOrderRequest {
	return request.PlaceOrderRequest{
		Lines:       b.buildLineDTOs(),
		Fulfillment: fulfillment,
		OfferCode:   offerCode,
	}
}

func (b *CartBuilder) buildLineDTOs() []request.CartLineRequest {
	dtos := make([]request.CartLineRequest, len(b.lines))
	for i, l := range b.lines {
		dtos[i] = request.CartLineRequest{
			Name:     l.Name(),
			Quantity: int(l.Quantity()),
			Price:    l.UnitPrice(),
		}
	}
	return dtos
}

// DefaultRates mirrors a typical merchant configuration used across the
// pricing tests: 5% GST, flat 50 delivery, flat 20 service.
func DefaultRates() pricing.Rates {
	return pricing.Rates{
		GSTRatePercent: decimal.NewFromInt(5),
		DeliveryCharge: decimal.NewFromInt(50),
		ServiceCharge:  decimal.NewFromInt(20),
	}
}
