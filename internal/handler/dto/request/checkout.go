package request

import (
	"strings"

	"restro-api/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

type CartLineRequest struct {
	Name     string          `json:"name" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,gt=0"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

type QuoteRequest struct {
	Lines       []CartLineRequest `json:"lines" binding:"required"`
	Fulfillment string            `json:"fulfillment" binding:"required,oneof=pickup delivery"`
	OfferCode   *string           `json:"offer_code,omitempty"`
}

func (r QuoteRequest) GetOfferCode() *string {
	return trimmedCodePtr(r.OfferCode)
}

func (r QuoteRequest) ToDomainLines() ([]pricing.CartLine, error) {
	lines := make([]pricing.CartLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		line, err := pricing.NewCartLine(l.Name, l.Quantity, l.Price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r QuoteRequest) ToFulfillment() (pricing.Fulfillment, error) {
	return pricing.NewFulfillment(r.Fulfillment)
}

type PlaceOrderRequest struct {
	Lines       []CartLineRequest `json:"lines" binding:"required,min=1"`
	Fulfillment string            `json:"fulfillment" binding:"required,oneof=pickup delivery"`
	OfferCode   *string           `json:"offer_code,omitempty"`
}

func (r PlaceOrderRequest) GetOfferCode() *string {
	return trimmedCodePtr(r.OfferCode)
}

func (r PlaceOrderRequest) ToDomainLines() ([]pricing.CartLine, error) {
	return QuoteRequest{Lines: r.Lines}.ToDomainLines()
}

func (r PlaceOrderRequest) ToFulfillment() (pricing.Fulfillment, error) {
	return pricing.NewFulfillment(r.Fulfillment)
}

func trimmedCodePtr(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
