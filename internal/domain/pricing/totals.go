package pricing

import (
	"restro-api/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// Rates carries the merchant's charge configuration for a single
// computation. GSTRatePercent is a percentage; the charges are flat
// amounts.
type Rates struct {
	GSTRatePercent decimal.Decimal
	DeliveryCharge decimal.Decimal
	ServiceCharge  decimal.Decimal
}

// Totals is the published order breakdown. Every field is rounded to
// two decimal places at the point it is computed, so the breakdown sums
// exactly to Total:
//
//	Total == Subtotal - Discount + GSTAmount + DeliveryCharges + ServiceCharges
type Totals struct {
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	GSTAmount       decimal.Decimal
	DeliveryCharges decimal.Decimal
	ServiceCharges  decimal.Decimal
	Total           decimal.Decimal
}

func zeroTotals() Totals {
	return Totals{
		Subtotal:        money.Zero,
		Discount:        money.Zero,
		GSTAmount:       money.Zero,
		DeliveryCharges: money.Zero,
		ServiceCharges:  money.Zero,
		Total:           money.Zero,
	}
}

// Calculator computes order totals. It is stateless and safe for
// concurrent use.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// ComputeTotals prices a cart. The discount is clamped to the subtotal
// regardless of what the caller validated, and GST applies to the
// discounted base. The delivery charge applies only to delivery orders;
// the service charge applies to every order. An empty cart prices to
// all zeroes, charges included.
func (c *Calculator) ComputeTotals(lines []CartLine, fulfillment Fulfillment, discountAmount decimal.Decimal, rates Rates) Totals {
	if len(lines) == 0 {
		return zeroTotals()
	}

	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Amount())
	}
	subtotal := money.Round2(sum)

	discount := money.Round2(money.ClampToReference(discountAmount, subtotal))
	taxable := subtotal.Sub(discount)

	gst := money.Percent(taxable, rates.GSTRatePercent)

	delivery := money.Zero
	if fulfillment == FulfillmentDelivery {
		delivery = money.Round2(rates.DeliveryCharge)
	}
	service := money.Round2(rates.ServiceCharge)

	total := money.Round2(taxable.Add(gst).Add(delivery).Add(service))

	return Totals{
		Subtotal:        subtotal,
		Discount:        discount,
		GSTAmount:       gst,
		DeliveryCharges: delivery,
		ServiceCharges:  service,
		Total:           total,
	}
}
