package pricing

import (
	"time"

	"restro-api/internal/domain/offer"
	"restro-api/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// ItemOfferResolution previews an offer applied to a single menu item's
// base price in the admin menu editor. When the code is invalid no
// discounted price is produced and the item keeps its base price.
type ItemOfferResolution struct {
	IsValid         bool
	DiscountedPrice decimal.Decimal
	Message         string
}

// ItemOfferResolver applies the cart coupon rules to a single item
// price. It shares the validator with cart checkout so the two code
// paths can never drift apart.
type ItemOfferResolver struct {
	validator *offer.Validator
}

func NewItemOfferResolver(validator *offer.Validator) *ItemOfferResolver {
	return &ItemOfferResolver{validator: validator}
}

// Resolve is re-run whenever the code or the base price changes, so a
// price edit after picking a code keeps the preview correct.
func (r *ItemOfferResolver) Resolve(code string, basePrice decimal.Decimal, offers []*offer.Offer, now time.Time) ItemOfferResolution {
	result := r.validator.Validate(code, basePrice, now, offers)
	if !result.IsValid {
		return ItemOfferResolution{
			IsValid: false,
			Message: result.Message,
		}
	}

	return ItemOfferResolution{
		IsValid:         true,
		DiscountedPrice: money.Round2(basePrice.Sub(result.DiscountAmount)),
		Message:         result.Message,
	}
}
