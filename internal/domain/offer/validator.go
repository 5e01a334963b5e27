package offer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer-facing validation messages. These are returned verbatim to
// the storefront, so wording changes are UI changes.
const (
	MsgInvalidCode   = "Invalid offer code"
	MsgNotActive     = "Offer is not active"
	MsgOutsideWindow = "Offer has expired or not yet active"
)

// Result is transient; it is produced per validation call and never
// stored. DiscountAmount never exceeds the reference amount it was
// computed against.
type Result struct {
	IsValid        bool
	OfferID        *uuid.UUID
	Code           string
	DiscountAmount decimal.Decimal
	Message        string
}

func invalidResult(message string) Result {
	return Result{
		IsValid:        false,
		DiscountAmount: decimal.Zero,
		Message:        message,
	}
}

// Validator checks an offer code against the merchant's offer list and
// computes the discount for a reference amount. It is a pure function
// over its inputs and holds no state, so a single instance can serve
// concurrent requests.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate resolves code against offers at the given instant.
// referenceAmount must be the pre-discount subtotal (or a single item's
// base price for per-item offers). An unknown, inactive or out-of-window
// code is a normal negative result, not an error.
func (v *Validator) Validate(code string, referenceAmount decimal.Decimal, now time.Time, offers []*Offer) Result {
	found := findByCode(code, offers)
	if found == nil {
		return invalidResult(MsgInvalidCode)
	}

	if !found.IsActive() {
		return invalidResult(MsgNotActive)
	}

	if !found.IsWithinWindow(now) {
		return invalidResult(MsgOutsideWindow)
	}

	discountAmount := found.DiscountAmount(referenceAmount)
	offerID := found.ID()

	return Result{
		IsValid:        true,
		OfferID:        &offerID,
		Code:           found.Code().String(),
		DiscountAmount: discountAmount,
		Message:        confirmationMessage(found.Discount(), discountAmount),
	}
}

// Revalidate re-runs Validate against the current cart state. The
// validator keeps no session state, so a discount computed before a
// cart mutation is stale until the caller revalidates with the new
// reference amount. Order placement always revalidates.
func (v *Validator) Revalidate(code string, referenceAmount decimal.Decimal, now time.Time, offers []*Offer) Result {
	return v.Validate(code, referenceAmount, now, offers)
}

func findByCode(code string, offers []*Offer) *Offer {
	for _, o := range offers {
		if o.MatchesCode(code) {
			return o
		}
	}
	return nil
}

func confirmationMessage(d Discount, discountAmount decimal.Decimal) string {
	if d.IsPercentage() {
		return fmt.Sprintf("Offer applied: %s%% off (%s)", d.Value().String(), discountAmount.StringFixed(2))
	}
	return fmt.Sprintf("Offer applied: %s off", discountAmount.StringFixed(2))
}
