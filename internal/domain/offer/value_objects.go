package offer

import (
	"errors"
	"regexp"
	"strings"

	"restro-api/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOfferCode       = errors.New("invalid offer code format")
	ErrInvalidDiscountType    = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var offerCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is stored and compared in upper case; customer input is
// case-insensitive.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !offerCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidOfferCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Discount struct {
	discountType DiscountType
	value        decimal.Decimal
}

func NewPercentageDiscount(value decimal.Decimal) (Discount, error) {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{discountType: DiscountPercentage, value: value}, nil
}

func NewFixedDiscount(value decimal.Decimal) (Discount, error) {
	if value.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{discountType: DiscountFixed, value: value}, nil
}

func NewDiscount(discountType string, value decimal.Decimal) (Discount, error) {
	switch DiscountType(discountType) {
	case DiscountPercentage:
		return NewPercentageDiscount(value)
	case DiscountFixed:
		return NewFixedDiscount(value)
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() DiscountType {
	return d.discountType
}

func (d Discount) Value() decimal.Decimal {
	return d.value
}

func (d Discount) IsPercentage() bool {
	return d.discountType == DiscountPercentage
}

// Amount computes the discount against a pre-discount reference amount,
// rounded half-up to two decimal places. The result never exceeds the
// reference: half-up rounding can push a percentage past a sub-cent
// reference, so both discount types are clamped after rounding.
func (d Discount) Amount(reference decimal.Decimal) decimal.Decimal {
	if d.IsPercentage() {
		return money.ClampToReference(money.Percent(reference, d.value), reference)
	}
	return money.Round2(money.ClampToReference(d.value, reference))
}
