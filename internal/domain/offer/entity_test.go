//go:build unit

package offer_test

import (
	"testing"
	"time"

	"restro-api/internal/domain/offer"
	"restro-api/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.OfferBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewOfferBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestOffer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "WELCOME10", actual.Code().String())
		assert.True(t, actual.IsActive())
		assert.True(t, actual.Discount().IsPercentage())
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "lowercase input is normalized",
				mutate: func(b *builder.OfferBuilder) { b.WithCode("welcome10") },
			},
			{
				name:   "surrounding whitespace is trimmed",
				mutate: func(b *builder.OfferBuilder) { b.WithCode("  WELCOME10  ") },
			},
			{
				name:   "too short",
				mutate: func(b *builder.OfferBuilder) { b.WithCode("AB") },
				errIs:  offer.ErrInvalidOfferCode,
			},
			{
				name:   "empty",
				mutate: func(b *builder.OfferBuilder) { b.WithCode("") },
				errIs:  offer.ErrInvalidOfferCode,
			},
			{
				name:   "illegal characters",
				mutate: func(b *builder.OfferBuilder) { b.WithCode("SAVE-10") },
				errIs:  offer.ErrInvalidOfferCode,
			},
		})
	})

	t.Run("discount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "percentage at upper bound",
				mutate: func(b *builder.OfferBuilder) { b.WithPercentageDiscount("100") },
			},
			{
				name:   "percentage above upper bound",
				mutate: func(b *builder.OfferBuilder) { b.WithPercentageDiscount("100.01") },
				errIs:  offer.ErrInvalidDiscountPercent,
			},
			{
				name:   "negative percentage",
				mutate: func(b *builder.OfferBuilder) { b.WithPercentageDiscount("-1") },
				errIs:  offer.ErrInvalidDiscountPercent,
			},
			{
				name:   "negative fixed amount",
				mutate: func(b *builder.OfferBuilder) { b.WithFixedDiscount("-0.01") },
				errIs:  offer.ErrInvalidDiscountAmount,
			},
			{
				name:   "unknown discount type",
				mutate: func(b *builder.OfferBuilder) { b.DiscountType = "bogo" },
				errIs:  offer.ErrInvalidDiscountType,
			},
		})
	})

	t.Run("validity window ordering", func(t *testing.T) {
		now := time.Now()
		runCases(t, []testCase{
			{
				name:   "from after to is rejected",
				mutate: func(b *builder.OfferBuilder) { b.WithWindow(now.Add(time.Hour), now) },
				errIs:  offer.ErrInvalidValidityWindow,
			},
			{
				name:   "from equal to to is allowed",
				mutate: func(b *builder.OfferBuilder) { b.WithWindow(now, now) },
			},
		})
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
		o := builder.NewOfferBuilder().WithWindow(from, to).MustBuildDomain()

		assert.True(t, o.IsWithinWindow(from))
		assert.True(t, o.IsWithinWindow(to))
		assert.True(t, o.IsWithinWindow(from.Add(time.Hour)))
		assert.False(t, o.IsWithinWindow(from.Add(-time.Second)))
		assert.False(t, o.IsWithinWindow(to.Add(time.Second)))
	})

	t.Run("code matching is case-insensitive", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithCode("DIWALI25").MustBuildDomain()

		assert.True(t, o.MatchesCode("diwali25"))
		assert.True(t, o.MatchesCode(" DIWALI25 "))
		assert.False(t, o.MatchesCode("DIWALI"))
		assert.False(t, o.MatchesCode(""))
	})

	t.Run("percentage discount amount", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithPercentageDiscount("10").MustBuildDomain()

		got := o.DiscountAmount(decimal.RequireFromString("333.33"))
		assert.True(t, got.Equal(decimal.RequireFromString("33.33")), "got %s", got)
	})

	t.Run("percentage discount rounds half-up", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithPercentageDiscount("15").MustBuildDomain()

		// 15% of 99.90 = 14.985 -> 14.99
		got := o.DiscountAmount(decimal.RequireFromString("99.90"))
		assert.True(t, got.Equal(decimal.RequireFromString("14.99")), "got %s", got)
	})

	t.Run("fixed discount clamped to reference", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithFixedDiscount("50").MustBuildDomain()

		got := o.DiscountAmount(decimal.RequireFromString("30.00"))
		assert.True(t, got.Equal(decimal.RequireFromString("30.00")), "got %s", got)

		got = o.DiscountAmount(decimal.RequireFromString("80.00"))
		assert.True(t, got.Equal(decimal.RequireFromString("50")), "got %s", got)
	})
}
