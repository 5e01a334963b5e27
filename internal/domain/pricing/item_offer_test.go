//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"restro-api/internal/domain/offer"
	"restro-api/internal/domain/pricing"
	"restro-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemOfferResolver(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	resolver := pricing.NewItemOfferResolver(offer.NewValidator())

	tenPercent := builder.NewOfferBuilder().
		WithCode("MENU10").
		WithPercentageDiscount("10").
		WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
		MustBuildDomain()

	flat := builder.NewOfferBuilder().
		WithCode("FLAT30").
		WithFixedDiscount("30").
		WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
		MustBuildDomain()

	offers := []*offer.Offer{tenPercent, flat}

	t.Run("percentage offer discounts base price", func(t *testing.T) {
		resolution := resolver.Resolve("MENU10", d("199.00"), offers, now)

		require.True(t, resolution.IsValid)
		assert.True(t, resolution.DiscountedPrice.Equal(d("179.10")), "got %s", resolution.DiscountedPrice)
	})

	t.Run("fixed offer never drives price negative", func(t *testing.T) {
		resolution := resolver.Resolve("FLAT30", d("20.00"), offers, now)

		require.True(t, resolution.IsValid)
		assert.True(t, resolution.DiscountedPrice.IsZero(), "got %s", resolution.DiscountedPrice)
	})

	t.Run("percentage offer never drives a sub-cent price negative", func(t *testing.T) {
		full := builder.NewOfferBuilder().
			WithCode("FREEBIE").
			WithPercentageDiscount("100").
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
			MustBuildDomain()

		resolution := resolver.Resolve("FREEBIE", d("0.005"), []*offer.Offer{full}, now)

		require.True(t, resolution.IsValid)
		assert.False(t, resolution.DiscountedPrice.IsNegative(), "got %s", resolution.DiscountedPrice)
	})

	t.Run("invalid code keeps base price", func(t *testing.T) {
		resolution := resolver.Resolve("NOPE42", d("199.00"), offers, now)

		assert.False(t, resolution.IsValid)
		assert.True(t, resolution.DiscountedPrice.IsZero())
		assert.Equal(t, "Invalid offer code", resolution.Message)
	})

	t.Run("price edit after picking a code recomputes the preview", func(t *testing.T) {
		first := resolver.Resolve("MENU10", d("100.00"), offers, now)
		require.True(t, first.IsValid)
		assert.True(t, first.DiscountedPrice.Equal(d("90.00")))

		second := resolver.Resolve("MENU10", d("240.00"), offers, now)
		require.True(t, second.IsValid)
		assert.True(t, second.DiscountedPrice.Equal(d("216.00")), "got %s", second.DiscountedPrice)
	})
}
