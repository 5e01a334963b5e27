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

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidator(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	v := offer.NewValidator()

	active := builder.NewOfferBuilder().
		WithCode("SAVE20").
		WithPercentageDiscount("20").
		WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
		MustBuildDomain()

	inactive := builder.NewOfferBuilder().
		WithCode("PAUSED").
		WithActive(false).
		WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
		MustBuildDomain()

	expired := builder.NewOfferBuilder().
		WithCode("OLDDEAL").
		WithWindow(now.Add(-48*time.Hour), now.Add(-24*time.Hour)).
		MustBuildDomain()

	offers := []*offer.Offer{active, inactive, expired}

	t.Run("unknown code", func(t *testing.T) {
		result := v.Validate("NOSUCHCODE", d("100.00"), now, offers)

		assert.False(t, result.IsValid)
		assert.Nil(t, result.OfferID)
		assert.True(t, result.DiscountAmount.IsZero())
		assert.Equal(t, "Invalid offer code", result.Message)
	})

	t.Run("empty code", func(t *testing.T) {
		result := v.Validate("", d("100.00"), now, offers)

		assert.False(t, result.IsValid)
		assert.Equal(t, "Invalid offer code", result.Message)
	})

	t.Run("empty offer list", func(t *testing.T) {
		result := v.Validate("SAVE20", d("100.00"), now, nil)

		assert.False(t, result.IsValid)
		assert.Equal(t, "Invalid offer code", result.Message)
	})

	t.Run("inactive offer", func(t *testing.T) {
		result := v.Validate("PAUSED", d("100.00"), now, offers)

		assert.False(t, result.IsValid)
		assert.True(t, result.DiscountAmount.IsZero())
		assert.Equal(t, "Offer is not active", result.Message)
	})

	t.Run("expired offer", func(t *testing.T) {
		result := v.Validate("OLDDEAL", d("100.00"), now, offers)

		assert.False(t, result.IsValid)
		assert.Equal(t, "Offer has expired or not yet active", result.Message)
	})

	t.Run("not yet active offer", func(t *testing.T) {
		future := builder.NewOfferBuilder().
			WithCode("COMINGUP").
			WithWindow(now.Add(24*time.Hour), now.Add(48*time.Hour)).
			MustBuildDomain()

		result := v.Validate("COMINGUP", d("100.00"), now, []*offer.Offer{future})

		assert.False(t, result.IsValid)
		assert.Equal(t, "Offer has expired or not yet active", result.Message)
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		from := now
		to := now.Add(time.Hour)
		bounded := builder.NewOfferBuilder().
			WithCode("EXACTLY").
			WithWindow(from, to).
			MustBuildDomain()
		list := []*offer.Offer{bounded}

		assert.True(t, v.Validate("EXACTLY", d("100.00"), from, list).IsValid)
		assert.True(t, v.Validate("EXACTLY", d("100.00"), to, list).IsValid)
		assert.False(t, v.Validate("EXACTLY", d("100.00"), to.Add(time.Second), list).IsValid)
	})

	t.Run("valid percentage offer", func(t *testing.T) {
		result := v.Validate("SAVE20", d("250.00"), now, offers)

		require.True(t, result.IsValid)
		require.NotNil(t, result.OfferID)
		assert.Equal(t, active.ID(), *result.OfferID)
		assert.Equal(t, "SAVE20", result.Code)
		assert.True(t, result.DiscountAmount.Equal(d("50.00")), "got %s", result.DiscountAmount)
		assert.NotEmpty(t, result.Message)
	})

	t.Run("code input is trimmed and case-insensitive", func(t *testing.T) {
		result := v.Validate("  save20  ", d("100.00"), now, offers)

		require.True(t, result.IsValid)
		assert.Equal(t, "SAVE20", result.Code)
	})

	t.Run("fixed discount never exceeds reference", func(t *testing.T) {
		flat := builder.NewOfferBuilder().
			WithCode("FLAT150").
			WithFixedDiscount("150").
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
			MustBuildDomain()

		result := v.Validate("FLAT150", d("90.00"), now, []*offer.Offer{flat})

		require.True(t, result.IsValid)
		assert.True(t, result.DiscountAmount.Equal(d("90.00")), "got %s", result.DiscountAmount)
	})

	t.Run("percentage discount never exceeds a sub-cent reference", func(t *testing.T) {
		full := builder.NewOfferBuilder().
			WithCode("HUNDRED").
			WithPercentageDiscount("100").
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
			MustBuildDomain()

		// Half-up rounding alone would produce 0.01 here.
		result := v.Validate("HUNDRED", d("0.005"), now, []*offer.Offer{full})

		require.True(t, result.IsValid)
		assert.True(t, result.DiscountAmount.LessThanOrEqual(d("0.005")), "got %s", result.DiscountAmount)
	})

	t.Run("zero reference amount", func(t *testing.T) {
		result := v.Validate("SAVE20", decimal.Zero, now, offers)

		require.True(t, result.IsValid)
		assert.True(t, result.DiscountAmount.IsZero())
	})

	t.Run("revalidate recomputes for new reference amount", func(t *testing.T) {
		first := v.Validate("SAVE20", d("100.00"), now, offers)
		require.True(t, first.IsValid)
		assert.True(t, first.DiscountAmount.Equal(d("20.00")))

		second := v.Revalidate("SAVE20", d("40.00"), now, offers)
		require.True(t, second.IsValid)
		assert.True(t, second.DiscountAmount.Equal(d("8.00")), "got %s", second.DiscountAmount)
	})

	t.Run("revalidate fails after offer deactivation", func(t *testing.T) {
		result := v.Revalidate("PAUSED", d("100.00"), now, offers)

		assert.False(t, result.IsValid)
		assert.Equal(t, "Offer is not active", result.Message)
	})
}
