//go:build unit

package money_test

import (
	"testing"

	"restro-api/internal/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "no fraction", in: "500", want: "500"},
		{name: "two digits kept", in: "22.50", want: "22.5"},
		{name: "half rounds up", in: "10.005", want: "10.01"},
		{name: "below half rounds down", in: "10.004", want: "10"},
		{name: "above half rounds up", in: "10.006", want: "10.01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := money.Round2(decimal.RequireFromString(tc.in))
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"Round2(%s) = %s, want %s", tc.in, got, tc.want)
		})
	}
}

func TestPercent(t *testing.T) {
	got := money.Percent(decimal.NewFromInt(500), decimal.NewFromInt(10))
	assert.True(t, got.Equal(decimal.NewFromInt(50)))

	got = money.Percent(decimal.NewFromInt(450), decimal.NewFromInt(5))
	assert.True(t, got.Equal(decimal.RequireFromString("22.5")))
}

func TestClampToReference(t *testing.T) {
	ref := decimal.NewFromInt(500)

	assert.True(t, money.ClampToReference(decimal.NewFromInt(1000), ref).Equal(ref))
	assert.True(t, money.ClampToReference(decimal.NewFromInt(50), ref).Equal(decimal.NewFromInt(50)))
	assert.True(t, money.ClampToReference(decimal.NewFromInt(-1), ref).IsZero())
}
