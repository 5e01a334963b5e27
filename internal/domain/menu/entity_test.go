//go:build unit

package menu_test

import (
	"testing"

	"restro-api/internal/domain/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		_, err := menu.NewItem(uuid.New(), "", "", "mains", decimal.NewFromInt(100))
		assert.ErrorIs(t, err, menu.ErrEmptyItemName)

		_, err = menu.NewItem(uuid.New(), "Dal Fry", "", "mains", decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, menu.ErrNegativeBasePrice)
	})

	t.Run("effective price follows stored offer", func(t *testing.T) {
		item, err := menu.NewItem(uuid.New(), "Dal Fry", "Yellow dal, tadka", "mains", decimal.NewFromInt(160))
		require.NoError(t, err)

		assert.True(t, item.EffectivePrice().Equal(decimal.NewFromInt(160)))

		item.ApplyOffer("MENU10", decimal.NewFromInt(144))
		assert.True(t, item.EffectivePrice().Equal(decimal.NewFromInt(144)))
		require.NotNil(t, item.OfferCode())
		assert.Equal(t, "MENU10", *item.OfferCode())

		item.ClearOffer()
		assert.True(t, item.EffectivePrice().Equal(decimal.NewFromInt(160)))
		assert.Nil(t, item.OfferCode())
	})
}
