package cart

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjections_EmptyCart(t *testing.T) {
	state := entity.EmptyCart()

	assert.Equal(t, 0, ItemCount(state))
	assert.True(t, GrandTotal(state).IsZero())
	assert.False(t, IsVisible(state))
	assert.Empty(t, GroupByStore(state))
}

func TestProjections_Totals(t *testing.T) {
	state := apply(t, Options{},
		AddLine{Line: newLine("1", "10.10", 3, store("s1"))},
		AddLine{Line: newLine("2", "0.15", 1, store("s1"), addon("x", "Sauce", "0.05"))},
	)

	assert.Equal(t, 4, ItemCount(state))
	assert.Equal(t, "30.50", GrandTotal(state).String())
	assert.True(t, IsVisible(state))
}

func TestIsVisible_NeedsPositiveTotal(t *testing.T) {
	state := apply(t, Options{}, AddLine{Line: newLine("1", "0.00", 2, store("s1"))})

	assert.Equal(t, 2, ItemCount(state))
	assert.False(t, IsVisible(state))
}

func TestGroupByStore(t *testing.T) {
	state := entity.CartState{
		Store: store("s1"),
		Lines: []entity.CartLine{
			newLine("1", "1.00", 1, store("s1")),
			newLine("2", "1.00", 1, nil),
			newLine("3", "1.00", 1, store("s2")),
			newLine("4", "1.00", 1, store("s1")),
		},
	}

	stores := GroupByStore(state)

	require.Len(t, stores, 2)
	assert.Equal(t, entity.ID("s1"), stores[0].ID)
	assert.Equal(t, entity.ID("s2"), stores[1].ID)
}

func TestHasConflictingStore(t *testing.T) {
	state := apply(t, Options{}, AddLine{Line: newLine("1", "1.00", 1, store("s1"))})

	assert.False(t, HasConflictingStore(entity.EmptyCart(), "s2"))
	assert.False(t, HasConflictingStore(state, "s1"))
	assert.True(t, HasConflictingStore(state, "s2"))
}

func TestCheckoutSummary(t *testing.T) {
	defaultFee := money("2.00")

	t.Run("empty cart has no fee", func(t *testing.T) {
		summary := CheckoutSummary(entity.EmptyCart(), defaultFee)
		assert.True(t, summary.Total.IsZero())
		assert.True(t, summary.DeliveryFee.IsZero())
		assert.Nil(t, summary.Store)
	})

	t.Run("default fee", func(t *testing.T) {
		state := apply(t, Options{}, AddLine{Line: newLine("1", "10.00", 2, store("s1"))})
		summary := CheckoutSummary(state, defaultFee)
		assert.Equal(t, 2, summary.ItemCount)
		assert.Equal(t, "20.00", summary.Subtotal.String())
		assert.Equal(t, "2.00", summary.DeliveryFee.String())
		assert.Equal(t, "22.00", summary.Total.String())
	})

	t.Run("store fee wins", func(t *testing.T) {
		st := store("s1")
		fee := money("14")
		st.DeliveryFee = &fee
		state := apply(t, Options{}, AddLine{Line: newLine("1", "10.00", 1, st)})
		summary := CheckoutSummary(state, defaultFee)
		assert.Equal(t, "14.00", summary.DeliveryFee.String())
		assert.Equal(t, "24.00", summary.Total.String())
	})
}
