package cart

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	a := apply(t, Options{},
		AddLine{Line: newLine("7", "20.00", 1, store("s1"), addon("a1", "Cheese", "3.00"))},
		AddLine{Line: newLine("7", "20.00", 1, store("s1"), addon("a1", "Cheese", "3.00"))},
	)
	b := apply(t, Options{},
		AddLine{Line: newLine("7", "20.00", 2, store("s1"), addon("a1", "Cheese", "3.00"))},
	)

	assert.Equal(t, Fingerprint(a), Fingerprint(b), "equal carts reached differently")
	assert.NotEmpty(t, Fingerprint(entity.EmptyCart()))

	c := Reduce(b, DecreaseQuantity{ItemID: "7"}, Options{})
	assert.NotEqual(t, Fingerprint(b), Fingerprint(c))
	assert.NotEqual(t, Fingerprint(b), Fingerprint(entity.EmptyCart()))
}

func TestFingerprint_CoversDisplayedFields(t *testing.T) {
	base := func() entity.CartState {
		return apply(t, Options{},
			AddLine{Line: newLine("7", "20.00", 1, store("s1"), addon("a1", "Cheese", "3.00"))},
		)
	}
	image := "burger.png"
	fee := money("14")

	tests := []struct {
		name   string
		mutate func(*entity.CartState)
	}{
		{name: "item name", mutate: func(s *entity.CartState) { s.Lines[0].Item.Name = "Double burger" }},
		{name: "item image", mutate: func(s *entity.CartState) { s.Lines[0].Item.Image = &image }},
		{name: "item sub-cent price", mutate: func(s *entity.CartState) { s.Lines[0].Item.Price = money("20.001") }},
		{name: "addon name with id", mutate: func(s *entity.CartState) { s.Lines[0].Addons[0].Name = "Cheddar" }},
		{name: "active store name", mutate: func(s *entity.CartState) { s.Store.Name = "Renamed" }},
		{name: "active store fee", mutate: func(s *entity.CartState) { s.Store.DeliveryFee = &fee }},
		{name: "line store logo", mutate: func(s *entity.CartState) { s.Lines[0].Store.LogoURL = "logo.png" }},
		{name: "line store area", mutate: func(s *entity.CartState) { s.Lines[0].Store.Area = "North" }},
		{name: "active store absent", mutate: func(s *entity.CartState) { s.Store = nil }},
		{name: "line store absent", mutate: func(s *entity.CartState) { s.Lines[0].Store = nil }},
	}

	want := Fingerprint(base())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := base()
			tt.mutate(&state)
			assert.NotEqual(t, want, Fingerprint(state))
		})
	}
}

func TestFingerprint_StorePresenceDoesNotShift(t *testing.T) {
	withActive := entity.CartState{
		Store: store("s1"),
		Lines: []entity.CartLine{newLine("7", "20.00", 1, nil)},
	}
	withLine := entity.CartState{
		Lines: []entity.CartLine{newLine("7", "20.00", 1, store("s1"))},
	}

	assert.NotEqual(t, Fingerprint(withActive), Fingerprint(withLine))
}

func TestFingerprint_NilAndEmptyAddonsMatch(t *testing.T) {
	a := entity.CartState{Lines: []entity.CartLine{newLine("7", "20.00", 1, nil)}}
	b := a.Clone()
	b.Lines[0].Addons = []entity.AddonSelection{}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}
