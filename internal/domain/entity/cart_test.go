package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{in: `"abc"`, want: "abc"},
		{in: `42`, want: "42"},
		{in: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
}

func TestAddonSelection_CanonicalKey(t *testing.T) {
	assert.Equal(t, "a1", AddonSelection{ID: "a1", Name: "Cheese"}.CanonicalKey())
	assert.Equal(t, "Cheese", AddonSelection{Name: "Cheese"}.CanonicalKey())
}

func TestCartState_CloneIsDeep(t *testing.T) {
	fee := MustParseMoney("14")
	eta := 30
	img := "burger.png"
	state := CartState{
		Store: &Store{ID: "s1", Name: "Burger Bar", DeliveryFee: &fee, ETAMinutes: &eta},
		Lines: []CartLine{{
			Item:     CatalogItem{ID: "7", Name: "Burger", Price: MustParseMoney("20"), Image: &img},
			Addons:   []AddonSelection{{ID: "a1", Name: "Cheese", Price: MustParseMoney("3")}},
			Quantity: 1,
			Total:    MustParseMoney("23"),
			Store:    &Store{ID: "s1", Name: "Burger Bar"},
		}},
	}

	clone := state.Clone()
	require.Equal(t, state, clone)

	*clone.Store.ETAMinutes = 45
	clone.Lines[0].Addons[0].Name = "Cheddar"
	*clone.Lines[0].Item.Image = "other.png"
	clone.Lines[0].Store.Name = "Other"

	assert.Equal(t, 30, *state.Store.ETAMinutes)
	assert.Equal(t, "Cheese", state.Lines[0].Addons[0].Name)
	assert.Equal(t, "burger.png", *state.Lines[0].Item.Image)
	assert.Equal(t, "Burger Bar", state.Lines[0].Store.Name)
}

func TestCartState_JSONLayout(t *testing.T) {
	data, err := json.Marshal(EmptyCart())
	require.NoError(t, err)
	assert.JSONEq(t, `{"store":null,"orders":[]}`, string(data))
	assert.True(t, EmptyCart().IsEmpty())
	assert.Nil(t, (*Store)(nil).Clone())
}
