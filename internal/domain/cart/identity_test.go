package cart

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdentity(t *testing.T) {
	cheese := addon("a1", "Cheese", "3.00")
	bacon := addon("a2", "Bacon", "4.00")

	lines := []entity.CartLine{
		newLine("7", "20.00", 1, store("s1"), cheese),
		newLine("7", "20.00", 1, store("s1")),
		newLine("8", "10.00", 1, store("s1"), cheese, bacon),
	}

	tests := []struct {
		name      string
		candidate entity.CartLine
		want      int
	}{
		{
			name:      "same item and add-ons",
			candidate: newLine("7", "20.00", 2, store("s1"), cheese),
			want:      0,
		},
		{
			name:      "empty add-ons only match empty add-ons",
			candidate: newLine("7", "20.00", 1, store("s1")),
			want:      1,
		},
		{
			name:      "add-on order does not matter",
			candidate: newLine("8", "10.00", 1, store("s1"), bacon, cheese),
			want:      2,
		},
		{
			name:      "different add-ons",
			candidate: newLine("7", "20.00", 1, store("s1"), bacon),
			want:      -1,
		},
		{
			name:      "unknown item",
			candidate: newLine("9", "20.00", 1, store("s1"), cheese),
			want:      -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveIdentity(lines, tt.candidate))
		})
	}
}

func TestSameAddons(t *testing.T) {
	cheese := addon("a1", "Cheese", "3.00")
	bacon := addon("a2", "Bacon", "4.00")
	namedOnly := entity.AddonSelection{Name: "Extra sauce", Price: money("1.00")}

	assert.True(t, SameAddons(nil, []entity.AddonSelection{}))
	assert.True(t, SameAddons(
		[]entity.AddonSelection{cheese, bacon},
		[]entity.AddonSelection{bacon, cheese},
	))
	assert.True(t, SameAddons(
		[]entity.AddonSelection{namedOnly},
		[]entity.AddonSelection{{Name: "Extra sauce", Price: money("1.00")}},
	))
	// Duplicates must match in count.
	assert.False(t, SameAddons(
		[]entity.AddonSelection{cheese, cheese, bacon},
		[]entity.AddonSelection{cheese, bacon, bacon},
	))
	assert.False(t, SameAddons(
		[]entity.AddonSelection{cheese},
		[]entity.AddonSelection{cheese, cheese},
	))
	// The id wins over the name.
	assert.True(t, SameAddons(
		[]entity.AddonSelection{{ID: "a1", Name: "Cheese"}},
		[]entity.AddonSelection{{ID: "a1", Name: "Cheddar"}},
	))
}

func TestMerge(t *testing.T) {
	existing := newLine("7", "20.00", 1, store("s1"), addon("a1", "Cheese", "3.00"))
	candidate := newLine("7", "20.00", 2, store("s1"), addon("a1", "Cheese", "3.00"))

	merged := Merge(existing, candidate)

	assert.Equal(t, 3, merged.Quantity)
	assert.True(t, money("69.00").Equal(merged.Total), merged.Total.String())
	assert.Equal(t, existing.Item, merged.Item)
	assert.Equal(t, 1, existing.Quantity, "input must not change")
}

func TestMerge_SumsStoredTotals(t *testing.T) {
	existing := newLine("7", "20.00", 1, nil)
	existing.Total = money("18.50") // promo price captured at add time
	candidate := newLine("7", "20.00", 1, nil)

	merged := Merge(existing, candidate)

	assert.Equal(t, "38.50", merged.Total.String())
}
