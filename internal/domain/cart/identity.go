package cart

import (
	"slices"

	"storefront/internal/domain/entity"
)

// ResolveIdentity returns the index of the line identical to candidate, or -1.
// Lines are identical when they share the item id and carry the same add-on multiset.
func ResolveIdentity(lines []entity.CartLine, candidate entity.CartLine) int {
	for i, line := range lines {
		if line.Item.ID == candidate.Item.ID && SameAddons(line.Addons, candidate.Addons) {
			return i
		}
	}

	return -1
}

// SameAddons reports whether two add-on lists are equal as unordered multisets of
// canonical keys. Duplicate keys must match in count.
func SameAddons(a, b []entity.AddonSelection) bool {
	if len(a) != len(b) {
		return false
	}

	return slices.Equal(addonKeys(a), addonKeys(b))
}

// Merge folds candidate into existing. Totals are summed as stored rather than recomputed
// from the unit price.
func Merge(existing, candidate entity.CartLine) entity.CartLine {
	merged := existing.Clone()
	merged.Quantity = existing.Quantity + candidate.Quantity
	merged.Total = existing.Total.Add(candidate.Total).Round2()

	return merged
}

func addonKeys(addons []entity.AddonSelection) []string {
	keys := make([]string, 0, len(addons))
	for _, a := range addons {
		keys = append(keys, a.CanonicalKey())
	}
	slices.Sort(keys)

	return keys
}
