package cart

import (
	"storefront/internal/domain/entity"
)

// ItemCount is the number of units across all lines.
func ItemCount(state entity.CartState) int {
	count := 0
	for _, line := range state.Lines {
		count += line.Quantity
	}

	return count
}

// GrandTotal is the sum of line totals rounded to cents.
func GrandTotal(state entity.CartState) entity.Money {
	total := entity.ZeroMoney
	for _, line := range state.Lines {
		total = total.Add(line.Total)
	}

	return total.Round2()
}

// IsVisible decides whether the cart summary bar renders: it needs units and a positive total.
func IsVisible(state entity.CartState) bool {
	return ItemCount(state) > 0 && GrandTotal(state).IsPositive()
}

// GroupByStore lists the distinct stores referenced by lines in first-seen order.
// Lines without a store are skipped.
func GroupByStore(state entity.CartState) []entity.Store {
	seen := make(map[entity.ID]struct{}, 1)
	stores := make([]entity.Store, 0, 1)
	for _, line := range state.Lines {
		if line.Store == nil {
			continue
		}
		if _, ok := seen[line.Store.ID]; ok {
			continue
		}
		seen[line.Store.ID] = struct{}{}
		stores = append(stores, *line.Store.Clone())
	}

	return stores
}

// HasConflictingStore reports whether a non-empty cart was started from a store other than
// the one being browsed, judged by the first line.
func HasConflictingStore(state entity.CartState, browsing entity.ID) bool {
	if state.IsEmpty() {
		return false
	}
	first := state.Lines[0].Store
	if first == nil {
		return browsing != ""
	}

	return first.ID != browsing
}

// Checkout is the price breakdown shown before placing an order.
type Checkout struct {
	Store       *entity.Store `json:"store"`
	ItemCount   int           `json:"item_count"`
	Subtotal    entity.Money  `json:"subtotal"`
	DeliveryFee entity.Money  `json:"delivery_fee"`
	Total       entity.Money  `json:"total"`
}

// CheckoutSummary prices the cart. The active store's delivery fee wins over defaultFee.
// An empty cart carries no fee.
func CheckoutSummary(state entity.CartState, defaultFee entity.Money) Checkout {
	subtotal := GrandTotal(state)
	fee := entity.ZeroMoney
	if !state.IsEmpty() {
		fee = defaultFee
		if state.Store != nil && state.Store.DeliveryFee != nil {
			fee = *state.Store.DeliveryFee
		}
	}

	return Checkout{
		Store:       state.Store.Clone(),
		ItemCount:   ItemCount(state),
		Subtotal:    subtotal,
		DeliveryFee: fee.Round2(),
		Total:       subtotal.Add(fee).Round2(),
	}
}
