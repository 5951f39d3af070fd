package cart

import (
	"storefront/internal/domain/entity"
)

// RecomputePolicy selects the unit price used when a quantity edit recomputes a line total.
type RecomputePolicy string

const (
	// RecomputeBasePrice uses the item price alone, dropping add-on cost. This matches the
	// behaviour carts were persisted with, so it is the default.
	RecomputeBasePrice RecomputePolicy = "base-price"
	// RecomputeWithAddons uses the item price plus the line's add-ons.
	RecomputeWithAddons RecomputePolicy = "with-addons"
)

// IsValid checks if the policy is a known value.
func (p RecomputePolicy) IsValid() bool {
	switch p {
	case RecomputeBasePrice, RecomputeWithAddons:
		return true
	default:
		return false
	}
}

func (p RecomputePolicy) lineTotal(line entity.CartLine, quantity int) entity.Money {
	if p == RecomputeWithAddons {
		return entity.LineTotal(line.Item.Price, line.Addons, quantity)
	}

	return entity.LineTotal(line.Item.Price, nil, quantity)
}

// Options tune Reduce.
type Options struct {
	Recompute RecomputePolicy
}

// Reduce applies cmd to state and returns the next state. The input is never modified.
func Reduce(state entity.CartState, cmd Command, opts Options) entity.CartState {
	next := state.Clone()

	switch c := cmd.(type) {
	case AddLine:
		next = addLine(next, c.Line)
	case RemoveItem:
		next.Lines = removeItem(next.Lines, c.ItemID)
	case SetQuantity:
		next.Lines = setQuantity(next.Lines, c.ItemID, c.Quantity, opts.Recompute)
	case DecreaseQuantity:
		next.Lines = decreaseQuantity(next.Lines, c.ItemID, opts.Recompute)
	case ClearCart:
		return entity.EmptyCart()
	case HydrateCart:
		next = c.State.Clone()
	default:
		return next
	}

	// The active store only exists while there are lines.
	if next.IsEmpty() {
		next.Store = nil
	}

	return next
}

func addLine(state entity.CartState, candidate entity.CartLine) entity.CartState {
	if idx := ResolveIdentity(state.Lines, candidate); idx != -1 {
		state.Lines[idx] = Merge(state.Lines[idx], candidate)

		return state
	}

	wasEmpty := state.IsEmpty()
	state.Lines = append(state.Lines, candidate.Clone())
	if wasEmpty {
		state.Store = candidate.Store.Clone()
	}

	return state
}

func removeItem(lines []entity.CartLine, itemID entity.ID) []entity.CartLine {
	kept := make([]entity.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Item.ID != itemID {
			kept = append(kept, line)
		}
	}

	return kept
}

func setQuantity(lines []entity.CartLine, itemID entity.ID, quantity int, policy RecomputePolicy) []entity.CartLine {
	if quantity <= 0 {
		return removeItem(lines, itemID)
	}

	for i, line := range lines {
		if line.Item.ID != itemID {
			continue
		}
		lines[i].Quantity = quantity
		lines[i].Total = policy.lineTotal(line, quantity)
	}

	return lines
}

func decreaseQuantity(lines []entity.CartLine, itemID entity.ID, policy RecomputePolicy) []entity.CartLine {
	for i, line := range lines {
		if line.Item.ID != itemID {
			continue
		}

		quantity := line.Quantity - 1
		if quantity <= 0 {
			return append(lines[:i], lines[i+1:]...)
		}
		lines[i].Quantity = quantity
		lines[i].Total = policy.lineTotal(line, quantity)

		return lines
	}

	return lines
}
