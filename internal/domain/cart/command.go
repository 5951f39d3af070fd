// Package cart holds the cart state machine: line identity, the transition function and
// the read-only projections consumed by display collaborators.
package cart

import "storefront/internal/domain/entity"

// Kind names a cart command; it is also the event kind published after the command applies.
type Kind string

const (
	KindAdd      Kind = "add_to_cart"
	KindRemove   Kind = "remove_from_cart"
	KindSetQty   Kind = "set_quantity"
	KindDecrease Kind = "decrease_quantity"
	KindClear    Kind = "clear_cart"
	KindHydrate  Kind = "hydrate_cart"
)

// Command is the closed set of cart mutations accepted by Reduce.
type Command interface {
	Kind() Kind
	isCommand()
}

// AddLine adds a fully formed line, merging it into an identical existing line.
type AddLine struct {
	Line entity.CartLine
}

// RemoveItem drops every line for an item id, whatever its add-ons.
type RemoveItem struct {
	ItemID entity.ID
}

// SetQuantity replaces the quantity of the lines for an item id; zero or less removes them.
type SetQuantity struct {
	ItemID   entity.ID
	Quantity int
}

// DecreaseQuantity takes one unit off the first line for an item id.
type DecreaseQuantity struct {
	ItemID entity.ID
}

// ClearCart resets to the empty cart.
type ClearCart struct{}

// HydrateCart replaces the state with a restored snapshot.
type HydrateCart struct {
	State entity.CartState
}

func (AddLine) Kind() Kind          { return KindAdd }
func (RemoveItem) Kind() Kind       { return KindRemove }
func (SetQuantity) Kind() Kind      { return KindSetQty }
func (DecreaseQuantity) Kind() Kind { return KindDecrease }
func (ClearCart) Kind() Kind        { return KindClear }
func (HydrateCart) Kind() Kind      { return KindHydrate }

func (AddLine) isCommand()          {}
func (RemoveItem) isCommand()       {}
func (SetQuantity) isCommand()      {}
func (DecreaseQuantity) isCommand() {}
func (ClearCart) isCommand()        {}
func (HydrateCart) isCommand()      {}
