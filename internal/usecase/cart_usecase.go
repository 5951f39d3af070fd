package usecase

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
)

// CartSummary is what the sticky cart bar renders.
type CartSummary struct {
	ItemCount      int           `json:"item_count"`
	LineCount      int           `json:"line_count"`
	GrandTotal     entity.Money  `json:"grand_total"`
	FormattedTotal string        `json:"formatted_total"`
	Visible        bool          `json:"visible"`
	Store          *entity.Store `json:"store"`
	Fingerprint    string        `json:"fingerprint"`
}

// CartUsecase defines the interface for the process-wide cart
type CartUsecase interface {
	// Hydrate restores the persisted cart. Mutations fail with ErrCartNotReady until it returns.
	Hydrate(ctx context.Context) (entity.CartState, error)

	// AddToCart merges the line into an identical one or appends it
	AddToCart(ctx context.Context, line entity.CartLine) (entity.CartState, error)

	// RemoveFromCart removes every line for the item, whatever its add-ons
	RemoveFromCart(ctx context.Context, itemID entity.ID) (entity.CartState, error)

	// SetQuantity sets the quantity of the item's lines; zero or less removes them
	SetQuantity(ctx context.Context, itemID entity.ID, quantity int) (entity.CartState, error)

	// DecreaseQuantity removes one unit from the first line for the item
	DecreaseQuantity(ctx context.Context, itemID entity.ID) (entity.CartState, error)

	// ClearCart empties the cart
	ClearCart(ctx context.Context) (entity.CartState, error)

	// State returns a copy of the current cart
	State() entity.CartState

	// Summary returns the aggregates shown by the cart bar
	Summary() CartSummary

	// Stores lists the distinct stores referenced by the cart
	Stores() []entity.Store

	// HasConflictingStore reports whether the cart was started from another store
	HasConflictingStore(storeID entity.ID) bool

	// Checkout prices the cart including the delivery fee
	Checkout() cart.Checkout

	// Subscribe registers fn to receive every new state; the returned func unregisters it
	Subscribe(fn func(entity.CartState)) (cancel func())

	// Flush waits until pending events are published and the latest state has been written
	Flush(ctx context.Context) error

	// Close flushes and stops background persistence
	Close(ctx context.Context) error
}
