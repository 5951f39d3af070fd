package cart

import (
	"fmt"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// StorePolicy is consulted before a line is added. Returning an error rejects the add and
// leaves the cart untouched.
type StorePolicy interface {
	AllowAdd(state entity.CartState, candidate entity.CartLine) error
}

// StorePolicyFunc adapts a function to StorePolicy.
type StorePolicyFunc func(state entity.CartState, candidate entity.CartLine) error

// AllowAdd calls f.
func (f StorePolicyFunc) AllowAdd(state entity.CartState, candidate entity.CartLine) error {
	return f(state, candidate)
}

// AllowAnyStore accepts every add. Cross-store adds are left to the UI to prevent.
var AllowAnyStore StorePolicy = StorePolicyFunc(func(entity.CartState, entity.CartLine) error {
	return nil
})

// RequireSingleStore rejects a line whose store differs from the active store.
var RequireSingleStore StorePolicy = StorePolicyFunc(func(state entity.CartState, candidate entity.CartLine) error {
	if state.IsEmpty() || state.Store == nil || candidate.Store == nil {
		return nil
	}
	if state.Store.ID == candidate.Store.ID {
		return nil
	}

	return domainerrors.ErrStoreConflict.WithDetails(
		fmt.Sprintf("cart belongs to store %s, item is from store %s", state.Store.ID, candidate.Store.ID),
	)
})
