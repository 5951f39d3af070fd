package cart

import (
	"storefront/internal/domain/entity"
)

func money(s string) entity.Money {
	return entity.MustParseMoney(s)
}

func addon(id, name, price string) entity.AddonSelection {
	return entity.AddonSelection{ID: entity.ID(id), Name: name, Price: money(price)}
}

func store(id string) *entity.Store {
	return &entity.Store{ID: entity.ID(id), Name: "Store " + id}
}

// newLine builds a line with total (price + addons) * quantity, as the add flow computes it.
func newLine(itemID, price string, quantity int, st *entity.Store, addons ...entity.AddonSelection) entity.CartLine {
	unit := money(price)

	return entity.CartLine{
		Item:     entity.CatalogItem{ID: entity.ID(itemID), Name: "Item " + itemID, Price: unit},
		Addons:   addons,
		Quantity: quantity,
		Total:    entity.LineTotal(unit, addons, quantity),
		Store:    st,
	}
}

func apply(t interface{ Helper() }, opts Options, cmds ...Command) entity.CartState {
	t.Helper()
	state := entity.EmptyCart()
	for _, cmd := range cmds {
		state = Reduce(state, cmd, opts)
	}

	return state
}
