// Package snapshot encodes the cart into the persisted slot layout and restores it,
// tolerating slots written by older app versions.
package snapshot

import (
	"bytes"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrMalformed is returned when the slot holds something that is not a cart document.
var ErrMalformed = errors.Sentinel("malformed cart snapshot")

// document is the slot layout: {"store": ..., "orders": [...]}.
type document struct {
	Store  *entity.Store `json:"store"`
	Orders []lineRecord  `json:"orders"`
}

// storedDocument is the decode side of document. Store stays raw so a slot that never
// recorded the active store can be told apart from one that recorded none.
type storedDocument struct {
	Store  json.RawMessage `json:"store"`
	Orders []lineRecord    `json:"orders"`
}

// lineRecord mirrors entity.CartLine with the optional fields older slots may omit.
type lineRecord struct {
	Item       entity.CatalogItem      `json:"item"`
	Addons     []entity.AddonSelection `json:"addons"`
	Quantity   int                     `json:"quantity"`
	Total      *entity.Money           `json:"total,omitempty"`
	Store      *entity.Store           `json:"store"`
	Restaurant *entity.Store           `json:"restaurant,omitempty"`
}

// Encode renders the state in the slot layout.
func Encode(state entity.CartState) ([]byte, error) {
	doc := document{
		Store:  state.Store,
		Orders: make([]lineRecord, 0, len(state.Lines)),
	}
	for _, line := range state.Lines {
		total := line.Total
		addons := line.Addons
		if addons == nil {
			addons = []entity.AddonSelection{}
		}
		doc.Orders = append(doc.Orders, lineRecord{
			Item:     line.Item,
			Addons:   addons,
			Quantity: line.Quantity,
			Total:    &total,
			Store:    line.Store,
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "encode cart snapshot")
	}

	return data, nil
}

// Decode restores a state from the slot. Unknown fields are ignored and missing ones
// default. A line without a total is priced at item price times quantity, a line that
// recorded its store under "restaurant" keeps that store, and lines with no units are
// dropped. A slot without a "store" key takes the first line's store; an explicit null
// is kept. Anything that is not a JSON object yields ErrMalformed.
func Decode(data []byte) (entity.CartState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return entity.EmptyCart(), errors.WithStack(ErrMalformed)
	}

	var doc storedDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return entity.EmptyCart(), errors.Wrap(ErrMalformed, err.Error())
	}

	state := entity.EmptyCart()
	for _, rec := range doc.Orders {
		if rec.Quantity <= 0 {
			continue
		}
		state.Lines = append(state.Lines, rec.toLine())
	}
	if state.IsEmpty() {
		return state, nil
	}

	if len(doc.Store) == 0 {
		state.Store = state.Lines[0].Store.Clone()

		return state, nil
	}
	if err := json.Unmarshal(doc.Store, &state.Store); err != nil {
		return entity.EmptyCart(), errors.Wrap(ErrMalformed, err.Error())
	}

	return state, nil
}

func (r lineRecord) toLine() entity.CartLine {
	line := entity.CartLine{
		Item:     r.Item,
		Addons:   r.Addons,
		Quantity: r.Quantity,
		Store:    r.Store,
	}
	if line.Store == nil {
		line.Store = r.Restaurant
	}
	if r.Total != nil {
		line.Total = *r.Total
	} else {
		line.Total = entity.LineTotal(r.Item.Price, nil, r.Quantity)
	}

	return line
}
