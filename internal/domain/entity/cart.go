package entity

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/pkg/errors"
)

// ID identifies catalog items, add-ons and stores. Catalog payloads carry ids as either
// JSON strings or numbers; both decode to the same ID.
type ID string

// String returns the string representation of the ID.
func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode id")
		}
		*id = ID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "decode id")
	}
	*id = ID(n.String())

	return nil
}

// Store is the snapshot of the store or restaurant a line was added from.
type Store struct {
	ID          ID     `json:"id"`                     // Store identifier from the catalog.
	Name        string `json:"name"`                   // Display name shown on the order banner.
	LogoURL     string `json:"logo_url,omitempty"`     // Logo shown next to the name.
	DeliveryFee *Money `json:"delivery_fee,omitempty"` // Per-order delivery fee, nil when the store does not publish one.
	ETAMinutes  *int   `json:"eta_minutes,omitempty"`  // Estimated delivery time.
	Area        string `json:"area,omitempty"`         // Area or address line.
}

// CatalogItem is the catalog item as it was when added; later catalog changes do not reach the cart.
type CatalogItem struct {
	ID    ID      `json:"id"`
	Name  string  `json:"name"`
	Price Money   `json:"price"`
	Image *string `json:"image"`
}

// AddonSelection is one chosen option of a configurable step.
type AddonSelection struct {
	ID    ID     `json:"id,omitempty"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

// CanonicalKey identifies the add-on for line identity: the id when present, else the name.
func (a AddonSelection) CanonicalKey() string {
	if a.ID != "" {
		return string(a.ID)
	}

	return a.Name
}

// CartLine is one buyable configuration in the cart.
type CartLine struct {
	Item     CatalogItem      `json:"item"`
	Addons   []AddonSelection `json:"addons"`
	Quantity int              `json:"quantity"`
	Total    Money            `json:"total"`
	Store    *Store           `json:"store"`
}

// Clone returns a deep copy of the line.
func (l CartLine) Clone() CartLine {
	out := l
	out.Addons = slices.Clone(l.Addons)
	if l.Item.Image != nil {
		img := *l.Item.Image
		out.Item.Image = &img
	}
	out.Store = l.Store.Clone()

	return out
}

// Clone returns a deep copy of the store, nil-safe.
func (s *Store) Clone() *Store {
	if s == nil {
		return nil
	}
	out := *s
	if s.DeliveryFee != nil {
		fee := *s.DeliveryFee
		out.DeliveryFee = &fee
	}
	if s.ETAMinutes != nil {
		eta := *s.ETAMinutes
		out.ETAMinutes = &eta
	}

	return &out
}

// CartState is the aggregate root of the cart. Lines keep insertion order.
type CartState struct {
	Store *Store     `json:"store"`
	Lines []CartLine `json:"orders"`
}

// EmptyCart returns the canonical empty state.
func EmptyCart() CartState {
	return CartState{Lines: []CartLine{}}
}

// IsEmpty reports whether the cart holds no lines.
func (s CartState) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Clone returns a deep copy of the state.
func (s CartState) Clone() CartState {
	out := CartState{
		Store: s.Store.Clone(),
		Lines: make([]CartLine, 0, len(s.Lines)),
	}
	for _, l := range s.Lines {
		out.Lines = append(out.Lines, l.Clone())
	}

	return out
}
