package entity

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const centPlaces = 2

// Money is an exact decimal amount. It is encoded as a JSON string, fixed to two places for
// cent amounts ("23.00") and at full precision otherwise ("0.125"), and decodes from either
// a JSON string or a JSON number.
type Money struct {
	d decimal.Decimal
}

// ZeroMoney is the additive identity.
var ZeroMoney = Money{d: decimal.Zero}

// NewMoney converts a float (as supplied by catalog payloads) into Money.
func NewMoney(v float64) Money {
	return Money{d: decimal.NewFromFloat(v)}
}

// ParseMoney parses a decimal string such as "12.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ZeroMoney, errors.Wrapf(err, "invalid money amount %q", s)
	}

	return Money{d: d}, nil
}

// MustParseMoney is ParseMoney for literals; it panics on malformed input.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}

	return m
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

// Mul returns m multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Round2 rounds half away from zero to cent precision.
func (m Money) Round2() Money {
	return Money{d: m.d.Round(centPlaces)}
}

func (m Money) IsZero() bool     { return m.d.IsZero() }
func (m Money) IsPositive() bool { return m.d.IsPositive() }
func (m Money) IsNegative() bool { return m.d.IsNegative() }

// Equal compares by value, so 23 and 23.00 are equal.
func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

// Decimal exposes the underlying value.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// String renders the amount with exactly two decimal places, for display.
func (m Money) String() string {
	return m.d.StringFixed(centPlaces)
}

// exact renders the amount without losing sub-cent digits. Equal amounts render the same.
func (m Money) exact() string {
	if m.d.Equal(m.d.Round(centPlaces)) {
		return m.d.StringFixed(centPlaces)
	}

	return m.d.String()
}

// MarshalJSON implements json.Marshaler. Catalog prices may carry sub-cent digits, which
// must survive a save and reload.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.exact())), nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves the amount at zero.
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		m.d = decimal.Zero

		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errors.Wrap(err, "decode money")
	}
	m.d = d

	return nil
}

// LineTotal computes (unit + sum(addons)) * quantity rounded to cents.
func LineTotal(unit Money, addons []AddonSelection, quantity int) Money {
	each := unit
	for _, a := range addons {
		each = each.Add(a.Price)
	}

	return each.Mul(quantity).Round2()
}
