package brokerage

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percent is an exact percentage value (5 means 5%).
//
// Commission math must stay exact, so Percent wraps a decimal rather than a
// float. The 0-100 convention is not enforced here: out-of-range values flow
// through arithmetic unchanged.
type Percent struct {
	value decimal.Decimal
}

// P builds a Percent from any numeric value.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// Of applies the percentage to an amount: m × p/100, exact.
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.value).Div(hundred), cur: m.cur}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool         { return p.value.IsZero() }

// Decimal returns the exact percentage value.
func (p Percent) Decimal() decimal.Decimal { return p.value }

func (p Percent) String() string {
	return fmt.Sprintf("%s%%", p.value.StringFixed(2))
}

// MarshalJSON encodes the percentage as a bare number.
func (p Percent) MarshalJSON() ([]byte, error) { return json.Marshal(p.value) }

// UnmarshalJSON decodes the percentage from a bare number.
func (p *Percent) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &p.value) }

var _ json.Marshaler = (*Percent)(nil)
var _ json.Unmarshaler = (*Percent)(nil)
