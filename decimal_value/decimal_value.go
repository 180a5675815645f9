package decimal_value

import (
	"github.com/shopspring/decimal"
)

// NullString is how an absent value renders in reports.
const NullString = "N.A."

var Null = DecimalOpt{IsNull: true}

// DecimalOpt is either a decimal amount, or Null when no amount could be
// determined (eg. a payment with no exchange rate for its date).
type DecimalOpt struct {
	Decimal decimal.Decimal
	IsNull  bool
}

func New(value decimal.Decimal) DecimalOpt {
	return DecimalOpt{Decimal: value}
}

// Get returns the amount, and whether it is present.
func (d DecimalOpt) Get() (decimal.Decimal, bool) {
	return d.Decimal, !d.IsNull
}

func (d DecimalOpt) Mul(d2 DecimalOpt) DecimalOpt {
	if d.IsNull || d2.IsNull {
		return Null
	}
	return DecimalOpt{Decimal: d.Decimal.Mul(d2.Decimal)}
}

func (d DecimalOpt) MulD(d2 decimal.Decimal) DecimalOpt {
	return d.Mul(New(d2))
}

func (d DecimalOpt) Equal(d2 DecimalOpt) bool {
	if d.IsNull || d2.IsNull {
		return d.IsNull == d2.IsNull
	}
	return d.Decimal.Equal(d2.Decimal)
}

func (d DecimalOpt) String() string {
	if d.IsNull {
		return NullString
	}

	return PlainString(d.Decimal)
}

// PlainString renders d without exponent notation, keeping every fractional
// digit its scale carries. 1000 * 0.85 renders as "850.00", not "850".
func PlainString(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
