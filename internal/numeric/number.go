// Package numeric provides the money/number normalization shared by every
// report. All aggregation happens on raw float64 values; a Number is only
// produced at the presentation boundary.
package numeric

import "github.com/shopspring/decimal"

// Number is a monetary/metric value rounded to two decimal places.
// Whole values serialize without a fractional part ("25", never "25.0"),
// everything else with up to two decimals ("22.5", "10.56"). Downstream
// equivalence checks compare serialized output, so this representation is
// part of the contract, not formatting sugar.
type Number struct {
	dec decimal.Decimal
}

// Normalize rounds v to two decimal places, half away from zero.
func Normalize(v float64) Number {
	return Number{dec: decimal.NewFromFloat(v).Round(2)}
}

// FromInt builds a Number from an integer value.
func FromInt(v int64) Number {
	return Number{dec: decimal.NewFromInt(v)}
}

// Float64 returns the rounded value as a float64.
func (n Number) Float64() float64 {
	f, _ := n.dec.Float64()
	return f
}

// String renders the canonical form: integer when the fractional part is
// zero, minimal decimal digits otherwise.
func (n Number) String() string {
	if n.dec.IsInteger() {
		return n.dec.Truncate(0).String()
	}
	return n.dec.String()
}

// MarshalJSON emits the canonical form as a bare JSON number.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

// Equal reports whether two Numbers hold the same rounded value.
func (n Number) Equal(other Number) bool {
	return n.dec.Equal(other.dec)
}
