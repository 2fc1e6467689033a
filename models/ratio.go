package models

import (
	"fmt"
	"math"
	"strconv"
)

// Ratio is a quotient that may be undefined, e.g. a CAC with no conversions.
// An undefined Ratio compares worse than every finite one.
type Ratio struct {
	value   float64
	defined bool
}

// Finite returns a defined Ratio. Non-finite input yields Undefined.
func Finite(v float64) Ratio {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Undefined()
	}
	return Ratio{value: v, defined: true}
}

// Undefined returns the Ratio for a zero denominator.
func Undefined() Ratio {
	return Ratio{}
}

// Divide returns num/den, or Undefined when den is zero.
func Divide(num, den float64) Ratio {
	if den == 0 {
		return Undefined()
	}
	return Finite(num / den)
}

func (r Ratio) Value() (float64, bool) {
	return r.value, r.defined
}

func (r Ratio) IsDefined() bool {
	return r.defined
}

// AtMost reports whether r is defined and no greater than limit.
func (r Ratio) AtMost(limit float64) bool {
	return r.defined && r.value <= limit
}

// Less orders finite values numerically and undefined after all of them.
func (r Ratio) Less(other Ratio) bool {
	switch {
	case !r.defined:
		return false
	case !other.defined:
		return true
	default:
		return r.value < other.value
	}
}

func (r Ratio) String() string {
	if !r.defined {
		return "undefined"
	}
	return strconv.FormatFloat(r.value, 'f', -1, 64)
}

// Currency formats r as dollars with cents.
func (r Ratio) Currency() string {
	if !r.defined {
		return "undefined"
	}
	return fmt.Sprintf("$%.2f", r.value)
}

// Percent formats r as a percentage with two decimals.
func (r Ratio) Percent() string {
	if !r.defined {
		return "undefined"
	}
	return fmt.Sprintf("%.2f%%", r.value*100)
}

// MarshalJSON encodes an undefined Ratio as null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.defined {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(r.value, 'g', -1, 64)), nil
}
