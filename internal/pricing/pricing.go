// Package pricing holds the pure price computations: boundary parsing of
// display prices, line totals, cart subtotals and the discounted grand total.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Parse extracts the numeric value from a display price. Prices arrive
// either as plain numbers or decorated strings ("₹120", "1,250.50").
// Anything that does not parse to a finite number yields 0 so that one
// bad catalog entry never aborts a total computation.
func Parse(price string) float64 {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseValue is Parse for values of unknown JSON type. Numbers decoded by
// encoding/json arrive as float64, everything else is parsed as a string.
func ParseValue(price any) float64 {
	switch v := price.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case int:
		return float64(v)
	case string:
		return Parse(v)
	}
	return 0
}

// LineTotal is unit price times quantity for a single cart line.
func LineTotal(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity)
}

// GrandTotal applies a discount to a subtotal, floored at zero. A discount
// larger than the subtotal never produces a negative total.
func GrandTotal(subtotal, discount float64) float64 {
	return math.Max(0, subtotal-discount)
}
