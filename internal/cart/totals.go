package cart

import "github.com/shopspring/decimal"

// Total is the sum of unitPrice*quantity over all lines, recomputed on every
// call. Decimal arithmetic keeps two-decimal prices exact.
func Total(s State) decimal.Decimal {
	sum := decimal.Zero
	for _, ln := range s {
		sum = sum.Add(ln.UnitPrice.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	return sum
}

// ItemCount is the sum of quantities over all lines.
func ItemCount(s State) int {
	n := 0
	for _, ln := range s {
		n += ln.Quantity
	}
	return n
}
