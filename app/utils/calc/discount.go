package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DiscountPercent returns the rounded percentage saved against the
// original price. A missing, zero, or not-greater original price means no
// discount: the result is never negative and never divides by zero.
func DiscountPercent(price, originalPrice decimal.Decimal) int64 {
	if !originalPrice.IsPositive() {
		return 0
	}
	if originalPrice.Cmp(price) <= 0 {
		return 0
	}
	return originalPrice.Sub(price).Div(originalPrice).Mul(hundred).Round(0).IntPart()
}
