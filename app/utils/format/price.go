package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var inr = accounting.Accounting{Symbol: "₹", Precision: 0, Thousand: ","}

// INR renders a price the way the storefront displays it, whole rupees
// with thousand separators.
func INR(amount decimal.Decimal) string {
	return inr.FormatMoney(amount)
}
