package budget

import "github.com/shopspring/decimal"

// FormatDollars renders an amount as a dollar string with two decimal
// places, sign ahead of the dollar sign: -$3.50, $12.00.
func FormatDollars(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}
