package utils

import "github.com/shopspring/decimal"

// FormatMoney renders an amount for display with the configured currency
// symbol, always with two decimal places, e.g. "$1234.50". The data file
// never uses this form; persistence renders amounts with Decimal.String.
func FormatMoney(amount decimal.Decimal, symbol string) string {
	return symbol + amount.StringFixed(2)
}

// FormatSigned is FormatMoney with an explicit sign, for history views
// where the direction of a transaction matters at a glance.
func FormatSigned(amount decimal.Decimal, symbol string) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Neg().StringFixed(2)
	}
	return "+" + symbol + amount.StringFixed(2)
}
