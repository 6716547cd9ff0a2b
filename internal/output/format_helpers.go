package output

import "github.com/shopspring/decimal"

// FormatBillions formats a series value as USD billions with 1 decimal.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatBillions(amount decimal.Decimal) string { return "$" + amount.StringFixed(1) + "bn" }

// FormatPercentage formats a fractional rate as a percentage with 0 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
}
