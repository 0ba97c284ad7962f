package domain

import "github.com/shopspring/decimal"

// PriceWithTax returns base increased by ratePercent percent.
func PriceWithTax(base, ratePercent decimal.Decimal) decimal.Decimal {
	// Shift(-2) divides by 100 without losing precision.
	return base.Add(base.Mul(ratePercent).Shift(-2))
}

// ToLocal converts an amount in the reference currency into local currency.
func ToLocal(amountInReference, rate decimal.Decimal) decimal.Decimal {
	return amountInReference.Mul(rate)
}
