package utils

import "github.com/shopspring/decimal"

// RoundCents rounds a dollar amount to two decimal places using decimal
// arithmetic so table-derived estimates don't accumulate float noise.
func RoundCents(amount float64) float64 {
	v, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return v
}

// RoundTenth rounds to one decimal place, used for presentation values like
// margin lift and discount percentages.
func RoundTenth(amount float64) float64 {
	v, _ := decimal.NewFromFloat(amount).Round(1).Float64()
	return v
}
