package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of fractional digits kept for every currency amount.
const MoneyPlaces = 2

// MaxQuantity bounds a line quantity to what an INT column holds.
const MaxQuantity = 1<<31 - 1

// MaxMoney is the largest amount a DECIMAL(10,2) column holds.
var MaxMoney = decimal.New(9999999999, -MoneyPlaces)

// HasMoneyPrecision reports whether d can be stored as DECIMAL(10,2) without rounding.
func HasMoneyPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyPlaces))
}

// WithinMoneyRange reports whether d fits DECIMAL(10,2) in magnitude.
func WithinMoneyRange(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(MaxMoney)
}

func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}
