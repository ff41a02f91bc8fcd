package models

import "github.com/shopspring/decimal"

// Balance status tags derived from the sign of a summed amount.
const (
	BalanceStatusPositive = "positive"
	BalanceStatusNegative = "negative"
	BalanceStatusZero     = "zero"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// SpendingSummary contains the summed amount for one category over a
// reporting window.
type SpendingSummary struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// BalancePoint is one aggregated (year) or (year, month) total. Month is 0
// for yearly points.
type BalancePoint struct {
	Year      int             `json:"year"`
	Month     int             `json:"month,omitempty"`
	MonthName string          `json:"month_name,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
}

// BalanceStatus derives the status tag from the sign of the amount.
// Zero requires exact equality.
func BalanceStatus(amount decimal.Decimal) string {
	switch amount.Sign() {
	case 1:
		return BalanceStatusPositive
	case -1:
		return BalanceStatusNegative
	default:
		return BalanceStatusZero
	}
}

// MonthName returns the English name for a 1-based month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Unknown"
	}
	return monthNames[month-1]
}
