package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBalanceStatus(t *testing.T) {
	assert.Equal(t, BalanceStatusZero, BalanceStatus(decimal.Zero))
	assert.Equal(t, BalanceStatusPositive, BalanceStatus(decimal.NewFromFloat(0.01)))
	assert.Equal(t, BalanceStatusNegative, BalanceStatus(decimal.NewFromFloat(-0.01)))
	assert.Equal(t, BalanceStatusPositive, BalanceStatus(decimal.NewFromInt(1500)))
	assert.Equal(t, BalanceStatusNegative, BalanceStatus(decimal.NewFromInt(-1500)))
}

func TestBalanceStatus_ZeroRequiresExactEquality(t *testing.T) {
	// 0.00 in any representation is still zero
	assert.Equal(t, BalanceStatusZero, BalanceStatus(decimal.NewFromFloat(0.00)))
	assert.Equal(t, BalanceStatusZero, BalanceStatus(decimal.RequireFromString("0.000")))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "June", MonthName(6))
	assert.Equal(t, "December", MonthName(12))
	assert.Equal(t, "Unknown", MonthName(0))
	assert.Equal(t, "Unknown", MonthName(13))
	assert.Equal(t, "Unknown", MonthName(-3))
}
