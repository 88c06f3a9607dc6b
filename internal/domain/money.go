package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal digits carried by every monetary value.
const MoneyScale = 2

// Business constants. All amounts are currency values with two decimal digits.
var (
	MinimumBalance        = decimal.RequireFromString("500.00")
	MinTransactionAmount  = decimal.RequireFromString("0.01")
	MaxTransactionAmount  = decimal.RequireFromString("1000000.00")
	DailyTransactionLimit = decimal.RequireFromString("50000.00")
	SavingsAnnualRate     = decimal.RequireFromString("0.045")
)

const (
	// MaxAccountsPerUser is the ceiling on accounts a single owner may hold.
	MaxAccountsPerUser = 5

	// AccountNumberLength is the fixed length of account numbers.
	AccountNumberLength = 10
)

var monthsPerYear = decimal.NewFromInt(12)

// RoundMoney normalizes d to the monetary scale, rounding half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// MonthlyInterest returns one month of interest on balance at the savings
// annual rate, rounded to the monetary scale.
func MonthlyInterest(balance decimal.Decimal) decimal.Decimal {
	return RoundMoney(balance.Mul(SavingsAnnualRate).Div(monthsPerYear))
}
