package summary

import (
	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// BankRates are the fixed annual percentage yields per cash account type.
type BankRates struct {
	Checking         decimal.Decimal
	Savings          decimal.Decimal
	HighYieldSavings decimal.Decimal
	MoneyMarket      decimal.Decimal
}

// DefaultBankRates returns the simplified APY table.
func DefaultBankRates() BankRates {
	return BankRates{
		Checking:         decimal.NewFromFloat(0.0001),
		Savings:          decimal.NewFromFloat(0.0045),
		HighYieldSavings: decimal.NewFromFloat(0.045),
		MoneyMarket:      decimal.NewFromFloat(0.04),
	}
}

// Accrue returns one year of simple interest on each balance, rounded to cents.
// Negative balances earn nothing.
func (r BankRates) Accrue(cash domain.CashAccounts) domain.BankInterest {
	earn := func(balance, apy decimal.Decimal) decimal.Decimal {
		if balance.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero
		}
		return balance.Mul(apy).Round(2)
	}

	interest := domain.BankInterest{
		Checking:         earn(cash.Checking, r.Checking),
		Savings:          earn(cash.Savings, r.Savings),
		HighYieldSavings: earn(cash.HighYieldSavings, r.HighYieldSavings),
		MoneyMarket:      earn(cash.MoneyMarket, r.MoneyMarket),
	}
	interest.Total = interest.Checking.Add(interest.Savings).Add(interest.HighYieldSavings).Add(interest.MoneyMarket)
	return interest
}
