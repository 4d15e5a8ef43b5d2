package calculation

import (
	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultDebtTermMonths is used when a balance has no remaining term configured.
const DefaultDebtTermMonths = 120

// DebtYear is twelve months of scheduled payments on a DebtAccount.
type DebtYear struct {
	StartingBalance     decimal.Decimal `json:"starting_balance"`
	MonthlyPayment      decimal.Decimal `json:"monthly_payment"`
	Payments            decimal.Decimal `json:"payments"`
	Interest            decimal.Decimal `json:"interest"`
	Principal           decimal.Decimal `json:"principal"`
	EndingBalance       decimal.Decimal `json:"ending_balance"`
	RemainingTermMonths int             `json:"remaining_term_months"`
}

// CalculateMonthlyPayment uses the standard amortization formula.
func CalculateMonthlyPayment(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	if principal.LessThanOrEqual(decimalZero) {
		return decimalZero
	}
	if termMonths <= 0 {
		return principal
	}
	if annualRate.LessThanOrEqual(decimalZero) {
		return principal.Div(decimal.NewFromInt(int64(termMonths)))
	}
	periodicRate := annualRate.Div(decimalTwelve)
	power := decimalOne.Add(periodicRate).Pow(decimal.NewFromInt(int64(termMonths)))
	discountFactor := power.Sub(decimalOne).Div(power)
	return principal.Mul(periodicRate).Div(discountFactor)
}

// AmortizeYear runs one year of monthly payments against debt.
// A zero or negative balance produces no payments and leaves the account unchanged.
func AmortizeYear(debt domain.DebtAccount) DebtYear {
	year := DebtYear{
		StartingBalance:     debt.Balance,
		EndingBalance:       debt.Balance,
		RemainingTermMonths: debt.TermMonths,
	}
	if debt.Balance.LessThanOrEqual(decimalZero) {
		return year
	}

	term := debt.TermMonths
	if term <= 0 {
		term = DefaultDebtTermMonths
	}
	payment := CalculateMonthlyPayment(debt.Balance, debt.Rate, term)
	monthlyRate := decimal.Max(decimalZero, debt.Rate).Div(decimalTwelve)

	balance := debt.Balance
	for month := 0; month < 12 && balance.GreaterThan(decimalZero); month++ {
		interest := balance.Mul(monthlyRate)
		principal := decimal.Max(decimalZero, payment.Sub(interest))
		term--
		if principal.GreaterThan(balance) || term <= 0 {
			principal = balance
		}
		balance = balance.Sub(principal)
		year.Interest = year.Interest.Add(interest)
		year.Principal = year.Principal.Add(principal)
		year.Payments = year.Payments.Add(interest).Add(principal)
	}

	year.MonthlyPayment = payment.Round(2)
	year.Interest = year.Interest.Round(2)
	year.Principal = year.Principal.Round(2)
	year.Payments = year.Payments.Round(2)
	year.EndingBalance = debt.Balance.Sub(year.Principal)
	if balance.IsZero() {
		year.EndingBalance = decimalZero
		term = 0
	}
	year.RemainingTermMonths = term
	return year
}
