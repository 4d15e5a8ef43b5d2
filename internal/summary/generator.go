// Package summary builds the read-only year-end report that compares two
// consecutive history points.
package summary

import (
	"github.com/rpgo/career-simulator/internal/calculation"
	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// Input is everything concurrent with the newest history point.
type Input struct {
	Current  domain.HistoricalDataPoint
	Previous domain.HistoricalDataPoint

	Person          domain.PersonalFinancialData // after the year's updates
	PreviousPerson  domain.PersonalFinancialData
	Economy         domain.EconomicState
	PreviousEconomy domain.EconomicState

	Tax             domain.TaxCalculationResult
	Contributions   domain.ContributionBreakdown
	DebtPayments    decimal.Decimal
	InvestmentValue decimal.Decimal // pooled value at year end
}

// facts are the derived numbers both rule engines evaluate.
type facts struct {
	rates BankRates

	netWorth         decimal.Decimal
	previousNetWorth decimal.Decimal
	change           decimal.Decimal

	cash         domain.CashAccounts
	previousCash domain.CashAccounts
	cashTotal    decimal.Decimal
	investments  decimal.Decimal

	monthlyExpenses    decimal.Decimal
	fundMonths         decimal.Decimal
	previousFundMonths decimal.Decimal
}

// fundAdequate is true when cash covers the minimum months or there is nothing to cover.
func (f facts) fundAdequate() bool {
	return f.monthlyExpenses.LessThanOrEqual(decimal.Zero) || f.fundMonths.GreaterThanOrEqual(EmergencyFundMinimumMonths)
}

// Generator produces YearlySummary values. It holds configuration only.
type Generator struct {
	Rates          BankRates
	NetWorthLadder []decimal.Decimal
	Logger         calculation.Logger
}

// NewGenerator creates a generator with the default APYs and net-worth ladder.
func NewGenerator() *Generator {
	return &Generator{
		Rates:          DefaultBankRates(),
		NetWorthLadder: DefaultNetWorthLadder,
		Logger:         calculation.NopLogger{},
	}
}

// MonthlyExpenses returns the inflation-adjusted monthly spending for a year.
func MonthlyExpenses(person domain.PersonalFinancialData, economy domain.EconomicState) decimal.Decimal {
	cumulative := economy.CumulativeInflation
	if cumulative.IsZero() {
		cumulative = decimal.NewFromInt(1)
	}
	return person.MonthlyExpenses.Mul(cumulative)
}

// EmergencyFundMonths is cash divided by monthly expenses, 0 when there are no expenses.
func EmergencyFundMonths(cash, monthlyExpenses decimal.Decimal) decimal.Decimal {
	if monthlyExpenses.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return cash.Div(monthlyExpenses).Round(2)
}

// NetWorthChangePercent is the change relative to the previous magnitude, 0 when previous is 0.
func NetWorthChangePercent(previous, current decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(decimalHundred).Round(2)
}

// Generate returns the summary for in. It never modifies in.
func (g *Generator) Generate(in Input) domain.YearlySummary {
	monthly := MonthlyExpenses(in.Person, in.Economy)
	previousMonthly := MonthlyExpenses(in.PreviousPerson, in.PreviousEconomy)

	f := facts{
		rates:              g.Rates,
		netWorth:           in.Current.NetWorth,
		previousNetWorth:   in.Previous.NetWorth,
		change:             in.Current.NetWorth.Sub(in.Previous.NetWorth),
		cash:               in.Person.Cash,
		previousCash:       in.PreviousPerson.Cash,
		cashTotal:          in.Current.CashTotal,
		investments:        in.Current.InvestmentTotal,
		monthlyExpenses:    monthly,
		fundMonths:         EmergencyFundMonths(in.Current.CashTotal, monthly),
		previousFundMonths: EmergencyFundMonths(in.Previous.CashTotal, previousMonthly),
	}

	expenses := monthly.Mul(decimalTwelve)
	investing := in.Contributions.FromTakeHome()
	waterfall := domain.CashFlowWaterfall{
		TakeHomePay:             in.Tax.AfterTaxIncome,
		Expenses:                expenses,
		DebtPayments:            in.DebtPayments,
		InvestmentContributions: investing,
		Surplus:                 in.Tax.AfterTaxIncome.Sub(expenses).Sub(in.DebtPayments).Sub(investing),
	}

	subAccounts := calculation.AllocateAccounts(calculation.AllocationInput{
		TotalInvestmentValue:   in.InvestmentValue,
		StartingTraditionalIRA: in.Person.Holdings.TraditionalIRA,
		StartingRothIRA:        in.Person.Holdings.RothIRA,
		Contributions:          in.Contributions,
	})

	summary := domain.YearlySummary{
		Year:                  in.Current.Year,
		Age:                   in.Current.Age,
		PreviousNetWorth:      in.Previous.NetWorth,
		NetWorth:              in.Current.NetWorth,
		NetWorthChange:        f.change,
		NetWorthChangePercent: NetWorthChangePercent(in.Previous.NetWorth, in.Current.NetWorth),
		Salary:                in.Current.Salary,
		CashFlow:              waterfall,
		Taxes:                 in.Tax,
		Economy:               in.Economy,
		BankInterest:          g.Rates.Accrue(in.Person.Cash),
		SubAccounts:           subAccounts,
		EmergencyFundMonths:   f.fundMonths,
		Achievements:          []domain.Achievement{},
		Recommendations:       []domain.Recommendation{},
	}

	for _, rule := range g.achievementRules() {
		summary.Achievements = append(summary.Achievements, rule(f)...)
	}
	for _, rule := range recommendationRules {
		if rec, ok := rule(f); ok {
			summary.Recommendations = append(summary.Recommendations, rec)
		}
	}

	if g.Logger != nil {
		g.Logger.Debugf("summary year %d: net worth %s (%s%%), %d achievements, %d recommendations",
			summary.Year, summary.NetWorth.StringFixed(2), summary.NetWorthChangePercent.String(),
			len(summary.Achievements), len(summary.Recommendations))
	}
	return summary
}
