package simulation

import (
	"fmt"
	"time"

	"github.com/rpgo/career-simulator/internal/calculation"
	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/rpgo/career-simulator/internal/summary"
	"github.com/rpgo/career-simulator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// SalaryPassThrough is the share of each year's inflation passed on to salary.
var SalaryPassThrough = decimal.NewFromFloat(0.5)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
)

// TickResult is everything one simulated year produced.
type TickResult struct {
	Delta         domain.PersonDelta
	Person        domain.PersonalFinancialData // the profile with Delta applied
	Aggregates    domain.FinancialAggregates
	Point         domain.HistoricalDataPoint
	Elapsed       dateutil.Elapsed
	Tax           domain.TaxCalculationResult
	Contributions domain.ContributionBreakdown
	Debt          calculation.DebtYear
	Events        []domain.Event
	Summary       domain.YearlySummary
	Completed     bool
}

// Stepper runs the per-year state transition. It keeps no state between calls:
// everything that survives a tick lives in the SimulationContext it returns.
type Stepper struct {
	Tax     *calculation.TaxCalculator
	Economy *calculation.EconomicStepper
	Summary *summary.Generator
	Logger  calculation.Logger
}

// NewStepper creates a stepper drawing economic randomness from r (nil: time-seeded).
func NewStepper(r calculation.RandomSource) *Stepper {
	return &Stepper{
		Tax:     calculation.NewTaxCalculator(),
		Economy: calculation.NewEconomicStepper(r),
		Summary: summary.NewGenerator(),
		Logger:  calculation.NopLogger{},
	}
}

// SetLogger sets the logger for the stepper and its collaborators. If nil is provided, a no-op logger is used.
func (s *Stepper) SetLogger(l calculation.Logger) {
	if l == nil {
		l = calculation.NopLogger{}
	}
	s.Logger = l
	s.Economy.Logger = l
	s.Summary.Logger = l
}

// NewContext returns a fresh context in the setup state with the initial economy.
func NewContext() domain.SimulationContext {
	return domain.SimulationContext{
		State:           domain.StateSetup,
		Economy:         calculation.InitialEconomicState(),
		FiredMilestones: []int{},
		History:         []domain.HistoricalDataPoint{},
		Summaries:       []domain.YearlySummary{},
	}
}

// Begin captures the baseline of a first start and seeds the history with one point.
func (s *Stepper) Begin(ctx domain.SimulationContext, person domain.PersonalFinancialData, start time.Time) (domain.SimulationContext, domain.FinancialAggregates) {
	next := ctx.Clone()
	next.Started = true
	next.StartDate = start
	next.Year = 0
	next.SeedAge = person.Age
	next.BaselineSalary = person.Salary
	next.SeedCash = person.Cash
	next.SeedHoldings = person.Holdings
	next.SeedDebt = person.Debt
	next.InvestmentValue = person.Holdings.Total()

	cash := person.Cash.Total()
	debt := decimal.Max(decimal.Zero, person.Debt.Balance)
	seed := domain.HistoricalDataPoint{
		Year:            0,
		Age:             person.Age,
		Salary:          person.Salary,
		CashTotal:       cash,
		InvestmentTotal: next.InvestmentValue,
		Debt:            debt,
		NetWorth:        domain.NetWorthOf(cash, next.InvestmentValue, debt),
		Inflation:       next.Economy.Inflation,
		StockIndex:      next.Economy.StockIndex,
		Timestamp:       start,
	}
	next.History = []domain.HistoricalDataPoint{seed}
	next.Summaries = []domain.YearlySummary{}

	s.Logger.Infof("simulation started at age %d: net worth %s, salary %s",
		person.Age, seed.NetWorth.StringFixed(2), person.Salary.StringFixed(2))

	return next, domain.FinancialAggregates{
		TotalSavings:     cash,
		TotalInvestments: next.InvestmentValue,
		NetWorth:         seed.NetWorth,
		AnnualCashFlow:   decimal.Zero,
	}
}

// Contributions computes one year of savings for salary. The 401k pair is capped at the
// year's limit; the employer match is bounded by the employee's own 401k deferral.
func Contributions(person domain.PersonalFinancialData, salary decimal.Decimal, taxYear int) domain.ContributionBreakdown {
	c := person.Contributions
	traditional := salary.Mul(c.Traditional401kPercent)
	roth := salary.Mul(c.Roth401kPercent)
	traditional, roth = calculation.CapContributions(traditional, roth, calculation.ContributionLimit(taxYear))
	match := decimal.Min(traditional.Add(roth), salary.Mul(c.EmployerMatchRate))

	return domain.ContributionBreakdown{
		Traditional401k: traditional,
		Roth401k:        roth,
		EmployerMatch:   decimal.Max(decimal.Zero, match),
		TraditionalIRA:  c.TraditionalIRA,
		RothIRA:         c.RothIRA,
		Taxable:         c.MonthlyTaxableInvestment.Mul(decimalTwelve),
	}
}

// Advance runs one simulated year. ctx and person are not modified.
func (s *Stepper) Advance(ctx domain.SimulationContext, person domain.PersonalFinancialData) (domain.SimulationContext, TickResult) {
	next := ctx.Clone()
	prevPoint, _ := ctx.LastPoint()

	// 1. economy
	economy := s.Economy.Step(ctx.Economy)
	next.Economy = economy

	// 2. calendar
	next.Year = ctx.Year + 1
	age := person.Age + 1
	date := dateutil.AddYears(ctx.StartDate, next.Year)
	elapsed := dateutil.Since(ctx.StartDate, date)
	taxYear := ctx.StartDate.Year() + next.Year - 1

	// 3. salary
	salary := person.Salary.Mul(decimalOne.Add(economy.Inflation.Mul(SalaryPassThrough)))

	// 4. contributions
	contributions := Contributions(person, salary, taxYear)

	// 5. pooled investments
	pool := ctx.InvestmentValue.Mul(decimalOne.Add(economy.Returns.SP500)).Add(contributions.Total())
	next.InvestmentValue = pool

	// 6. per-account ledgers record the contributions themselves
	holdings := domain.Holdings{
		Taxable:         contributions.Taxable,
		Traditional401k: contributions.Traditional401k.Add(contributions.EmployerMatch),
		Roth401k:        contributions.Roth401k,
		TraditionalIRA:  contributions.TraditionalIRA,
		RothIRA:         contributions.RothIRA,
	}

	// 7. taxes, debt service and cash flow
	tax := s.Tax.Calculate(calculation.TaxInput{
		Salary:          salary,
		State:           person.State,
		Traditional401k: contributions.Traditional401k,
		Roth401k:        contributions.Roth401k,
		TraditionalIRA:  contributions.TraditionalIRA,
		RothIRA:         contributions.RothIRA,
		Year:            taxYear,
	})
	debt := calculation.AmortizeYear(person.Debt)
	expenses := summary.MonthlyExpenses(person, economy).Mul(decimalTwelve)
	cashFlow := tax.AfterTaxIncome.Sub(expenses).Sub(debt.Payments)

	newAge := age
	newSalary := salary
	debtBalance := debt.EndingBalance
	debtTerm := debt.RemainingTermMonths
	delta := domain.PersonDelta{
		Age:            &newAge,
		Salary:         &newSalary,
		DebtBalance:    &debtBalance,
		DebtTermMonths: &debtTerm,
		SavingsDeposit: cashFlow,
		Holdings:       holdings,
	}
	updated := person.Apply(delta)

	// 8. net worth
	cash := updated.Cash.Total()
	debtOwed := decimal.Max(decimal.Zero, debtBalance)
	netWorth := domain.NetWorthOf(cash, pool, debtOwed)

	// 9. history
	current := domain.HistoricalDataPoint{
		Year:            next.Year,
		Age:             age,
		Salary:          salary,
		CashTotal:       cash,
		InvestmentTotal: pool,
		Debt:            debtOwed,
		NetWorth:        netWorth,
		Inflation:       economy.Inflation,
		StockIndex:      economy.StockIndex,
		Timestamp:       date,
	}
	next.History = append(next.History, current)

	// 10. milestones
	birthYear := dateutil.BirthYear(ctx.SeedAge, ctx.StartDate)
	var events []domain.Event
	for _, m := range crossedMilestones(next, birthYear, person.Age, age) {
		next.FiredMilestones = append(next.FiredMilestones, m.Age)
		events = append(events, domain.Event{
			ID:          newID(),
			Kind:        domain.EventMilestone,
			Title:       m.Title,
			Description: m.Description,
			Age:         age,
			Year:        next.Year,
			Timestamp:   date,
		})
	}

	// 11. retirement
	completed := age >= person.RetirementAge
	if completed {
		next.State = domain.StateCompleted
		events = append(events, domain.Event{
			ID:          newID(),
			Kind:        domain.EventRetirement,
			Title:       "Retirement reached",
			Description: fmt.Sprintf("You reached retirement age %d with a net worth of %s.", age, netWorth.StringFixed(2)),
			Age:         age,
			Year:        next.Year,
			Timestamp:   date,
		})
	}

	yearly := s.Summary.Generate(summary.Input{
		Current:         current,
		Previous:        prevPoint,
		Person:          updated,
		PreviousPerson:  person,
		Economy:         economy,
		PreviousEconomy: ctx.Economy,
		Tax:             tax,
		Contributions:   contributions,
		DebtPayments:    debt.Payments,
		InvestmentValue: pool,
	})
	next.Summaries = append(next.Summaries, yearly)

	s.Logger.Debugf("year %d (age %d, %dy%dm elapsed): salary=%s after-tax=%s cash-flow=%s pool=%s net-worth=%s",
		next.Year, age, elapsed.Years, elapsed.Months, salary.StringFixed(2), tax.AfterTaxIncome.StringFixed(2),
		cashFlow.StringFixed(2), pool.StringFixed(2), netWorth.StringFixed(2))

	return next, TickResult{
		Delta:  delta,
		Person: updated,
		Aggregates: domain.FinancialAggregates{
			TotalSavings:     cash,
			TotalInvestments: pool,
			NetWorth:         netWorth,
			AnnualCashFlow:   cashFlow,
		},
		Point:         current,
		Elapsed:       elapsed,
		Tax:           tax,
		Contributions: contributions,
		Debt:          debt,
		Events:        events,
		Summary:       yearly,
		Completed:     completed,
	}
}
