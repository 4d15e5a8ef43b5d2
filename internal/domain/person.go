package domain

import (
	"github.com/shopspring/decimal"
)

// MaritalStatus is informational only; the tax tables are single-filer.
type MaritalStatus string

const (
	MaritalStatusSingle  MaritalStatus = "single"
	MaritalStatusMarried MaritalStatus = "married"
)

// PersonalFinancialData is the host-owned profile the engine advances each year.
// The engine never mutates it directly; it proposes a PersonDelta through the host.
type PersonalFinancialData struct {
	Name          string          `yaml:"name" json:"name"`
	Age           int             `yaml:"age" json:"age"`
	RetirementAge int             `yaml:"retirement_age" json:"retirement_age"`
	Salary        decimal.Decimal `yaml:"salary" json:"salary"`
	State         string          `yaml:"state" json:"state"`
	MaritalStatus MaritalStatus   `yaml:"marital_status" json:"marital_status"`

	Contributions   ContributionSettings `yaml:"contributions" json:"contributions"`
	MonthlyExpenses decimal.Decimal      `yaml:"monthly_expenses" json:"monthly_expenses"`

	Cash     CashAccounts `yaml:"cash" json:"cash"`
	Holdings Holdings     `yaml:"holdings" json:"holdings"`
	Debt     DebtAccount  `yaml:"debt" json:"debt"`
}

// ContributionSettings holds the per-account savings elections.
type ContributionSettings struct {
	Traditional401kPercent   decimal.Decimal `yaml:"traditional_401k_percent" json:"traditional_401k_percent"` // fraction of salary
	Roth401kPercent          decimal.Decimal `yaml:"roth_401k_percent" json:"roth_401k_percent"`               // fraction of salary
	EmployerMatchRate        decimal.Decimal `yaml:"employer_match_rate" json:"employer_match_rate"`           // match capped at rate x salary
	TraditionalIRA           decimal.Decimal `yaml:"traditional_ira" json:"traditional_ira"`                   // annual amount
	RothIRA                  decimal.Decimal `yaml:"roth_ira" json:"roth_ira"`                                 // annual amount
	MonthlyTaxableInvestment decimal.Decimal `yaml:"monthly_taxable_investment" json:"monthly_taxable_investment"`
}

// CashAccounts are the bank balances, split by yield class.
type CashAccounts struct {
	Checking         decimal.Decimal `yaml:"checking" json:"checking"`
	Savings          decimal.Decimal `yaml:"savings" json:"savings"`
	HighYieldSavings decimal.Decimal `yaml:"high_yield_savings" json:"high_yield_savings"`
	MoneyMarket      decimal.Decimal `yaml:"money_market" json:"money_market"`
}

// Total returns the sum of all cash balances.
func (c CashAccounts) Total() decimal.Decimal {
	return c.Checking.Add(c.Savings).Add(c.HighYieldSavings).Add(c.MoneyMarket)
}

// LowYield returns checking plus regular savings.
func (c CashAccounts) LowYield() decimal.Decimal {
	return c.Checking.Add(c.Savings)
}

// HighYield returns high-yield savings plus money market.
func (c CashAccounts) HighYield() decimal.Decimal {
	return c.HighYieldSavings.Add(c.MoneyMarket)
}

// Holdings are the investment balances tracked per account.
type Holdings struct {
	Taxable         decimal.Decimal `yaml:"taxable" json:"taxable"`
	Traditional401k decimal.Decimal `yaml:"traditional_401k" json:"traditional_401k"`
	Roth401k        decimal.Decimal `yaml:"roth_401k" json:"roth_401k"`
	TraditionalIRA  decimal.Decimal `yaml:"traditional_ira" json:"traditional_ira"`
	RothIRA         decimal.Decimal `yaml:"roth_ira" json:"roth_ira"`
}

// Total returns the sum of all holdings.
func (h Holdings) Total() decimal.Decimal {
	return h.Taxable.Add(h.Traditional401k).Add(h.Roth401k).Add(h.IRATotal())
}

// IRATotal returns the traditional plus Roth IRA holdings.
func (h Holdings) IRATotal() decimal.Decimal {
	return h.TraditionalIRA.Add(h.RothIRA)
}

// Add returns the element-wise sum of two holdings.
func (h Holdings) Add(o Holdings) Holdings {
	return Holdings{
		Taxable:         h.Taxable.Add(o.Taxable),
		Traditional401k: h.Traditional401k.Add(o.Traditional401k),
		Roth401k:        h.Roth401k.Add(o.Roth401k),
		TraditionalIRA:  h.TraditionalIRA.Add(o.TraditionalIRA),
		RothIRA:         h.RothIRA.Add(o.RothIRA),
	}
}

// DebtAccount is a single amortizing balance (student loan, car, etc).
type DebtAccount struct {
	Balance    decimal.Decimal `yaml:"balance" json:"balance"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"` // annual, as a fraction
	TermMonths int             `yaml:"term_months" json:"term_months"`
}

// FinancialAggregates are the host-side totals refreshed after every tick.
type FinancialAggregates struct {
	TotalSavings     decimal.Decimal `json:"total_savings" yaml:"total_savings"`
	TotalInvestments decimal.Decimal `json:"total_investments" yaml:"total_investments"`
	NetWorth         decimal.Decimal `json:"net_worth" yaml:"net_worth"`
	AnnualCashFlow   decimal.Decimal `json:"annual_cash_flow" yaml:"annual_cash_flow"`
}

// PersonDelta is the change the engine proposes to the host after a tick.
// Pointer fields replace the current value when set; the remaining fields are increments.
// Whole-account replacements are applied before the other fields.
type PersonDelta struct {
	Age            *int
	Salary         *decimal.Decimal
	DebtBalance    *decimal.Decimal
	DebtTermMonths *int

	ReplaceCash     *CashAccounts
	ReplaceHoldings *Holdings
	ReplaceDebt     *DebtAccount

	SavingsDeposit decimal.Decimal
	Holdings       Holdings
}

// Apply returns a copy of p with the delta applied.
func (p PersonalFinancialData) Apply(d PersonDelta) PersonalFinancialData {
	if d.ReplaceCash != nil {
		p.Cash = *d.ReplaceCash
	}
	if d.ReplaceHoldings != nil {
		p.Holdings = *d.ReplaceHoldings
	}
	if d.ReplaceDebt != nil {
		p.Debt = *d.ReplaceDebt
	}
	if d.Age != nil {
		p.Age = *d.Age
	}
	if d.Salary != nil {
		p.Salary = *d.Salary
	}
	if d.DebtBalance != nil {
		p.Debt.Balance = *d.DebtBalance
	}
	if d.DebtTermMonths != nil {
		p.Debt.TermMonths = *d.DebtTermMonths
	}
	p.Cash.Savings = p.Cash.Savings.Add(d.SavingsDeposit)
	p.Holdings = p.Holdings.Add(d.Holdings)
	return p
}
