package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoricalDataPoint is an immutable per-year snapshot. Year 0 is the seed point.
type HistoricalDataPoint struct {
	Year            int             `json:"year" yaml:"year"`
	Age             int             `json:"age" yaml:"age"`
	Salary          decimal.Decimal `json:"salary" yaml:"salary"`
	CashTotal       decimal.Decimal `json:"cash_total" yaml:"cash_total"`
	InvestmentTotal decimal.Decimal `json:"investment_total" yaml:"investment_total"`
	Debt            decimal.Decimal `json:"debt" yaml:"debt"`
	NetWorth        decimal.Decimal `json:"net_worth" yaml:"net_worth"`
	Inflation       decimal.Decimal `json:"inflation" yaml:"inflation"`
	StockIndex      decimal.Decimal `json:"stock_index" yaml:"stock_index"`
	Timestamp       time.Time       `json:"timestamp" yaml:"timestamp"`
}

// NetWorthOf applies the net worth identity used for every history point.
func NetWorthOf(cash, investments, debt decimal.Decimal) decimal.Decimal {
	return cash.Add(investments).Sub(debt)
}

// SubAccountBalances is the virtual split of the pooled investment value.
type SubAccountBalances struct {
	Taxable         decimal.Decimal `json:"taxable" yaml:"taxable"`
	Traditional401k decimal.Decimal `json:"traditional_401k" yaml:"traditional_401k"`
	Roth401k        decimal.Decimal `json:"roth_401k" yaml:"roth_401k"`
	TraditionalIRA  decimal.Decimal `json:"traditional_ira" yaml:"traditional_ira"`
	RothIRA         decimal.Decimal `json:"roth_ira" yaml:"roth_ira"`
}

// Total returns the sum of the five sub-accounts.
func (s SubAccountBalances) Total() decimal.Decimal {
	return s.Taxable.Add(s.Traditional401k).Add(s.Roth401k).Add(s.TraditionalIRA).Add(s.RothIRA)
}

// CashFlowWaterfall: take-home - expenses - debt service - investing = surplus.
type CashFlowWaterfall struct {
	TakeHomePay             decimal.Decimal `json:"take_home_pay" yaml:"take_home_pay"`
	Expenses                decimal.Decimal `json:"expenses" yaml:"expenses"`
	DebtPayments            decimal.Decimal `json:"debt_payments" yaml:"debt_payments"`
	InvestmentContributions decimal.Decimal `json:"investment_contributions" yaml:"investment_contributions"`
	Surplus                 decimal.Decimal `json:"surplus" yaml:"surplus"`
}

// BankInterest is the interest accrued on each cash account over one year.
type BankInterest struct {
	Checking         decimal.Decimal `json:"checking" yaml:"checking"`
	Savings          decimal.Decimal `json:"savings" yaml:"savings"`
	HighYieldSavings decimal.Decimal `json:"high_yield_savings" yaml:"high_yield_savings"`
	MoneyMarket      decimal.Decimal `json:"money_market" yaml:"money_market"`
	Total            decimal.Decimal `json:"total" yaml:"total"`
}

// Achievement is awarded once, on the year it was earned.
type Achievement struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Priority orders recommendations for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is re-evaluated every year.
type Recommendation struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Priority    Priority `json:"priority" yaml:"priority"`
}

// YearlySummary is the read-only year-end report comparing two consecutive history points.
type YearlySummary struct {
	Year int `json:"year" yaml:"year"`
	Age  int `json:"age" yaml:"age"`

	PreviousNetWorth      decimal.Decimal `json:"previous_net_worth" yaml:"previous_net_worth"`
	NetWorth              decimal.Decimal `json:"net_worth" yaml:"net_worth"`
	NetWorthChange        decimal.Decimal `json:"net_worth_change" yaml:"net_worth_change"`
	NetWorthChangePercent decimal.Decimal `json:"net_worth_change_percent" yaml:"net_worth_change_percent"`

	Salary              decimal.Decimal      `json:"salary" yaml:"salary"`
	CashFlow            CashFlowWaterfall    `json:"cash_flow" yaml:"cash_flow"`
	Taxes               TaxCalculationResult `json:"taxes" yaml:"taxes"`
	Economy             EconomicState        `json:"economy" yaml:"economy"`
	BankInterest        BankInterest         `json:"bank_interest" yaml:"bank_interest"`
	SubAccounts         SubAccountBalances   `json:"sub_accounts" yaml:"sub_accounts"`
	EmergencyFundMonths decimal.Decimal      `json:"emergency_fund_months" yaml:"emergency_fund_months"`

	Achievements    []Achievement    `json:"achievements" yaml:"achievements"`
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
}
