package domain

import "github.com/shopspring/decimal"

// ContributionBreakdown is one year's savings, per stream.
type ContributionBreakdown struct {
	Traditional401k decimal.Decimal `json:"traditional_401k" yaml:"traditional_401k"`
	Roth401k        decimal.Decimal `json:"roth_401k" yaml:"roth_401k"`
	EmployerMatch   decimal.Decimal `json:"employer_match" yaml:"employer_match"`
	TraditionalIRA  decimal.Decimal `json:"traditional_ira" yaml:"traditional_ira"`
	RothIRA         decimal.Decimal `json:"roth_ira" yaml:"roth_ira"`
	Taxable         decimal.Decimal `json:"taxable" yaml:"taxable"`
}

// Employee401k returns the employee's own 401k deferrals (no match).
func (c ContributionBreakdown) Employee401k() decimal.Decimal {
	return c.Traditional401k.Add(c.Roth401k)
}

// FromTakeHome returns the contributions funded out of after-tax pay.
func (c ContributionBreakdown) FromTakeHome() decimal.Decimal {
	return c.TraditionalIRA.Add(c.RothIRA).Add(c.Taxable)
}

// Total returns every stream including the employer match.
func (c ContributionBreakdown) Total() decimal.Decimal {
	return c.Employee401k().Add(c.EmployerMatch).Add(c.FromTakeHome())
}

// BracketTax is the tax owed inside one federal bracket.
type BracketTax struct {
	Min    decimal.Decimal `json:"min" yaml:"min"`
	Max    decimal.Decimal `json:"max" yaml:"max"`
	Rate   decimal.Decimal `json:"rate" yaml:"rate"`
	Income decimal.Decimal `json:"income" yaml:"income"`
	Tax    decimal.Decimal `json:"tax" yaml:"tax"`
}

// TaxCalculationResult is the detailed breakdown returned by the tax calculator.
type TaxCalculationResult struct {
	Year   int             `json:"year" yaml:"year"`
	Salary decimal.Decimal `json:"salary" yaml:"salary"`
	State  string          `json:"state" yaml:"state"`

	ContributionLimit decimal.Decimal `json:"contribution_limit" yaml:"contribution_limit"`
	Traditional401k   decimal.Decimal `json:"traditional_401k" yaml:"traditional_401k"` // after capping
	Roth401k          decimal.Decimal `json:"roth_401k" yaml:"roth_401k"`               // after capping
	Total401k         decimal.Decimal `json:"total_401k" yaml:"total_401k"`
	TraditionalIRA    decimal.Decimal `json:"traditional_ira" yaml:"traditional_ira"`
	RothIRA           decimal.Decimal `json:"roth_ira" yaml:"roth_ira"`

	TaxableIncome  decimal.Decimal `json:"taxable_income" yaml:"taxable_income"`
	FederalTax     decimal.Decimal `json:"federal_tax" yaml:"federal_tax"`
	Brackets       []BracketTax    `json:"brackets,omitempty" yaml:"brackets,omitempty"`
	MarginalRate   decimal.Decimal `json:"marginal_rate" yaml:"marginal_rate"`
	StateRate      decimal.Decimal `json:"state_rate" yaml:"state_rate"`
	StateTax       decimal.Decimal `json:"state_tax" yaml:"state_tax"`
	SocialSecurity decimal.Decimal `json:"social_security" yaml:"social_security"`
	Medicare       decimal.Decimal `json:"medicare" yaml:"medicare"`
	MiscDeductions decimal.Decimal `json:"misc_deductions" yaml:"misc_deductions"`

	TotalTax       decimal.Decimal `json:"total_tax" yaml:"total_tax"`
	AfterTaxIncome decimal.Decimal `json:"after_tax_income" yaml:"after_tax_income"`
	EffectiveRate  decimal.Decimal `json:"effective_rate" yaml:"effective_rate"` // percent
}

// FICA returns Social Security plus Medicare.
func (r TaxCalculationResult) FICA() decimal.Decimal {
	return r.SocialSecurity.Add(r.Medicare)
}
