package calculation

import (
	"strings"

	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal Tax Brackets: single-filer 2024 brackets for every simulated year
//    - No standard deduction, no inflation indexing
//
// 2. State Tax: one flat rate per state applied to the same taxable income
//    - States without an income tax are 0%, unknown states use DefaultStateRate
//
// 3. FICA: computed on gross salary (401k deferrals do not reduce it)
//
// 4. Misc deductions: flat 1% of gross salary (SDI, union dues and similar)

var (
	decimalZero    = decimal.Zero
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// TaxBracket represents a federal tax bracket
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// FederalTaxCalculator handles federal income tax calculations
type FederalTaxCalculator struct {
	Brackets []TaxBracket
}

// NewFederalTaxCalculator creates a federal calculator with the single-filer bracket table
func NewFederalTaxCalculator() *FederalTaxCalculator {
	return &FederalTaxCalculator{
		Brackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(11600), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(11600), decimal.NewFromInt(47150), decimal.NewFromFloat(0.12)},
			{decimal.NewFromInt(47150), decimal.NewFromInt(100525), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(100525), decimal.NewFromInt(191950), decimal.NewFromFloat(0.24)},
			{decimal.NewFromInt(191950), decimal.NewFromInt(243725), decimal.NewFromFloat(0.32)},
			{decimal.NewFromInt(243725), decimal.NewFromInt(609350), decimal.NewFromFloat(0.35)},
			{decimal.NewFromInt(609350), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)},
		},
	}
}

// CalculateFederalTax walks the brackets and returns the tax, the per-bracket
// breakdown and the marginal rate of the last bracket touched.
func (ftc *FederalTaxCalculator) CalculateFederalTax(taxableIncome decimal.Decimal) (decimal.Decimal, []domain.BracketTax, decimal.Decimal) {
	if taxableIncome.LessThanOrEqual(decimalZero) {
		return decimalZero, nil, decimalZero
	}

	var totalTax decimal.Decimal
	var breakdown []domain.BracketTax
	marginal := decimalZero
	for _, bracket := range ftc.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		incomeInBracket := decimal.Min(taxableIncome, bracket.Max).Sub(bracket.Min)
		if incomeInBracket.LessThanOrEqual(decimalZero) {
			continue
		}
		tax := incomeInBracket.Mul(bracket.Rate)
		totalTax = totalTax.Add(tax)
		marginal = bracket.Rate
		breakdown = append(breakdown, domain.BracketTax{
			Min:    bracket.Min,
			Max:    bracket.Max,
			Rate:   bracket.Rate,
			Income: incomeInBracket,
			Tax:    tax,
		})
	}

	return totalTax, breakdown, marginal
}

// DefaultStateRate applies to states missing from the rate table.
var DefaultStateRate = decimal.NewFromFloat(0.05)

// StateTaxCalculator applies a flat per-state rate
type StateTaxCalculator struct {
	Rates       map[string]decimal.Decimal
	DefaultRate decimal.Decimal
}

// NewStateTaxCalculator creates a calculator with the simplified state rate table
func NewStateTaxCalculator() *StateTaxCalculator {
	return &StateTaxCalculator{
		Rates: map[string]decimal.Decimal{
			"alaska":         decimalZero,
			"florida":        decimalZero,
			"nevada":         decimalZero,
			"new hampshire":  decimalZero,
			"south dakota":   decimalZero,
			"tennessee":      decimalZero,
			"texas":          decimalZero,
			"washington":     decimalZero,
			"wyoming":        decimalZero,
			"arizona":        decimal.NewFromFloat(0.025),
			"california":     decimal.NewFromFloat(0.093),
			"colorado":       decimal.NewFromFloat(0.044),
			"georgia":        decimal.NewFromFloat(0.0549),
			"illinois":       decimal.NewFromFloat(0.0495),
			"massachusetts":  decimal.NewFromFloat(0.05),
			"michigan":       decimal.NewFromFloat(0.0425),
			"new jersey":     decimal.NewFromFloat(0.0637),
			"new york":       decimal.NewFromFloat(0.0685),
			"north carolina": decimal.NewFromFloat(0.045),
			"ohio":           decimal.NewFromFloat(0.035),
			"oregon":         decimal.NewFromFloat(0.0875),
			"pennsylvania":   decimal.NewFromFloat(0.0307),
			"utah":           decimal.NewFromFloat(0.0465),
			"virginia":       decimal.NewFromFloat(0.0575),
		},
		DefaultRate: DefaultStateRate,
	}
}

var stateCodes = map[string]string{
	"ak": "alaska", "az": "arizona", "ca": "california", "co": "colorado",
	"fl": "florida", "ga": "georgia", "il": "illinois", "ma": "massachusetts",
	"mi": "michigan", "nc": "north carolina", "nh": "new hampshire", "nj": "new jersey",
	"nv": "nevada", "ny": "new york", "oh": "ohio", "or": "oregon",
	"pa": "pennsylvania", "sd": "south dakota", "tn": "tennessee", "tx": "texas",
	"ut": "utah", "va": "virginia", "wa": "washington", "wy": "wyoming",
}

// Rate returns the flat rate for a state name or two-letter code
func (stc *StateTaxCalculator) Rate(state string) decimal.Decimal {
	key := strings.ToLower(strings.TrimSpace(state))
	if name, ok := stateCodes[key]; ok {
		key = name
	}
	if rate, ok := stc.Rates[key]; ok {
		return rate
	}
	return stc.DefaultRate
}

// CalculateTax applies the state's rate to taxable income
func (stc *StateTaxCalculator) CalculateTax(taxableIncome decimal.Decimal, state string) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimalZero) {
		return decimalZero
	}
	return taxableIncome.Mul(stc.Rate(state))
}

// FICACalculator handles FICA tax calculations
type FICACalculator struct {
	SSWageBase          decimal.Decimal
	SSRate              decimal.Decimal
	MedicareRate        decimal.Decimal
	AdditionalRate      decimal.Decimal
	HighIncomeThreshold decimal.Decimal
}

// NewFICACalculator creates a FICA calculator with the single-filer constants
func NewFICACalculator() *FICACalculator {
	return &FICACalculator{
		SSWageBase:          decimal.NewFromInt(168600),
		SSRate:              decimal.NewFromFloat(0.062),
		MedicareRate:        decimal.NewFromFloat(0.0145),
		AdditionalRate:      decimal.NewFromFloat(0.009),
		HighIncomeThreshold: decimal.NewFromInt(200000),
	}
}

// CalculateSocialSecurity returns the Social Security tax (capped at the wage base)
func (fc *FICACalculator) CalculateSocialSecurity(wages decimal.Decimal) decimal.Decimal {
	return decimal.Min(wages, fc.SSWageBase).Mul(fc.SSRate)
}

// CalculateMedicare returns Medicare tax including the high-earner surtax
func (fc *FICACalculator) CalculateMedicare(wages decimal.Decimal) decimal.Decimal {
	medicare := wages.Mul(fc.MedicareRate)
	excess := decimal.Max(decimalZero, wages.Sub(fc.HighIncomeThreshold))
	return medicare.Add(excess.Mul(fc.AdditionalRate))
}

// TaxInput is everything the tax calculator needs for one year
type TaxInput struct {
	Salary          decimal.Decimal
	State           string
	Traditional401k decimal.Decimal
	Roth401k        decimal.Decimal
	TraditionalIRA  decimal.Decimal
	RothIRA         decimal.Decimal
	Year            int
}

// TaxCalculator combines the federal, state, FICA and misc components
type TaxCalculator struct {
	Federal  *FederalTaxCalculator
	State    *StateTaxCalculator
	FICA     *FICACalculator
	MiscRate decimal.Decimal
}

// NewTaxCalculator creates a tax calculator with the default tables
func NewTaxCalculator() *TaxCalculator {
	return &TaxCalculator{
		Federal:  NewFederalTaxCalculator(),
		State:    NewStateTaxCalculator(),
		FICA:     NewFICACalculator(),
		MiscRate: decimal.NewFromFloat(0.01),
	}
}

// Calculate returns the detailed tax breakdown for one year of salary.
// It is pure: no state is read or written besides the calculator's tables.
func (tc *TaxCalculator) Calculate(in TaxInput) domain.TaxCalculationResult {
	result := domain.TaxCalculationResult{
		Year:  in.Year,
		State: in.State,
	}
	if in.Salary.LessThanOrEqual(decimalZero) {
		return result
	}

	limit := ContributionLimit(in.Year)
	trad401k, roth401k := CapContributions(in.Traditional401k, in.Roth401k, limit)
	total401k := trad401k.Add(roth401k)

	taxable := decimal.Max(decimalZero, in.Salary.Sub(trad401k).Sub(in.TraditionalIRA))

	federal, brackets, marginal := tc.Federal.CalculateFederalTax(taxable)
	stateTax := tc.State.CalculateTax(taxable, in.State)
	socialSecurity := tc.FICA.CalculateSocialSecurity(in.Salary)
	medicare := tc.FICA.CalculateMedicare(in.Salary)
	misc := in.Salary.Mul(tc.MiscRate)

	totalTax := federal.Add(stateTax).Add(socialSecurity).Add(medicare).Add(misc)

	result.Salary = in.Salary
	result.ContributionLimit = limit
	result.Traditional401k = trad401k
	result.Roth401k = roth401k
	result.Total401k = total401k
	result.TraditionalIRA = in.TraditionalIRA
	result.RothIRA = in.RothIRA
	result.TaxableIncome = taxable
	result.FederalTax = federal
	result.Brackets = brackets
	result.MarginalRate = marginal
	result.StateRate = tc.State.Rate(in.State)
	result.StateTax = stateTax
	result.SocialSecurity = socialSecurity
	result.Medicare = medicare
	result.MiscDeductions = misc
	result.TotalTax = totalTax
	result.AfterTaxIncome = in.Salary.Sub(totalTax).Sub(total401k)
	result.EffectiveRate = totalTax.Add(total401k).Div(in.Salary).Mul(decimalHundred)
	return result
}
