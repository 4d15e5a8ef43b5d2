package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile wraps every profile validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

// InputParser handles parsing of profile configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML (or JSON) file and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a profile document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&config)
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// SaveToFile writes config as YAML
func (ip *InputParser) SaveToFile(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

func (ip *InputParser) applyDefaults(config *domain.Configuration) {
	if config.Profile.MaritalStatus == "" {
		config.Profile.MaritalStatus = domain.MaritalStatusSingle
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidProfile, fmt.Sprintf(format, args...))
}

// ValidateConfiguration validates the loaded configuration. The engine trusts its
// inputs, so everything out of range is rejected here.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	p := &config.Profile

	if p.Age <= 0 || p.Age > 120 {
		return invalid("age must be between 1 and 120")
	}
	if p.RetirementAge <= p.Age {
		return invalid("retirement age (%d) must be greater than age (%d)", p.RetirementAge, p.Age)
	}
	if p.Salary.LessThan(decimal.Zero) {
		return invalid("salary cannot be negative")
	}
	if p.State == "" {
		return invalid("state is required")
	}
	if p.MaritalStatus != domain.MaritalStatusSingle && p.MaritalStatus != domain.MaritalStatusMarried {
		return invalid("marital status must be 'single' or 'married'")
	}
	if p.MonthlyExpenses.LessThan(decimal.Zero) {
		return invalid("monthly expenses cannot be negative")
	}

	if err := ip.validateContributions(&p.Contributions); err != nil {
		return fmt.Errorf("contributions: %w", err)
	}

	for name, v := range map[string]decimal.Decimal{
		"cash.checking":             p.Cash.Checking,
		"cash.savings":              p.Cash.Savings,
		"cash.high_yield_savings":   p.Cash.HighYieldSavings,
		"cash.money_market":         p.Cash.MoneyMarket,
		"holdings.taxable":          p.Holdings.Taxable,
		"holdings.traditional_401k": p.Holdings.Traditional401k,
		"holdings.roth_401k":        p.Holdings.Roth401k,
		"holdings.traditional_ira":  p.Holdings.TraditionalIRA,
		"holdings.roth_ira":         p.Holdings.RothIRA,
		"debt.balance":              p.Debt.Balance,
	} {
		if v.LessThan(decimal.Zero) {
			return invalid("%s cannot be negative", name)
		}
	}
	if p.Debt.Rate.LessThan(decimal.Zero) || p.Debt.Rate.GreaterThan(decimal.NewFromFloat(0.5)) {
		return invalid("debt rate must be between 0 and 50%%")
	}
	if p.Debt.TermMonths < 0 {
		return invalid("debt term cannot be negative")
	}

	if config.Simulation.MaxYears < 0 {
		return invalid("simulation.max_years cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateContributions(c *domain.ContributionSettings) error {
	one := decimal.NewFromInt(1)
	for name, pct := range map[string]decimal.Decimal{
		"traditional_401k_percent": c.Traditional401kPercent,
		"roth_401k_percent":        c.Roth401kPercent,
		"employer_match_rate":      c.EmployerMatchRate,
	} {
		if pct.LessThan(decimal.Zero) || pct.GreaterThan(one) {
			return invalid("%s must be between 0 and 1", name)
		}
	}
	if c.Traditional401kPercent.Add(c.Roth401kPercent).GreaterThan(one) {
		return invalid("combined 401k percentages cannot exceed 100%%")
	}
	if c.TraditionalIRA.LessThan(decimal.Zero) || c.RothIRA.LessThan(decimal.Zero) {
		return invalid("IRA contributions cannot be negative")
	}
	if c.MonthlyTaxableInvestment.LessThan(decimal.Zero) {
		return invalid("monthly taxable investment cannot be negative")
	}
	return nil
}

// CreateExampleConfiguration creates an example profile
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Profile: domain.PersonalFinancialData{
			Name:          "Alex Example",
			Age:           30,
			RetirementAge: 65,
			Salary:        decimal.NewFromInt(95000),
			State:         "Texas",
			MaritalStatus: domain.MaritalStatusSingle,
			Contributions: domain.ContributionSettings{
				Traditional401kPercent:   decimal.NewFromFloat(0.06),
				Roth401kPercent:          decimal.NewFromFloat(0.04),
				EmployerMatchRate:        decimal.NewFromFloat(0.04),
				TraditionalIRA:           decimal.Zero,
				RothIRA:                  decimal.NewFromInt(7000),
				MonthlyTaxableInvestment: decimal.NewFromInt(300),
			},
			MonthlyExpenses: decimal.NewFromInt(3500),
			Cash: domain.CashAccounts{
				Checking:         decimal.NewFromInt(4000),
				Savings:          decimal.NewFromInt(12000),
				HighYieldSavings: decimal.NewFromInt(8000),
				MoneyMarket:      decimal.Zero,
			},
			Holdings: domain.Holdings{
				Taxable:         decimal.NewFromInt(15000),
				Traditional401k: decimal.NewFromInt(42000),
				Roth401k:        decimal.NewFromInt(9000),
				TraditionalIRA:  decimal.Zero,
				RothIRA:         decimal.NewFromInt(11000),
			},
			Debt: domain.DebtAccount{
				Balance:    decimal.NewFromInt(18000),
				Rate:       decimal.NewFromFloat(0.055),
				TermMonths: 84,
			},
		},
		Simulation: domain.SimulationOptions{
			Seed:     42,
			MaxYears: 0,
		},
	}
}
