package decimal

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO code used for every report amount.
const DefaultCurrency = money.USD

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", value, err)
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// String returns the amount with two decimals and no currency symbol
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// minor converts the amount into go-money's integer minor units.
func (m Money) minor() *money.Money {
	cur := money.GetCurrency(DefaultCurrency)
	factor := decimal.NewFromInt(10).Pow(decimal.NewFromInt(int64(cur.Fraction)))
	return money.New(m.Decimal.Mul(factor).Round(0).IntPart(), DefaultCurrency)
}

// Format renders the amount with the currency symbol and grouping, e.g. "$1,234.56"
func (m Money) Format() string {
	return m.minor().Display()
}

// SignedFormat is Format with an explicit "+" on positive amounts.
func (m Money) SignedFormat() string {
	if m.Decimal.IsPositive() {
		return "+" + m.Format()
	}
	return m.Format()
}

// Compact renders large amounts in short form: $1.25M, $48.3K, $512.
func (m Money) Compact() string {
	abs := m.Decimal.Abs()
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		return fmt.Sprintf("%s$%sM", sign, abs.Div(decimal.NewFromInt(1_000_000)).StringFixed(2))
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return fmt.Sprintf("%s$%sK", sign, abs.Div(decimal.NewFromInt(1_000)).StringFixed(1))
	default:
		return fmt.Sprintf("%s$%s", sign, abs.StringFixed(0))
	}
}

// Percent renders a fraction (0.0725) as a percentage string ("7.25%").
func Percent(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
