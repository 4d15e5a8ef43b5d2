package calculation

import "github.com/shopspring/decimal"

// Contribution limit model: linear increase from the base year.
const ContributionLimitBaseYear = 2025

var (
	ContributionLimitBase       = decimal.NewFromInt(23500)
	ContributionLimitYearlyStep = decimal.NewFromInt(500)
)

// ContributionLimit returns the combined employee 401k limit for year.
func ContributionLimit(year int) decimal.Decimal {
	limit := ContributionLimitBase.Add(ContributionLimitYearlyStep.Mul(decimal.NewFromInt(int64(year - ContributionLimitBaseYear))))
	return decimal.Max(decimalZero, limit)
}

// CapContributions scales a traditional/Roth pair down to limit, preserving their ratio.
// The capped pair always sums to exactly limit when capping applies.
func CapContributions(traditional, roth, limit decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	total := traditional.Add(roth)
	if total.LessThanOrEqual(limit) || total.LessThanOrEqual(decimalZero) {
		return traditional, roth
	}
	cappedTraditional := traditional.Mul(limit).Div(total)
	cappedRoth := decimal.Max(decimalZero, limit.Sub(cappedTraditional))
	return cappedTraditional, cappedRoth
}
