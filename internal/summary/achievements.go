package summary

import (
	"fmt"

	"github.com/rpgo/career-simulator/internal/domain"
	pkgdecimal "github.com/rpgo/career-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DefaultNetWorthLadder is the list of net-worth amounts that each earn an achievement once.
var DefaultNetWorthLadder = []decimal.Decimal{
	decimal.NewFromInt(10_000),
	decimal.NewFromInt(25_000),
	decimal.NewFromInt(50_000),
	decimal.NewFromInt(100_000),
	decimal.NewFromInt(250_000),
	decimal.NewFromInt(500_000),
	decimal.NewFromInt(1_000_000),
	decimal.NewFromInt(2_000_000),
	decimal.NewFromInt(5_000_000),
}

// Emergency fund coverage thresholds, in months of expenses.
var (
	EmergencyFundMinimumMonths = decimal.NewFromInt(3)
	EmergencyFundTargetMonths  = decimal.NewFromInt(6)
)

// crossed is true when threshold was not reached before and is reached now.
func crossed(previous, current, threshold decimal.Decimal) bool {
	return previous.LessThan(threshold) && current.GreaterThanOrEqual(threshold)
}

type achievementRule func(f facts) []domain.Achievement

func (g *Generator) achievementRules() []achievementRule {
	return []achievementRule{
		g.netWorthMilestones,
		positiveGrowth,
		emergencyFundCoverage,
		rateOptimizer,
	}
}

func (g *Generator) netWorthMilestones(f facts) []domain.Achievement {
	var out []domain.Achievement
	for _, threshold := range g.NetWorthLadder {
		if !crossed(f.previousNetWorth, f.netWorth, threshold) {
			continue
		}
		amount := pkgdecimal.NewMoneyFromDecimal(threshold)
		out = append(out, domain.Achievement{
			ID:          "net_worth_" + threshold.String(),
			Title:       fmt.Sprintf("Net worth passed %s", amount.Compact()),
			Description: fmt.Sprintf("Your net worth reached %s this year.", amount.Format()),
		})
	}
	return out
}

func positiveGrowth(f facts) []domain.Achievement {
	if !f.change.IsPositive() {
		return nil
	}
	return []domain.Achievement{{
		ID:          "positive_growth",
		Title:       "Growing wealth",
		Description: fmt.Sprintf("Net worth grew by %s this year.", pkgdecimal.NewMoneyFromDecimal(f.change).Format()),
	}}
}

func emergencyFundCoverage(f facts) []domain.Achievement {
	var out []domain.Achievement
	if crossed(f.previousFundMonths, f.fundMonths, EmergencyFundMinimumMonths) {
		out = append(out, domain.Achievement{
			ID:          "emergency_fund_3_months",
			Title:       "Safety net",
			Description: "Cash now covers three months of expenses.",
		})
	}
	if crossed(f.previousFundMonths, f.fundMonths, EmergencyFundTargetMonths) {
		out = append(out, domain.Achievement{
			ID:          "emergency_fund_6_months",
			Title:       "Fully funded emergency fund",
			Description: "Cash now covers six months of expenses.",
		})
	}
	return out
}

func rateOptimizer(f facts) []domain.Achievement {
	now := f.cash.HighYield().GreaterThan(f.cash.LowYield())
	before := f.previousCash.HighYield().GreaterThan(f.previousCash.LowYield())
	if !now || before {
		return nil
	}
	return []domain.Achievement{{
		ID:          "rate_optimizer",
		Title:       "Rate optimizer",
		Description: "Most of your cash now earns a high-yield rate.",
	}}
}
