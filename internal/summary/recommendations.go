package summary

import (
	"fmt"

	"github.com/rpgo/career-simulator/internal/domain"
	pkgdecimal "github.com/rpgo/career-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	// IdleCashThreshold is the low-yield balance above which moving cash is suggested.
	IdleCashThreshold = decimal.NewFromInt(10_000)
	// TargetInvestmentRatio is the minimum share of assets expected to be invested.
	TargetInvestmentRatio = decimal.NewFromFloat(0.60)
)

type recommendationRule func(f facts) (domain.Recommendation, bool)

var recommendationRules = []recommendationRule{
	moveIdleCash,
	buildEmergencyFund,
	investMore,
	stayTheCourse,
}

func moveIdleCash(f facts) (domain.Recommendation, bool) {
	idle := f.cash.LowYield()
	if idle.LessThanOrEqual(IdleCashThreshold) {
		return domain.Recommendation{}, false
	}
	return domain.Recommendation{
		ID:    "move_idle_cash",
		Title: "Move idle cash to high-yield savings",
		Description: fmt.Sprintf("%s sits in checking and savings earning almost nothing. A high-yield account would earn about %s more per year.",
			pkgdecimal.NewMoneyFromDecimal(idle).Format(),
			pkgdecimal.NewMoneyFromDecimal(idle.Mul(f.rates.HighYieldSavings.Sub(f.rates.Savings)).Round(2)).Format()),
		Priority: domain.PriorityMedium,
	}, true
}

func buildEmergencyFund(f facts) (domain.Recommendation, bool) {
	if f.fundAdequate() {
		return domain.Recommendation{}, false
	}
	return domain.Recommendation{
		ID:    "build_emergency_fund",
		Title: "Build your emergency fund",
		Description: fmt.Sprintf("Cash covers %s months of expenses; aim for at least %s.",
			f.fundMonths.StringFixed(1), EmergencyFundMinimumMonths.String()),
		Priority: domain.PriorityHigh,
	}, true
}

func investMore(f facts) (domain.Recommendation, bool) {
	assets := f.cashTotal.Add(f.investments)
	if assets.LessThanOrEqual(decimal.Zero) || !f.fundAdequate() {
		return domain.Recommendation{}, false
	}
	ratio := f.investments.Div(assets)
	if ratio.GreaterThanOrEqual(TargetInvestmentRatio) {
		return domain.Recommendation{}, false
	}
	return domain.Recommendation{
		ID:    "invest_more",
		Title: "Put more of your savings to work",
		Description: fmt.Sprintf("Only %s of your assets are invested. With your emergency fund in place, consider investing toward %s.",
			pkgdecimal.Percent(ratio), pkgdecimal.Percent(TargetInvestmentRatio)),
		Priority: domain.PriorityMedium,
	}, true
}

func stayTheCourse(f facts) (domain.Recommendation, bool) {
	if !f.change.IsNegative() {
		return domain.Recommendation{}, false
	}
	return domain.Recommendation{
		ID:          "stay_the_course",
		Title:       "Stay the course",
		Description: "Net worth dipped this year. Down years are normal; keep contributing on schedule.",
		Priority:    domain.PriorityLow,
	}, true
}
