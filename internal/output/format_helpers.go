package output

import (
	"strconv"

	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/rpgo/career-simulator/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD with grouping, e.g. "$1,234.57".
func FormatCurrency(amount stddec.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).Format()
}

// FormatSignedCurrency is FormatCurrency with a leading "+" on gains.
func FormatSignedCurrency(amount stddec.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).SignedFormat()
}

// FormatCompact formats large amounts in short form ("$1.25M").
func FormatCompact(amount stddec.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).Compact()
}

// FormatPercentage formats an amount already expressed in percent with 2 decimals.
func FormatPercentage(amount stddec.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fraction (0.031) as a percentage ("3.10%").
func FormatRate(fraction stddec.Decimal) string { return decimal.Percent(fraction) }

func intToString(i int) string { return strconv.Itoa(i) }

// finalSummary returns the newest yearly summary, if any.
func finalSummary(r *domain.SimulationReport) (domain.YearlySummary, bool) {
	if len(r.Summaries) == 0 {
		return domain.YearlySummary{}, false
	}
	return r.Summaries[len(r.Summaries)-1], true
}

// allAchievements flattens the achievements of every year in order.
func allAchievements(r *domain.SimulationReport) []yearAchievement {
	var out []yearAchievement
	for _, s := range r.Summaries {
		for _, a := range s.Achievements {
			out = append(out, yearAchievement{Year: s.Year, Age: s.Age, Achievement: a})
		}
	}
	return out
}

type yearAchievement struct {
	Year int
	Age  int
	domain.Achievement
}
