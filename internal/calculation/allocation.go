package calculation

import (
	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// AllocationInput is the pooled value plus the year's contribution mix.
type AllocationInput struct {
	TotalInvestmentValue   decimal.Decimal
	StartingTraditionalIRA decimal.Decimal
	StartingRothIRA        decimal.Decimal
	Contributions          domain.ContributionBreakdown
}

// AllocateAccounts splits the pooled investment value into five virtual sub-accounts
// in proportion to this year's contributions. Employer match counts toward the
// traditional 401k bucket. IRA buckets add back their independently tracked holdings.
//
// This is a heuristic over one pooled balance, not a per-account ledger.
func AllocateAccounts(in AllocationInput) domain.SubAccountBalances {
	c := in.Contributions
	total := c.Total()
	if total.LessThanOrEqual(decimalZero) {
		return domain.SubAccountBalances{
			Taxable:         decimalZero,
			Traditional401k: decimalZero,
			Roth401k:        decimalZero,
			TraditionalIRA:  decimalZero,
			RothIRA:         decimalZero,
		}
	}

	startingIRA := in.StartingTraditionalIRA.Add(in.StartingRothIRA)
	nonIRA := decimal.Max(decimalZero, in.TotalInvestmentValue.Sub(startingIRA))

	share := func(stream decimal.Decimal) decimal.Decimal {
		if nonIRA.IsZero() {
			return decimalZero
		}
		return nonIRA.Mul(stream).Div(total)
	}

	return domain.SubAccountBalances{
		Taxable:         share(c.Taxable),
		Traditional401k: share(c.Traditional401k.Add(c.EmployerMatch)),
		Roth401k:        share(c.Roth401k),
		TraditionalIRA:  share(c.TraditionalIRA).Add(in.StartingTraditionalIRA),
		RothIRA:         share(c.RothIRA).Add(in.StartingRothIRA),
	}
}
