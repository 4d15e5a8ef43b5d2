package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPersonApply(t *testing.T) {
	p := PersonalFinancialData{
		Age:      30,
		Salary:   decimal.NewFromInt(100000),
		Cash:     CashAccounts{Savings: decimal.NewFromInt(1000)},
		Holdings: Holdings{RothIRA: decimal.NewFromInt(500)},
		Debt:     DebtAccount{Balance: decimal.NewFromInt(9000), TermMonths: 24},
	}
	age := 31
	balance := decimal.NewFromInt(4000)
	updated := p.Apply(PersonDelta{
		Age:            &age,
		DebtBalance:    &balance,
		SavingsDeposit: decimal.NewFromInt(-250),
		Holdings:       Holdings{RothIRA: decimal.NewFromInt(7000)},
	})

	assert.Equal(t, 31, updated.Age)
	assert.True(t, updated.Salary.Equal(p.Salary), "unset pointer fields are kept")
	assert.Equal(t, 24, updated.Debt.TermMonths)
	assert.True(t, updated.Debt.Balance.Equal(balance))
	assert.True(t, updated.Cash.Savings.Equal(decimal.NewFromInt(750)))
	assert.True(t, updated.Holdings.RothIRA.Equal(decimal.NewFromInt(7500)))

	// the receiver is a copy
	assert.Equal(t, 30, p.Age)
	assert.True(t, p.Cash.Savings.Equal(decimal.NewFromInt(1000)))
}

func TestPersonApplyReplacements(t *testing.T) {
	p := PersonalFinancialData{
		Cash:     CashAccounts{Checking: decimal.NewFromInt(10), Savings: decimal.NewFromInt(90000)},
		Holdings: Holdings{Taxable: decimal.NewFromInt(80000)},
		Debt:     DebtAccount{Balance: decimal.Zero, TermMonths: 0},
	}
	cash := CashAccounts{Checking: decimal.NewFromInt(5000), Savings: decimal.NewFromInt(10000)}
	holdings := Holdings{Taxable: decimal.NewFromInt(20000)}
	debt := DebtAccount{Balance: decimal.NewFromInt(10000), Rate: decimal.NewFromFloat(0.05), TermMonths: 60}

	updated := p.Apply(PersonDelta{
		ReplaceCash:     &cash,
		ReplaceHoldings: &holdings,
		ReplaceDebt:     &debt,
		SavingsDeposit:  decimal.NewFromInt(100),
	})

	assert.True(t, updated.Cash.Checking.Equal(cash.Checking))
	assert.True(t, updated.Cash.Savings.Equal(decimal.NewFromInt(10100)), "increments apply after replacement")
	assert.True(t, updated.Holdings.Total().Equal(holdings.Total()))
	assert.True(t, updated.Holdings.Taxable.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, debt, updated.Debt)
}

func TestTotals(t *testing.T) {
	cash := CashAccounts{
		Checking:         decimal.NewFromInt(1),
		Savings:          decimal.NewFromInt(2),
		HighYieldSavings: decimal.NewFromInt(3),
		MoneyMarket:      decimal.NewFromInt(4),
	}
	assert.True(t, cash.Total().Equal(decimal.NewFromInt(10)))
	assert.True(t, cash.LowYield().Equal(decimal.NewFromInt(3)))
	assert.True(t, cash.HighYield().Equal(decimal.NewFromInt(7)))

	h := Holdings{
		Taxable:         decimal.NewFromInt(10),
		Traditional401k: decimal.NewFromInt(20),
		Roth401k:        decimal.NewFromInt(30),
		TraditionalIRA:  decimal.NewFromInt(40),
		RothIRA:         decimal.NewFromInt(50),
	}
	assert.True(t, h.Total().Equal(decimal.NewFromInt(150)))
	assert.True(t, h.IRATotal().Equal(decimal.NewFromInt(90)))

	c := ContributionBreakdown{
		Traditional401k: decimal.NewFromInt(100),
		Roth401k:        decimal.NewFromInt(50),
		EmployerMatch:   decimal.NewFromInt(25),
		TraditionalIRA:  decimal.NewFromInt(10),
		RothIRA:         decimal.NewFromInt(20),
		Taxable:         decimal.NewFromInt(5),
	}
	assert.True(t, c.Employee401k().Equal(decimal.NewFromInt(150)))
	assert.True(t, c.FromTakeHome().Equal(decimal.NewFromInt(35)))
	assert.True(t, c.Total().Equal(decimal.NewFromInt(210)))

	assert.True(t, NetWorthOf(decimal.NewFromInt(100), decimal.NewFromInt(50), decimal.NewFromInt(30)).Equal(decimal.NewFromInt(120)))
}

func TestContextClone(t *testing.T) {
	ctx := SimulationContext{
		FiredMilestones: []int{50},
		History:         []HistoricalDataPoint{{Year: 0}},
		Summaries:       []YearlySummary{{Year: 1}},
	}
	clone := ctx.Clone()
	clone.FiredMilestones[0] = 99
	clone.History[0].Year = 5
	clone.Summaries = append(clone.Summaries, YearlySummary{Year: 2})

	assert.Equal(t, 50, ctx.FiredMilestones[0])
	assert.Equal(t, 0, ctx.History[0].Year)
	assert.Len(t, ctx.Summaries, 1)

	assert.True(t, ctx.MilestoneFired(50))
	assert.False(t, ctx.MilestoneFired(55))

	last, ok := ctx.LastPoint()
	assert.True(t, ok)
	assert.Equal(t, 0, last.Year)
	_, ok = SimulationContext{}.LastPoint()
	assert.False(t, ok)
}
