package simulation

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/rpgo/career-simulator/internal/calculation"
	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func init() {
	SetNowFunc(func() time.Time { return testStart })
}

// midpointSource always draws 0.5: inflation 3% and tech 10% every year
type midpointSource struct{}

func (midpointSource) Float64() float64 { return 0.5 }

func testProfile(age, retirementAge int) domain.PersonalFinancialData {
	return domain.PersonalFinancialData{
		Name:          "Test Saver",
		Age:           age,
		RetirementAge: retirementAge,
		Salary:        d(100000),
		State:         "Texas",
		MaritalStatus: domain.MaritalStatusSingle,
		Contributions: domain.ContributionSettings{
			Traditional401kPercent:   d(0.06),
			Roth401kPercent:          d(0.04),
			EmployerMatchRate:        d(0.04),
			RothIRA:                  d(6000),
			MonthlyTaxableInvestment: d(500),
		},
		MonthlyExpenses: d(3000),
		Cash: domain.CashAccounts{
			Checking: d(5000),
			Savings:  d(10000),
		},
		Holdings: domain.Holdings{
			Taxable:         d(20000),
			Traditional401k: d(30000),
			RothIRA:         d(5000),
		},
		Debt: domain.DebtAccount{Balance: d(10000), Rate: d(0.05), TermMonths: 60},
	}
}

func newTestEngine(person domain.PersonalFinancialData, cfg Config) (*Engine, *MemoryHost) {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	host := NewMemoryHost(person)
	return NewEngine(host, cfg), host
}

func TestEngine_StartSeedsHistory(t *testing.T) {
	e, host := newTestEngine(testProfile(30, 65), Config{})

	assert.Equal(t, domain.StateSetup, e.State())
	assert.Equal(t, domain.StateRunning, e.Start())

	history := e.History()
	require.Len(t, history, 1)
	assert.Equal(t, 30, history[0].Age)
	assert.True(t, history[0].InvestmentTotal.Equal(d(55000)))
	assert.True(t, history[0].CashTotal.Equal(d(15000)))
	assert.True(t, history[0].NetWorth.Equal(d(60000)))
	assert.Equal(t, testStart, history[0].Timestamp)
	assert.True(t, host.Aggregates().NetWorth.Equal(d(60000)))

	// starting again while running changes nothing
	assert.Equal(t, domain.StateRunning, e.Start())
	assert.Len(t, e.History(), 1)
}

func TestEngine_NTicks(t *testing.T) {
	e, host := newTestEngine(testProfile(30, 65), Config{})
	e.Start()

	const ticks = 7
	for i := 0; i < ticks; i++ {
		require.Equal(t, domain.StateRunning, e.Step())
	}

	assert.Equal(t, 30+ticks, host.PersonalData().Age)
	history := e.History()
	require.Len(t, history, ticks+1)
	assert.Len(t, e.Summaries(), ticks)

	for i, p := range history {
		assert.Equal(t, 30+i, p.Age)
		assert.Equal(t, i, p.Year)
		assert.True(t, p.NetWorth.Equal(p.CashTotal.Add(p.InvestmentTotal).Sub(p.Debt)),
			"net worth identity broken at year %d", p.Year)
		if i > 0 && history[i-1].Debt.IsPositive() {
			assert.True(t, p.Debt.LessThan(history[i-1].Debt), "debt should amortize")
		}
	}

	last := history[len(history)-1]
	agg := host.Aggregates()
	assert.True(t, agg.NetWorth.Equal(last.NetWorth))
	assert.True(t, agg.TotalInvestments.Equal(last.InvestmentTotal))
	assert.True(t, agg.TotalSavings.Equal(last.CashTotal))
	assert.Equal(t, ticks, e.Economy().CycleYear)
}

func TestEngine_FirstTickWithFixedEconomy(t *testing.T) {
	e, host := newTestEngine(testProfile(30, 65), Config{Rand: midpointSource{}})
	e.Start()
	e.Step()

	person := host.PersonalData()
	assert.True(t, person.Salary.Equal(d(101500)), "salary %s", person.Salary)
	// 6% and 4% of 101500, match limited to 4% of salary
	assert.True(t, person.Holdings.Traditional401k.Equal(d(30000+6090+4060)))
	assert.True(t, person.Holdings.Roth401k.Equal(d(4060)))
	assert.True(t, person.Holdings.RothIRA.Equal(d(11000)))
	assert.True(t, person.Holdings.Taxable.Equal(d(26000)))

	// pool = 55000 * 1.10 + 10150 + 4060 + 6000 + 6000
	history := e.History()
	assert.True(t, history[1].InvestmentTotal.Equal(d(86710)), "pool %s", history[1].InvestmentTotal)
	assert.Less(t, person.Debt.Balance.InexactFloat64(), 10000.0)
	assert.Equal(t, 48, person.Debt.TermMonths)
}

func TestEngine_ResetRestoresBaseline(t *testing.T) {
	e, host := newTestEngine(testProfile(30, 65), Config{})
	e.Start()
	for i := 0; i < 4; i++ {
		e.Step()
	}
	require.False(t, host.PersonalData().Salary.Equal(d(100000)))

	assert.Equal(t, domain.StateSetup, e.Reset())
	assert.Empty(t, e.History())
	assert.Empty(t, e.Summaries())
	assert.Equal(t, 30, host.PersonalData().Age)
	assert.True(t, host.PersonalData().Salary.Equal(d(100000)))
	assert.True(t, host.Aggregates().NetWorth.IsZero())
	assert.True(t, host.Aggregates().TotalInvestments.IsZero())

	economy := e.Economy()
	initial := calculation.InitialEconomicState()
	assert.True(t, economy.CumulativeInflation.Equal(initial.CumulativeInflation))
	assert.True(t, economy.StockIndex.Equal(initial.StockIndex))
	assert.Equal(t, 0, economy.CycleYear)

	assert.Equal(t, domain.StateRunning, e.Start())
	assert.Len(t, e.History(), 1)
}

func TestEngine_ResetReplaysFromSeed(t *testing.T) {
	e, host := newTestEngine(testProfile(30, 65), Config{Rand: midpointSource{}})
	e.Start()
	seed := e.History()[0]
	for i := 0; i < 5; i++ {
		e.Step()
	}
	require.False(t, host.PersonalData().Cash.Total().Equal(seed.CashTotal))

	e.Reset()
	person := host.PersonalData()
	assert.True(t, person.Cash.Savings.Equal(d(10000)), "savings %s", person.Cash.Savings)
	assert.True(t, person.Holdings.Total().Equal(d(55000)), "holdings %s", person.Holdings.Total())
	assert.True(t, person.Debt.Balance.Equal(d(10000)))
	assert.Equal(t, 60, person.Debt.TermMonths)

	e.Start()
	again := e.History()
	require.Len(t, again, 1)
	assert.Equal(t, seed.Age, again[0].Age)
	assert.True(t, again[0].CashTotal.Equal(seed.CashTotal), "cash %s", again[0].CashTotal)
	assert.True(t, again[0].InvestmentTotal.Equal(seed.InvestmentTotal), "investments %s", again[0].InvestmentTotal)
	assert.True(t, again[0].Debt.Equal(seed.Debt))
	assert.True(t, again[0].NetWorth.Equal(seed.NetWorth), "net worth %s", again[0].NetWorth)
}

func TestEngine_StartAtRetirementAge(t *testing.T) {
	e, host := newTestEngine(testProfile(65, 65), Config{})

	assert.Equal(t, domain.StateCompleted, e.Start())
	select {
	case <-e.Completed():
	default:
		t.Fatal("completed channel should be closed")
	}
	assert.Len(t, e.History(), 1)
	assert.Empty(t, e.Summaries())
	assert.Equal(t, 65, host.PersonalData().Age)
	assert.Equal(t, domain.StateCompleted, e.Step())

	state, err := Run(context.Background(), e, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompleted, state)
}

func TestEngine_CompletesAtRetirement(t *testing.T) {
	e, host := newTestEngine(testProfile(30, 31), Config{})
	e.Start()

	assert.Equal(t, domain.StateCompleted, e.Step())
	select {
	case <-e.Completed():
	default:
		t.Fatal("completed channel should be closed")
	}

	// completed is terminal until reset
	assert.Equal(t, domain.StateCompleted, e.Step())
	assert.Equal(t, domain.StateCompleted, e.Start())
	assert.Equal(t, domain.StateCompleted, e.Pause())
	assert.Len(t, e.History(), 2)

	events := host.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, domain.EventRetirement, events[0].Kind)

	assert.Equal(t, domain.StateSetup, e.Reset())
	select {
	case <-e.Completed():
		t.Fatal("reset should re-arm the completed channel")
	default:
	}
}

func TestEngine_PauseAndResume(t *testing.T) {
	e, _ := newTestEngine(testProfile(30, 65), Config{})

	assert.Equal(t, domain.StateSetup, e.Pause(), "pausing before start is a no-op")
	e.Start()
	e.Step()
	assert.Equal(t, domain.StatePaused, e.Pause())
	assert.Equal(t, domain.StatePaused, e.Step())
	assert.Len(t, e.History(), 2)

	assert.Equal(t, domain.StateRunning, e.Start())
	assert.Len(t, e.History(), 2, "resume must not reseed history")
	e.Step()
	assert.Len(t, e.History(), 3)
}

func TestEngine_TimerRunsToCompletion(t *testing.T) {
	e, host := newTestEngine(testProfile(30, 33), Config{Interval: 2 * time.Millisecond})
	e.Start()

	select {
	case <-e.Completed():
	case <-time.After(5 * time.Second):
		t.Fatal("simulation did not complete")
	}

	assert.Equal(t, domain.StateCompleted, e.State())
	assert.Len(t, e.History(), 4)
	assert.Equal(t, 33, host.PersonalData().Age)
}

func TestEngine_PauseStopsTimer(t *testing.T) {
	e, _ := newTestEngine(testProfile(30, 100), Config{Interval: 2 * time.Millisecond})
	e.Start()

	require.Eventually(t, func() bool { return len(e.History()) >= 3 }, 5*time.Second, time.Millisecond)
	e.Pause()
	n := len(e.History())
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, e.History(), n)
}

func TestEngine_ResetStopsTimer(t *testing.T) {
	e, _ := newTestEngine(testProfile(30, 100), Config{Interval: 2 * time.Millisecond})
	e.Start()

	require.Eventually(t, func() bool { return len(e.History()) >= 2 }, 5*time.Second, time.Millisecond)
	e.Reset()
	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, e.History())
	assert.Equal(t, domain.StateSetup, e.State())
}

func TestEngine_SeededRunsAreReplayable(t *testing.T) {
	run := func() []domain.HistoricalDataPoint {
		e, _ := newTestEngine(testProfile(30, 45), Config{Rand: rand.New(rand.NewSource(2024))})
		_, err := Run(context.Background(), e, 0)
		require.NoError(t, err)
		return e.History()
	}

	first, second := run(), run()
	require.Len(t, first, 16)
	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].NetWorth.Equal(second[i].NetWorth), "year %d differs", i)
		assert.True(t, first[i].Inflation.Equal(second[i].Inflation))
	}
}

func TestEngine_SummaryListener(t *testing.T) {
	var got []domain.YearlySummary
	e, _ := newTestEngine(testProfile(40, 43), Config{
		OnSummary: func(s domain.YearlySummary) { got = append(got, s) },
	})

	state, err := Run(context.Background(), e, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompleted, state)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Year, got[1].Year, got[2].Year})
	assert.Equal(t, 43, got[2].Age)
}

func TestEngine_ListenersMayCallEngine(t *testing.T) {
	var e *Engine
	var lengths []int
	var requested []domain.EngineState
	e, _ = newTestEngine(testProfile(40, 43), Config{
		OnSummary: func(domain.YearlySummary) { lengths = append(lengths, len(e.History())) },
		OnSalaryRequest: func(domain.SalaryChangeRequest) {
			requested = append(requested, e.State())
		},
	})

	e.Start()
	e.RequestSalaryChange("promotion")
	done := make(chan domain.EngineState)
	go func() {
		state, _ := Run(context.Background(), e, 0)
		done <- state
	}()

	select {
	case state := <-done:
		assert.Equal(t, domain.StateCompleted, state)
	case <-time.After(5 * time.Second):
		t.Fatal("listener calling back into the engine deadlocked")
	}
	assert.Equal(t, []int{2, 3, 4}, lengths)
	assert.Equal(t, []domain.EngineState{domain.StateRunning}, requested)
}

func TestEngine_RestoreContext(t *testing.T) {
	a, hostA := newTestEngine(testProfile(30, 65), Config{})
	a.Start()
	for i := 0; i < 3; i++ {
		a.Step()
	}
	saved := a.Context()

	b, _ := newTestEngine(hostA.PersonalData(), Config{})
	assert.Equal(t, domain.StatePaused, b.Restore(saved))
	assert.Len(t, b.History(), 4)

	assert.Equal(t, domain.StateRunning, b.Start())
	b.Step()
	history := b.History()
	require.Len(t, history, 5)
	assert.Equal(t, 34, history[4].Age)

	// the saved copy is not affected by later ticks
	assert.Len(t, saved.History, 4)
}

func TestRun_Cancelled(t *testing.T) {
	e, _ := newTestEngine(testProfile(30, 65), Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state, err := Run(ctx, e, 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.StatePaused, state)
}

func TestRun_TimedMaxYears(t *testing.T) {
	e, host := newTestEngine(testProfile(30, 65), Config{Interval: time.Millisecond})

	state, err := Run(context.Background(), e, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePaused, state)
	assert.Len(t, e.History(), 4)
	assert.Equal(t, 33, host.PersonalData().Age)

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, e.History(), 4, "a paused engine does not tick")
}

func TestRun_MaxYears(t *testing.T) {
	e, _ := newTestEngine(testProfile(30, 65), Config{})

	state, err := Run(context.Background(), e, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePaused, state)
	assert.Len(t, e.History(), 6)
}
