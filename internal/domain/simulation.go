package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EngineState is the simulation lifecycle tag returned by Start, Pause and Reset.
type EngineState string

const (
	StateSetup     EngineState = "setup"
	StateRunning   EngineState = "running"
	StatePaused    EngineState = "paused"
	StateCompleted EngineState = "completed"
)

// EventKind classifies host notifications.
type EventKind string

const (
	EventMilestone     EventKind = "milestone"
	EventRetirement    EventKind = "retirement"
	EventSalaryRequest EventKind = "salary_change_requested"
	EventSalaryChanged EventKind = "salary_changed"
)

// Event is a notification appended to the host's event feed.
type Event struct {
	ID          string    `json:"id" yaml:"id"`
	Kind        EventKind `json:"kind" yaml:"kind"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Age         int       `json:"age" yaml:"age"`
	Year        int       `json:"year" yaml:"year"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
}

// SalaryChangeRequest asks the host for a new salary (for example after a job change).
// The host answers through Engine.ResolveSalaryChange.
type SalaryChangeRequest struct {
	ID            string          `json:"id" yaml:"id"`
	Reason        string          `json:"reason" yaml:"reason"`
	CurrentSalary decimal.Decimal `json:"current_salary" yaml:"current_salary"`
	Age           int             `json:"age" yaml:"age"`
}

// SimulationContext is every piece of cross-tick state the engine owns.
// Each tick takes one context and returns the next; hosts may persist and restore it.
type SimulationContext struct {
	State     EngineState `json:"state" yaml:"state"`
	Started   bool        `json:"started" yaml:"started"`
	StartDate time.Time   `json:"start_date" yaml:"start_date"`
	Year      int         `json:"year" yaml:"year"` // ticks executed

	SeedAge         int             `json:"seed_age" yaml:"seed_age"`
	BaselineSalary  decimal.Decimal `json:"baseline_salary" yaml:"baseline_salary"`
	InvestmentValue decimal.Decimal `json:"investment_value" yaml:"investment_value"` // pooled

	// balances captured at first start; Reset hands them back to the host
	SeedCash     CashAccounts `json:"seed_cash" yaml:"seed_cash"`
	SeedHoldings Holdings     `json:"seed_holdings" yaml:"seed_holdings"`
	SeedDebt     DebtAccount  `json:"seed_debt" yaml:"seed_debt"`

	Economy         EconomicState         `json:"economy" yaml:"economy"`
	FiredMilestones []int                 `json:"fired_milestones" yaml:"fired_milestones"`
	History         []HistoricalDataPoint `json:"history" yaml:"history"`
	Summaries       []YearlySummary       `json:"summaries" yaml:"summaries"`
}

// Clone returns a copy that shares no slices with c.
func (c SimulationContext) Clone() SimulationContext {
	out := c
	out.FiredMilestones = append([]int(nil), c.FiredMilestones...)
	out.History = append([]HistoricalDataPoint(nil), c.History...)
	out.Summaries = append([]YearlySummary(nil), c.Summaries...)
	return out
}

// MilestoneFired reports whether the milestone at age has already been emitted.
func (c SimulationContext) MilestoneFired(age int) bool {
	for _, a := range c.FiredMilestones {
		if a == age {
			return true
		}
	}
	return false
}

// LastPoint returns the newest history point, if any.
func (c SimulationContext) LastPoint() (HistoricalDataPoint, bool) {
	if len(c.History) == 0 {
		return HistoricalDataPoint{}, false
	}
	return c.History[len(c.History)-1], true
}

// SimulationReport bundles everything the output formatters render.
type SimulationReport struct {
	Name       string                `json:"name" yaml:"name"`
	State      EngineState           `json:"state" yaml:"state"`
	Profile    PersonalFinancialData `json:"profile" yaml:"profile"`
	Aggregates FinancialAggregates   `json:"aggregates" yaml:"aggregates"`
	Economy    EconomicState         `json:"economy" yaml:"economy"`
	History    []HistoricalDataPoint `json:"history" yaml:"history"`
	Summaries  []YearlySummary       `json:"summaries" yaml:"summaries"`
	Events     []Event               `json:"events" yaml:"events"`
}
