// Package simulation advances a personal financial profile one simulated year per tick.
//
// The Engine owns a SimulationContext and a timer. Every tick reads the host's profile,
// runs Stepper.Advance and writes the results back through the Host callbacks before
// the next tick is scheduled, so ticks never overlap and never read stale data.
package simulation

import (
	"sync"
	"time"

	"github.com/rpgo/career-simulator/internal/calculation"
	"github.com/rpgo/career-simulator/internal/domain"
)

// Host owns the profile and the aggregates. The engine only proposes changes.
//
// Callbacks run synchronously on the ticking goroutine while the engine lock is held;
// they must not call back into the Engine.
type Host interface {
	PersonalData() domain.PersonalFinancialData
	UpdatePersonData(delta domain.PersonDelta)
	UpdateFinancialAggregates(aggregates domain.FinancialAggregates)
	AppendEvent(event domain.Event)
}

// Config controls ticking and optional listeners.
type Config struct {
	// Interval between ticks. Zero or negative disables the timer; drive the engine with Step.
	Interval time.Duration
	// Rand is the source of economic randomness. Nil uses a time-seeded source.
	Rand calculation.RandomSource
	// OnSummary receives each completed year's summary. Listeners run after the engine
	// lock is released, so they may call back into the Engine.
	OnSummary func(domain.YearlySummary)
	// OnSalaryRequest receives salary change requests raised with RequestSalaryChange,
	// also outside the engine lock.
	OnSalaryRequest func(domain.SalaryChangeRequest)
}

// Engine is the simulation state machine: setup -> running <-> paused, running -> completed,
// and Reset returns any state to setup.
type Engine struct {
	mu      sync.Mutex
	host    Host
	cfg     Config
	stepper *Stepper
	logger  calculation.Logger

	ctx        domain.SimulationContext
	timer      *time.Timer
	generation uint64
	done       chan struct{}
	pending    map[string]domain.SalaryChangeRequest

	// timed engines pause themselves once ctx.Year reaches stopAt (0: never)
	stopAt int
	halted chan struct{}
}

// NewEngine creates an engine in the setup state.
func NewEngine(host Host, cfg Config) *Engine {
	return &Engine{
		host:    host,
		cfg:     cfg,
		stepper: NewStepper(cfg.Rand),
		logger:  calculation.NopLogger{},
		ctx:     NewContext(),
		done:    make(chan struct{}),
		pending: make(map[string]domain.SalaryChangeRequest),
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l calculation.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if l == nil {
		l = calculation.NopLogger{}
	}
	e.logger = l
	e.stepper.SetLogger(l)
}

// Start begins or resumes ticking. A first start captures the baseline and seeds history;
// a resume only re-arms the timer. Starting a running or completed engine is a no-op.
// A profile already at its retirement age completes without ticking.
func (e *Engine) Start() domain.EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.ctx.State {
	case domain.StateRunning, domain.StateCompleted:
		return e.ctx.State
	}

	if !e.ctx.Started {
		person := e.host.PersonalData()
		var aggregates domain.FinancialAggregates
		e.ctx, aggregates = e.stepper.Begin(e.ctx, person, nowFunc())
		e.host.UpdateFinancialAggregates(aggregates)
		if person.Age >= person.RetirementAge {
			e.ctx.State = domain.StateCompleted
			close(e.done)
			e.logger.Infof("age %d is already at retirement age %d, nothing to simulate", person.Age, person.RetirementAge)
			return e.ctx.State
		}
	} else {
		e.logger.Infof("simulation resumed at year %d", e.ctx.Year)
	}

	e.ctx.State = domain.StateRunning
	e.generation++
	e.schedule(e.generation)
	return e.ctx.State
}

// Pause stops ticking. A tick already in progress finishes first.
func (e *Engine) Pause() domain.EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ctx.State != domain.StateRunning {
		return e.ctx.State
	}
	e.stop()
	e.ctx.State = domain.StatePaused
	e.logger.Infof("simulation paused at year %d", e.ctx.Year)
	return e.ctx.State
}

// Reset stops ticking, clears history and summaries, hands the seed age, baseline salary
// and starting balances back to the host, zeroes the aggregates and restores the initial
// economy. A following Start reproduces the original first history point.
func (e *Engine) Reset() domain.EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stop()
	if e.ctx.Started {
		age := e.ctx.SeedAge
		salary := e.ctx.BaselineSalary
		cash := e.ctx.SeedCash
		holdings := e.ctx.SeedHoldings
		debt := e.ctx.SeedDebt
		e.host.UpdatePersonData(domain.PersonDelta{
			Age:             &age,
			Salary:          &salary,
			ReplaceCash:     &cash,
			ReplaceHoldings: &holdings,
			ReplaceDebt:     &debt,
		})
	}
	e.host.UpdateFinancialAggregates(domain.FinancialAggregates{})

	e.ctx = NewContext()
	e.stopAt = 0
	e.pending = make(map[string]domain.SalaryChangeRequest)
	select {
	case <-e.done:
		e.done = make(chan struct{})
	default:
	}
	e.logger.Infof("simulation reset")
	return e.ctx.State
}

// Step runs one tick synchronously when the engine is running and returns the resulting state.
// It is how timer-less engines (Interval <= 0) advance.
func (e *Engine) Step() domain.EngineState {
	e.mu.Lock()
	if e.ctx.State != domain.StateRunning {
		state := e.ctx.State
		e.mu.Unlock()
		return state
	}
	yearly := e.tick()
	state := e.ctx.State
	e.mu.Unlock()

	e.notify(yearly)
	return state
}

// Completed is closed when the simulation reaches retirement age.
func (e *Engine) Completed() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done
}

// State returns the current engine state.
func (e *Engine) State() domain.EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx.State
}

// Economy returns the current economic state.
func (e *Engine) Economy() domain.EconomicState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx.Economy
}

// History returns a copy of the historical series.
func (e *Engine) History() []domain.HistoricalDataPoint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.HistoricalDataPoint(nil), e.ctx.History...)
}

// Summaries returns a copy of the yearly summaries produced so far.
func (e *Engine) Summaries() []domain.YearlySummary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.YearlySummary(nil), e.ctx.Summaries...)
}

// Context returns a copy of the engine's cross-tick state for persistence.
func (e *Engine) Context() domain.SimulationContext {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx.Clone()
}

// Restore replaces the engine's context with a previously saved one.
// A context saved while running is restored paused; call Start to continue.
func (e *Engine) Restore(ctx domain.SimulationContext) domain.EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stop()
	e.stopAt = 0
	e.ctx = ctx.Clone()
	if e.ctx.State == domain.StateRunning {
		e.ctx.State = domain.StatePaused
	}
	if e.ctx.State == "" {
		e.ctx.State = domain.StateSetup
	}
	e.done = make(chan struct{})
	if e.ctx.State == domain.StateCompleted {
		close(e.done)
	}
	return e.ctx.State
}

// schedule arms the timer for generation gen. Caller holds mu.
func (e *Engine) schedule(gen uint64) {
	if e.cfg.Interval <= 0 {
		return
	}
	e.timer = time.AfterFunc(e.cfg.Interval, func() { e.fire(gen) })
}

// stop invalidates any armed timer. Caller holds mu.
func (e *Engine) stop() {
	e.generation++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// pauseAfter makes a timed engine pause itself once years more ticks have run.
// The returned channel is closed when it does.
func (e *Engine) pauseAfter(years int) <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopAt = e.ctx.Year + years
	e.halted = make(chan struct{})
	return e.halted
}

func (e *Engine) fire(gen uint64) {
	e.mu.Lock()
	// a pause, reset or restore happened after this timer was armed
	if gen != e.generation || e.ctx.State != domain.StateRunning {
		e.mu.Unlock()
		return
	}
	yearly := e.tick()
	e.mu.Unlock()

	e.notify(yearly)

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.generation || e.ctx.State != domain.StateRunning {
		return
	}
	if e.stopAt > 0 && e.ctx.Year >= e.stopAt {
		e.stop()
		e.stopAt = 0
		e.ctx.State = domain.StatePaused
		close(e.halted)
		e.logger.Infof("simulation paused at year %d: year limit reached", e.ctx.Year)
		return
	}
	e.schedule(gen)
}

func (e *Engine) notify(yearly domain.YearlySummary) {
	if e.cfg.OnSummary != nil {
		e.cfg.OnSummary(yearly)
	}
}

// tick runs one year and applies it to the host. Caller holds mu.
func (e *Engine) tick() domain.YearlySummary {
	next, result := e.stepper.Advance(e.ctx, e.host.PersonalData())

	e.host.UpdatePersonData(result.Delta)
	e.host.UpdateFinancialAggregates(result.Aggregates)
	for _, ev := range result.Events {
		e.host.AppendEvent(ev)
	}
	e.ctx = next

	if result.Completed {
		e.timer = nil
		e.ctx.State = domain.StateCompleted
		close(e.done)
		e.logger.Infof("simulation completed at age %d after %d years", result.Point.Age, e.ctx.Year)
	}
	return result.Summary
}
