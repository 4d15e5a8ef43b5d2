package simulation

import (
	"sync"

	"github.com/rpgo/career-simulator/internal/domain"
)

// MaxEvents is how many events MemoryHost keeps, newest first.
const MaxEvents = 10

// MemoryHost is an in-memory Host for headless runs and tests.
type MemoryHost struct {
	mu         sync.RWMutex
	person     domain.PersonalFinancialData
	aggregates domain.FinancialAggregates
	events     []domain.Event
}

// NewMemoryHost creates a host holding person.
func NewMemoryHost(person domain.PersonalFinancialData) *MemoryHost {
	return &MemoryHost{person: person, events: []domain.Event{}}
}

func (h *MemoryHost) PersonalData() domain.PersonalFinancialData {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.person
}

func (h *MemoryHost) UpdatePersonData(delta domain.PersonDelta) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.person = h.person.Apply(delta)
}

func (h *MemoryHost) UpdateFinancialAggregates(aggregates domain.FinancialAggregates) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.aggregates = aggregates
}

// AppendEvent prepends event and drops the oldest beyond MaxEvents.
func (h *MemoryHost) AppendEvent(event domain.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append([]domain.Event{event}, h.events...)
	if len(h.events) > MaxEvents {
		h.events = h.events[:MaxEvents]
	}
}

// Aggregates returns the latest aggregates written by the engine.
func (h *MemoryHost) Aggregates() domain.FinancialAggregates {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.aggregates
}

// Events returns a copy of the event feed, newest first.
func (h *MemoryHost) Events() []domain.Event {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]domain.Event(nil), h.events...)
}

// Report bundles the host's view and the engine's outputs for the formatters.
func Report(e *Engine, h *MemoryHost) *domain.SimulationReport {
	person := h.PersonalData()
	return &domain.SimulationReport{
		Name:       person.Name,
		State:      e.State(),
		Profile:    person,
		Aggregates: h.Aggregates(),
		Economy:    e.Economy(),
		History:    e.History(),
		Summaries:  e.Summaries(),
		Events:     h.Events(),
	}
}
