package simulation

import (
	"errors"
	"fmt"
	"time"

	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownRequest is returned when resolving a request id that is not pending.
	ErrUnknownRequest = errors.New("unknown salary change request")
	// ErrInvalidSalary is returned when a salary change resolves to a negative amount.
	ErrInvalidSalary = errors.New("salary must not be negative")
)

// RequestSalaryChange asks the host for a new salary, for example after a job change.
// The request is announced as an event and through Config.OnSalaryRequest; the host
// answers later with ResolveSalaryChange. Ticking is not blocked while it is pending.
func (e *Engine) RequestSalaryChange(reason string) domain.SalaryChangeRequest {
	e.mu.Lock()

	person := e.host.PersonalData()
	req := domain.SalaryChangeRequest{
		ID:            newID(),
		Reason:        reason,
		CurrentSalary: person.Salary,
		Age:           person.Age,
	}
	e.pending[req.ID] = req

	e.host.AppendEvent(domain.Event{
		ID:          req.ID,
		Kind:        domain.EventSalaryRequest,
		Title:       "New salary needed",
		Description: reason,
		Age:         person.Age,
		Year:        e.ctx.Year,
		Timestamp:   e.simulatedDate(),
	})
	e.logger.Infof("salary change requested (%s): %s", req.ID, reason)
	e.mu.Unlock()

	if e.cfg.OnSalaryRequest != nil {
		e.cfg.OnSalaryRequest(req)
	}
	return req
}

// ResolveSalaryChange applies the host's answer to a pending request through
// Host.UpdatePersonData. The captured baseline used by Reset is not changed.
func (e *Engine) ResolveSalaryChange(id string, salary decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	req, ok := e.pending[id]
	if !ok {
		return fmt.Errorf("resolve %q: %w", id, ErrUnknownRequest)
	}
	if salary.IsNegative() {
		return fmt.Errorf("resolve %q with %s: %w", id, salary.String(), ErrInvalidSalary)
	}
	delete(e.pending, id)

	e.host.UpdatePersonData(domain.PersonDelta{Salary: &salary})
	person := e.host.PersonalData()
	e.host.AppendEvent(domain.Event{
		ID:          newID(),
		Kind:        domain.EventSalaryChanged,
		Title:       "Salary updated",
		Description: fmt.Sprintf("Salary changed from %s to %s.", req.CurrentSalary.StringFixed(2), salary.StringFixed(2)),
		Age:         person.Age,
		Year:        e.ctx.Year,
		Timestamp:   e.simulatedDate(),
	})
	e.logger.Infof("salary change %s resolved: %s", id, salary.StringFixed(2))
	return nil
}

// PendingSalaryChanges returns the requests still waiting for an answer.
func (e *Engine) PendingSalaryChanges() []domain.SalaryChangeRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.SalaryChangeRequest, 0, len(e.pending))
	for _, req := range e.pending {
		out = append(out, req)
	}
	return out
}

// simulatedDate is the calendar date of the current simulated year. Caller holds mu.
func (e *Engine) simulatedDate() time.Time {
	if !e.ctx.Started {
		return nowFunc()
	}
	return e.ctx.StartDate.AddDate(e.ctx.Year, 0, 0)
}
