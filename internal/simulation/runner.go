package simulation

import (
	"context"
	"fmt"

	"github.com/rpgo/career-simulator/internal/domain"
)

// MaxSimulatedYears bounds a headless run when no year limit is given.
const MaxSimulatedYears = 120

// Run drives e until retirement, until maxYears ticks have run or until ctx is
// cancelled. Timer-less engines are stepped directly; timed engines tick on their own
// cadence and are waited on. A run stopped before completion leaves the engine paused.
func Run(ctx context.Context, e *Engine, maxYears int) (domain.EngineState, error) {
	if maxYears <= 0 || maxYears > MaxSimulatedYears {
		maxYears = MaxSimulatedYears
	}

	if e.cfg.Interval > 0 {
		halted := e.pauseAfter(maxYears)
		if state := e.Start(); state == domain.StateCompleted {
			return state, nil
		}
		select {
		case <-e.Completed():
			return e.State(), nil
		case <-halted:
			return e.State(), nil
		case <-ctx.Done():
			return e.Pause(), fmt.Errorf("simulation interrupted: %w", ctx.Err())
		}
	}

	state := e.Start()
	if state == domain.StateCompleted {
		return state, nil
	}
	for year := 0; year < maxYears; year++ {
		if err := ctx.Err(); err != nil {
			return e.Pause(), fmt.Errorf("simulation interrupted at year %d: %w", year, err)
		}
		if state = e.Step(); state == domain.StateCompleted {
			return state, nil
		}
	}
	return e.Pause(), nil
}
