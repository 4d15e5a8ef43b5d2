package simulation

import (
	"time"

	"github.com/google/uuid"
)

// nowFunc returns the simulation start date (override for deterministic tests).
var nowFunc = time.Now

// SetNowFunc overrides the clock used to stamp the start date (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// newID returns event and request identifiers.
var newID = uuid.NewString

// SetIDFunc overrides the identifier generator (use only in tests).
func SetIDFunc(f func() string) { newID = f }
