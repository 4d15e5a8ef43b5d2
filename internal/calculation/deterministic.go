package calculation

import "time"

// seedFunc returns a pseudo-random seed when no seed was configured
// (override for deterministic economy tests).
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }
