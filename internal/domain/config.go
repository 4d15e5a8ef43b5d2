package domain

// Configuration is the profile file loaded by config.InputParser.
type Configuration struct {
	Profile PersonalFinancialData `yaml:"profile" json:"profile"`
	// Simulation holds optional per-profile overrides of the runtime settings.
	Simulation SimulationOptions `yaml:"simulation,omitempty" json:"simulation,omitempty"`
}

// SimulationOptions are profile-level knobs for a headless run.
type SimulationOptions struct {
	Seed     int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	MaxYears int   `yaml:"max_years,omitempty" json:"max_years,omitempty"`
}
