package model

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig groups the tunable knobs shared by the percentile and
// adjustment engines. Loadable from YAML via LoadEngineConfig, mirroring
// the teacher's strict-decode PolicyBundle pattern.
type EngineConfig struct {
	// PercentileSampleCount is the default Monte Carlo patient count N
	// (spec §4.4: "Default N is 10 000; configurable").
	PercentileSampleCount int `yaml:"percentile_sample_count"`
	// WorkerPoolSize bounds how many trajectories the percentile engine
	// computes concurrently; 0 means "use runtime.GOMAXPROCS(0)".
	WorkerPoolSize int `yaml:"worker_pool_size"`
	// DefaultSeed seeds Monte Carlo draws when the caller doesn't supply
	// a request-derived seed (spec §5: "deterministic seed configurable
	// for tests; otherwise derived from the request id").
	DefaultSeed int64 `yaml:"default_seed"`
	// AdjustmentPointsPerHour overrides the trait's NbPointsPerHour
	// inside candidate computation (spec §9 REDESIGN FLAG: the original
	// hardcodes 20 regardless of the trait's value; this field makes that
	// decision an explicit, named knob instead of a silent constant).
	AdjustmentPointsPerHour int `yaml:"adjustment_points_per_hour"`
	// SteadyStateTolerance is the relative residual-ratio tolerance used
	// by both the orchestrator's half-life/multiplier checker and the
	// steady-state convergence test (spec §4.1, §4.6): 0.005 = 0.5%.
	SteadyStateTolerance float64 `yaml:"steady_state_tolerance"`
	// SteadyStateMaxIterations bounds the steady-state convergence loop
	// (spec §4.1: "convergence ... within 300 iterations").
	SteadyStateMaxIterations int `yaml:"steady_state_max_iterations"`
	// MaxIntakesPerTrait and MaxPointsPerIntake bound the overload
	// evaluator (spec §4.2 "Overload evaluator").
	MaxIntakesPerTrait int `yaml:"max_intakes_per_trait"`
	MaxPointsPerIntake int `yaml:"max_points_per_intake"`
	// SampleWindowEpsilonHours is the epsilon (in hours) in invariant 5's
	// [treatment_start - eps, treatment_end + eps] sample window.
	SampleWindowEpsilonHours float64 `yaml:"sample_window_epsilon_hours"`
}

// DefaultEngineConfig returns the config the orchestrator uses when the
// caller supplies none.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		PercentileSampleCount:    10000,
		WorkerPoolSize:           0,
		DefaultSeed:              0,
		AdjustmentPointsPerHour:  20,
		SteadyStateTolerance:     0.005,
		SteadyStateMaxIterations: 300,
		MaxIntakesPerTrait:       100000,
		MaxPointsPerIntake:       10000,
		SampleWindowEpsilonHours: 1.0 / 3600.0,
	}
}

// LoadEngineConfig reads and strictly parses a YAML engine configuration
// file, rejecting unrecognized keys the way sim.LoadPolicyBundle does.
// Fields absent from the file keep their DefaultEngineConfig value.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading engine config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing engine config: %w", err)
	}
	return cfg, nil
}
