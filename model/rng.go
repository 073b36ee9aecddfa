package model

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible Monte Carlo run. Two
// runs with the same SimulationKey, the same DrugModel/DrugTreatment, and
// the same EngineConfig MUST produce bit-for-bit identical percentile and
// adjustment output (spec §5 "Shared resource policy").
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey { return SimulationKey(seed) }

const (
	// SubsystemResidualError is the RNG subsystem for residual-error draws.
	SubsystemResidualError = "residual_error"
	// SubsystemEta is the RNG subsystem for eta vector draws.
	SubsystemEta = "eta"
)

// SubsystemTrajectory returns the subsystem name for Monte Carlo
// trajectory k, so each worker draws from an isolated, deterministic
// sub-stream regardless of how trajectories are scheduled across workers.
func SubsystemTrajectory(k int) string {
	return fmt.Sprintf("trajectory_%d", k)
}

// PartitionedRNG provides deterministic, isolated *rand.Rand instances per
// subsystem, derived from one master SimulationKey. Held on the
// percentile/adjustment engine's own stack for the duration of one
// request — never a process-global (spec §5, §9 "RNG ownership").
//
// Thread-safety: NOT thread-safe; ForSubsystem must be called from a
// single goroutine per subsystem name (typically once per worker, before
// that worker starts drawing).
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, subsystems: make(map[string]*rand.Rand)}
}

// ForSubsystem returns the cached, deterministically-seeded RNG for name,
// creating it on first use. Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derived := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derived))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey { return p.key }

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
