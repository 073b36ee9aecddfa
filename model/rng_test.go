package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	rng1 := NewPartitionedRNG(NewSimulationKey(7))
	rng2 := NewPartitionedRNG(NewSimulationKey(7))

	for i := 0; i < 3; i++ {
		assert.Equal(t, rng1.ForSubsystem(SubsystemEta).Float64(), rng2.ForSubsystem(SubsystemEta).Float64())
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(7))
	a := rng.ForSubsystem(SubsystemEta).Float64()
	b := rng.ForSubsystem(SubsystemResidualError).Float64()
	assert.NotEqual(t, a, b)
}

func TestPartitionedRNG_SameSubsystemCached(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	first := rng.ForSubsystem(SubsystemTrajectory(3))
	second := rng.ForSubsystem(SubsystemTrajectory(3))
	assert.Same(t, first, second)
}

func TestPartitionedRNG_DifferentKeysDiverge(t *testing.T) {
	rngA := NewPartitionedRNG(NewSimulationKey(1))
	rngB := NewPartitionedRNG(NewSimulationKey(2))
	assert.NotEqual(t, rngA.ForSubsystem(SubsystemEta).Float64(), rngB.ForSubsystem(SubsystemEta).Float64())
}
