package model

// Aborter is a small polymorphic capability queried at coarse checkpoints
// (after each trajectory, after each candidate, before each percentile
// sort) so a caller's own timer can stop a long computation. Engines own a
// borrowed Aborter; they never retain it past the request (spec §5, §9).
type Aborter interface {
	ShouldAbort() bool
}

// NeverAbort is an Aborter that never signals abort; used when the caller
// supplies none.
type NeverAbort struct{}

func (NeverAbort) ShouldAbort() bool { return false }
