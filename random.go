package freehand

import "math/rand"

// Randomness policy: every synthesis call owns its *rand.Rand, either
// derived from an explicit seed or freshly seeded from the process-wide
// locked source below. Nothing in the pipeline touches shared mutable RNG
// state, so concurrent calls need no synchronization and seeded calls are
// reproducible regardless of call ordering.

// newSeededRand returns a deterministic generator for the given seed.
func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// newProcessRand returns a generator seeded from the package-level locked
// source, so unseeded calls differ every time yet each call still gets a
// private stream.
func newProcessRand() *rand.Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}
