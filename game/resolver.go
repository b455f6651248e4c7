package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Resolver decides whether a pending claim holds when it is challenged or accepted.
type Resolver interface {
	Holds(claim Claim, successProb float64) bool
	// Fork returns an independent resolver for the i-th concurrent task. Forks of
	// equal resolvers with equal i resolve identically.
	Fork(i int) Resolver
}

// randomResolver samples outcomes. It is not safe for concurrent use; concurrent
// searches each take a Fork.
type randomResolver struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandomResolver returns a resolver whose draws are reproducible for a given seed.
func NewRandomResolver(seed uint64) Resolver {
	return &randomResolver{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (r *randomResolver) Holds(_ Claim, successProb float64) bool {
	return r.rng.Float64() < successProb
}

// Fork derives the seed of task i from the resolver's own seed, never from draws already made.
func (r *randomResolver) Fork(i int) Resolver {
	return NewRandomResolver(forkSeed(r.seed, i))
}

// forkSeed mixes i into seed with a splitmix64 finalizer.
func forkSeed(seed uint64, i int) uint64 {
	z := seed + (uint64(i)+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// ThresholdResolver is a deterministic oracle: a claim holds when its success
// probability exceeds Threshold.
type ThresholdResolver struct {
	Threshold float64
}

func (r ThresholdResolver) Holds(_ Claim, successProb float64) bool {
	return successProb > r.Threshold
}

func (r ThresholdResolver) Fork(int) Resolver {
	return r
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
