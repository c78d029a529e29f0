// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value so constructors cannot leak changes to each other.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn
}

// Option customizes a builderConfig before any constructor runs.
type Option func(*builderConfig)

// newBuilderConfig starts from DecimalID, no RNG and DefaultEdgeWeight, then
// applies opts in order (later options win).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     DecimalID,
		weightFn: ConstantWeight(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors and weights.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w int64) Option {
	return WithWeightFn(ConstantWeight(w))
}

// WithUniformWeight draws weights uniformly from [lo, hi].
func WithUniformWeight(lo, hi int64) Option {
	return WithWeightFn(UniformWeight(lo, hi))
}
