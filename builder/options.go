// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/ifdm/matrix"
)

const (
	panicRandNil        = "builder: WithRand(nil)"
	panicComponentsSize = "builder: WithComponents: k must be 2 or 3"
)

// defaultComponents stores (μ, ν); π is derived on read.
const defaultComponents = 2

// Option customizes a generator by mutating builderConfig.
type Option func(*builderConfig)

// builderConfig aggregates the generator knobs.
type builderConfig struct {
	rng   *rand.Rand
	comps int
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithComponents sets how many components each generated cell stores.
// Panics unless k is 2 or 3.
func WithComponents(k int) Option {
	if k != 2 && k != matrix.MaxComponents {
		panic(panicComponentsSize)
	}

	return func(c *builderConfig) { c.comps = k }
}

// newBuilderConfig applies options in order; the clock seeds the RNG when none is set.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{comps: defaultComponents}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
