// SPDX-License-Identifier: MIT

package methods

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/ifdm/distance"
	"github.com/katalvlaran/ifdm/normalization"
	"github.com/katalvlaran/ifdm/score"
)

// Literature defaults.
const (
	// DefaultTau is the CODAS threshold above which the secondary distance counts.
	DefaultTau = 0.05

	// DefaultV weighs group utility against individual regret (VIKOR) or WSM against WPM (WASPAS).
	DefaultV = 0.5

	// DefaultMABACP multiplies distances of cells below the border approximation area.
	DefaultMABACP = 2.25

	// DefaultMABACG is the exponent applied to MABAC distances.
	DefaultMABACG = 0.88
)

const (
	panicNormalizationNil = "methods: WithNormalization: normalizer function is nil"
	panicScoreNil         = "methods: WithScore: score function is nil"
	panicDistanceNil      = "methods: WithDistance: distance function is nil"
	panicTauInvalid       = "methods: WithTau: tau must be finite and non-negative"
	panicVInvalid         = "methods: WithV: v must be within [0, 1]"
	panicPInvalid         = "methods: WithP: p must be finite and positive"
	panicGInvalid         = "methods: WithG: g must be finite and positive"
	panicLoggerNil        = "methods: WithLogger: logger is nil"
)

// Options carries every strategy and numeric parameter a method may read.
// Each constructor fills its own defaults before applying user setters;
// fields a method does not use are ignored.
type Options struct {
	Normalization *normalization.Normalizer // nil: input is copied
	Score         score.Func
	Distance      distance.Measure
	Distance2     distance.Measure
	Tau           float64
	V             float64
	P             float64
	G             float64
	Logger        *slog.Logger
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// WithNormalization sets the column normalization.
func WithNormalization(n normalization.Normalizer) Option {
	if n.Fn == nil {
		panic(panicNormalizationNil)
	}

	return func(o *Options) { o.Normalization = &n }
}

// WithoutNormalization makes the method work on a copy of the raw matrix.
func WithoutNormalization() Option {
	return func(o *Options) { o.Normalization = nil }
}

// WithScore sets the score function.
func WithScore(f score.Func) Option {
	if f.Fn == nil {
		panic(panicScoreNil)
	}

	return func(o *Options) { o.Score = f }
}

// WithDistance sets the primary distance measure.
func WithDistance(m distance.Measure) Option {
	if m.Fn == nil {
		panic(panicDistanceNil)
	}

	return func(o *Options) { o.Distance = m }
}

// WithDistance2 sets the secondary distance measure (CODAS).
func WithDistance2(m distance.Measure) Option {
	if m.Fn == nil {
		panic(panicDistanceNil)
	}

	return func(o *Options) { o.Distance2 = m }
}

// WithTau sets the CODAS threshold.
func WithTau(tau float64) Option {
	if tau < 0 || math.IsNaN(tau) || math.IsInf(tau, 0) {
		panic(panicTauInvalid)
	}

	return func(o *Options) { o.Tau = tau }
}

// WithV sets the VIKOR / WASPAS blending parameter.
func WithV(v float64) Option {
	if !(v >= 0 && v <= 1) {
		panic(panicVInvalid)
	}

	return func(o *Options) { o.V = v }
}

// WithP sets the MABAC penalty multiplier.
func WithP(p float64) Option {
	if !(p > 0) || math.IsInf(p, 0) {
		panic(panicPInvalid)
	}

	return func(o *Options) { o.P = p }
}

// WithG sets the MABAC distance exponent.
func WithG(g float64) Option {
	if !(g > 0) || math.IsInf(g, 0) {
		panic(panicGInvalid)
	}

	return func(o *Options) { o.G = g }
}

// WithLogger routes Debug traces to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.Logger = l }
}

// normalizer returns a pointer to a private copy of n.
func normalizer(n normalization.Normalizer) *normalization.Normalizer { return &n }

// discardLogger is the default sink.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// gatherOptions applies user setters on top of method defaults (last-writer-wins).
func gatherOptions(defaults Options, user ...Option) Options {
	o := defaults
	o.Tau, o.V, o.P, o.G = DefaultTau, DefaultV, DefaultMABACP, DefaultMABACG
	o.Logger = discardLogger()
	for _, set := range user {
		set(&o)
	}

	return o
}
