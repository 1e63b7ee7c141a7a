// SPDX-License-Identifier: MIT

// Package similarity provides similarity measures between two intuitionistic
// fuzzy values. Results are typically in [0,1] but are not clamped.
// Only μ and ν enter the formulas.
package similarity

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ifdm/ifs"
)

// ErrUnknown is returned by Lookup for an unregistered name.
var ErrUnknown = errors.New("similarity: unknown similarity function")

// Func is a named similarity measure.
type Func struct {
	Name string
	Fn   func(a, b ifs.Value) float64
}

// Between returns the similarity of a and b.
func (f Func) Between(a, b ifs.Value) float64 { return f.Fn(a, b) }

// Built-in similarity measures.
var (
	// Chen compares the spreads |μ-ν| of both values.
	Chen = Func{Name: "chen", Fn: func(a, b ifs.Value) float64 {
		return 1 - (math.Abs(a.Mu-a.Nu)-math.Abs(b.Mu-b.Nu))/2
	}}
	HongKim = Func{Name: "hong_kim", Fn: func(a, b ifs.Value) float64 {
		return 1 - (math.Abs(a.Mu-b.Mu)+math.Abs(a.Nu-b.Nu))/2
	}}
	LiXu = Func{Name: "li_xu", Fn: func(a, b ifs.Value) float64 {
		return 1 - math.Abs((a.Mu-a.Nu)-(b.Mu-b.Nu))/4 -
			(math.Abs(a.Mu-a.Nu)+math.Abs(b.Mu-b.Nu))/4
	}}
	FanZhang = Func{Name: "fan_zhang", Fn: func(a, b ifs.Value) float64 {
		return 1 - (math.Abs((a.Mu-a.Nu)-(b.Mu-b.Nu))+math.Abs((a.Mu-b.Mu)-(a.Nu-b.Nu)))/4
	}}
	Li = Func{Name: "li", Fn: func(a, b ifs.Value) float64 {
		dm, dn := a.Mu-b.Mu, a.Nu-b.Nu
		return 1 - math.Sqrt((dm*dm+dn*dn)/2)
	}}
	// Ye is the cosine of the (μ, ν) vectors.
	Ye = Func{Name: "ye", Fn: func(a, b ifs.Value) float64 {
		return (a.Mu*b.Mu + a.Nu*b.Nu) /
			(math.Sqrt(a.Mu*a.Mu+a.Nu*a.Nu) * math.Sqrt(b.Mu*b.Mu+b.Nu*b.Nu))
	}}
)

var registry = map[string]Func{}

func init() {
	for _, f := range []Func{Chen, HongKim, LiXu, FanZhang, Li, Ye} {
		registry[f.Name] = f
	}
}

// Lookup resolves a built-in similarity by name.
func Lookup(name string) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return Func{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknown)
	}

	return f, nil
}

// Names lists the registered similarity names in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Mean returns the average similarity of two aligned rows of values.
// Rows must be non-empty and of equal length.
//
// Mean stays on the per-value scale. It is not the whole-row form
// 1 - Σ|..| that sums unscaled differences over every criterion: for
// HongKim that form gives 1 - Σ(|Δμ|+|Δν|), which drops below 0 once
// the rows differ enough.
func Mean(f Func, a, b []ifs.Value) float64 {
	var s float64
	for j := range a {
		s += f.Fn(a[j], b[j])
	}

	return s / float64(len(a))
}
