// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ifdm/ifs"
)

// ErrUnknown is returned by Lookup for an unregistered name.
var ErrUnknown = errors.New("distance: unknown distance function")

// Kind tells callers how a measure's raw value is scaled.
type Kind int

const (
	// KindOther measures are used as returned.
	KindOther Kind = iota
	// KindEuclidean marks the (already rooted) Euclidean measure.
	KindEuclidean
	// KindHamming marks the Hamming measure.
	KindHamming
	// KindNormalizedEuclidean returns a squared sum; callers take sqrt(Σ/(2n)).
	KindNormalizedEuclidean
	// KindNormalizedHamming returns an absolute sum; callers take Σ/(2n).
	KindNormalizedHamming
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEuclidean:
		return "euclidean"
	case KindHamming:
		return "hamming"
	case KindNormalizedEuclidean:
		return "normalized_euclidean"
	case KindNormalizedHamming:
		return "normalized_hamming"
	default:
		return "other"
	}
}

// Normalized reports whether raw values need the 1/(2n) factor.
func (k Kind) Normalized() bool {
	return k == KindNormalizedEuclidean || k == KindNormalizedHamming
}

// Measure is a named distance formula with its scaling kind.
type Measure struct {
	Name string
	Kind Kind
	Fn   func(a, b ifs.Value) float64
}

// Between returns the raw distance between a and b.
func (m Measure) Between(a, b ifs.Value) float64 { return m.Fn(a, b) }

// deltas returns |Δμ|, |Δν|, |Δπ|.
func deltas(a, b ifs.Value) (dm, dn, dp float64) {
	return math.Abs(a.Mu - b.Mu), math.Abs(a.Nu - b.Nu), math.Abs(a.Pi - b.Pi)
}

// Built-in measures.
var (
	Euclidean = Measure{Name: "euclidean", Kind: KindEuclidean, Fn: func(a, b ifs.Value) float64 {
		dm, dn, dp := deltas(a, b)
		return math.Sqrt((dm*dm + dn*dn + dp*dp) / 2)
	}}
	NormalizedEuclidean = Measure{Name: "normalized_euclidean", Kind: KindNormalizedEuclidean, Fn: func(a, b ifs.Value) float64 {
		dm, dn, dp := deltas(a, b)
		return dm*dm + dn*dn + dp*dp
	}}
	Hamming = Measure{Name: "hamming", Kind: KindHamming, Fn: func(a, b ifs.Value) float64 {
		dm, dn, dp := deltas(a, b)
		return (dm + dn + dp) / 2
	}}
	NormalizedHamming = Measure{Name: "normalized_hamming", Kind: KindNormalizedHamming, Fn: func(a, b ifs.Value) float64 {
		dm, dn, dp := deltas(a, b)
		return dm + dn + dp
	}}
	Grzegorzewski = Measure{Name: "grzegorzewski", Fn: func(a, b ifs.Value) float64 {
		dm, dn, _ := deltas(a, b)
		return math.Max(dm, dn)
	}}
	HausdorfEuclidean = Measure{Name: "hausdorf_euclidean", Fn: func(a, b ifs.Value) float64 {
		dm, dn, _ := deltas(a, b)
		return math.Max(dm*dm, dn*dn)
	}}
	// Luo keeps the signed π term in its second part.
	Luo = Measure{Name: "luo", Fn: func(a, b ifs.Value) float64 {
		dm, dn, dp := deltas(a, b)
		l1 := (dm + dn + math.Abs((a.Mu+1-a.Nu)-(b.Mu+1-b.Nu))) / 2
		l2 := (a.Pi - b.Pi) / 2
		l3 := math.Max(math.Max(dm, dn), dp/2)
		return (l1 + l2 + l3) / 6
	}}
	WangXin1 = Measure{Name: "wang_xin_1", Fn: func(a, b ifs.Value) float64 {
		dm, dn, _ := deltas(a, b)
		return (dm+dn)/4 + math.Max(dm, dn)/2
	}}
	WangXin2 = Measure{Name: "wang_xin_2", Fn: func(a, b ifs.Value) float64 {
		dm, dn, _ := deltas(a, b)
		return dm/2 + dn/2
	}}
	YangChiclana = Measure{Name: "yang_chiclana", Fn: func(a, b ifs.Value) float64 {
		dm, dn, dp := deltas(a, b)
		return math.Max(dm, dn*dp)
	}}
)

var registry = map[string]Measure{}

func init() {
	for _, m := range []Measure{Euclidean, NormalizedEuclidean, Hamming, NormalizedHamming,
		Grzegorzewski, HausdorfEuclidean, Luo, WangXin1, WangXin2, YangChiclana} {
		registry[m.Name] = m
	}
}

// Lookup resolves a built-in measure by name.
func Lookup(name string) (Measure, error) {
	m, ok := registry[name]
	if !ok {
		return Measure{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknown)
	}

	return m, nil
}

// Names lists the registered measure names in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Scale applies the Kind's scaling to a raw value (or raw sum) over nCriteria criteria.
func Scale(m Measure, raw float64, nCriteria int) float64 {
	f := 1 / (2 * float64(nCriteria))
	switch m.Kind {
	case KindNormalizedEuclidean:
		return math.Sqrt(f * raw)
	case KindNormalizedHamming:
		return f * raw
	default:
		return raw
	}
}

// Sum returns the scaled distance between two aligned rows of values.
// Rows must have equal length; that length is the criteria count.
func Sum(m Measure, a, b []ifs.Value) float64 {
	var s float64
	for j := range a {
		s += m.Fn(a[j], b[j])
	}

	return Scale(m, s, len(a))
}
