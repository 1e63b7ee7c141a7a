// SPDX-License-Identifier: MIT

package weights

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ifdm/matrix"
)

var (
	// ErrZeroHesitancy indicates a column with zero mean hesitancy (Entropy).
	ErrZeroHesitancy = errors.New("weights: column hesitancy is zero")

	// ErrUnknown is returned by Lookup for an unregistered name.
	ErrUnknown = errors.New("weights: unknown weighting")
)

// Func is a named weighting.
type Func struct {
	Name string
	Fn   func(m *matrix.Tensor) (matrix.Weights, error)
}

// Derive checks m and computes the weights.
func (f Func) Derive(m *matrix.Tensor) (matrix.Weights, error) {
	if m == nil {
		return matrix.Weights{}, fmt.Errorf("%s: %w", f.Name, matrix.ErrNilMatrix)
	}
	if m.Comps() < 2 {
		return matrix.Weights{}, fmt.Errorf("%s: comps=%d: %w", f.Name, m.Comps(), matrix.ErrComponents)
	}

	return f.Fn(m)
}

// Built-in weightings.
var (
	Burillo = Func{Name: "burillo", Fn: burillo}
	Equal   = Func{Name: "equal", Fn: equal}
	Entropy = Func{Name: "entropy", Fn: entropy}
	Liu     = Func{Name: "liu", Fn: liu}
	Szmidt  = Func{Name: "szmidt", Fn: szmidt}
	Thakur  = Func{Name: "thakur", Fn: thakur}
	Ye      = Func{Name: "ye", Fn: ye}
)

var registry = map[string]Func{}

func init() {
	for _, f := range []Func{Burillo, Equal, Entropy, Liu, Szmidt, Thakur, Ye} {
		registry[f.Name] = f
	}
}

// Lookup resolves a built-in weighting by name.
func Lookup(name string) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return Func{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknown)
	}

	return f, nil
}

// Names lists the registered weightings in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// columnMean averages f(μ, ν) over the alternatives of every criterion.
func columnMean(m *matrix.Tensor, f func(mu, nu float64) float64) []float64 {
	out := make([]float64, m.Cols())
	var mu, nu float64
	for j := 0; j < m.Cols(); j++ {
		for i := 0; i < m.Rows(); i++ {
			mu, _ = m.At(i, j, 0)
			nu, _ = m.At(i, j, 1)
			out[j] += f(mu, nu)
		}
		out[j] /= float64(m.Rows())
	}

	return out
}

// complementShare maps e to (1-e_j)/Σ(1-e).
func complementShare(e []float64) []float64 {
	var sum float64
	out := make([]float64, len(e))
	for j, v := range e {
		out[j] = 1 - v
		sum += out[j]
	}
	for j := range out {
		out[j] /= sum
	}

	return out
}

func burillo(m *matrix.Tensor) (matrix.Weights, error) {
	e := columnMean(m, func(mu, nu float64) float64 { return 1 - mu - nu })

	return matrix.CrispWeights(complementShare(e))
}

func equal(m *matrix.Tensor) (matrix.Weights, error) {
	rows := make([][]float64, m.Cols())
	for j := range rows {
		rows[j] = []float64{0.5, 0.5}
	}

	return matrix.FuzzyWeights(rows)
}

func entropy(m *matrix.Tensor) (matrix.Weights, error) {
	p := columnMean(m, func(mu, nu float64) float64 { return 1 - mu - nu })
	var sum float64
	for j, v := range p {
		if v == 0 {
			return matrix.Weights{}, fmt.Errorf("entropy: column %d: %w", j, ErrZeroHesitancy)
		}
		sum += 1 / v
	}
	out := make([]float64, len(p))
	for j, v := range p {
		out[j] = (1 / v) / sum
	}

	return matrix.CrispWeights(out)
}

func liu(m *matrix.Tensor) (matrix.Weights, error) {
	e := columnMean(m, func(mu, nu float64) float64 {
		x := math.Pi/4 + math.Abs(mu*mu-nu*nu)/4*math.Pi
		return math.Cos(x) / math.Sin(x)
	})

	return matrix.CrispWeights(e)
}

// szmidt uses the column-wide min and max over every stored component.
func szmidt(m *matrix.Tensor) (matrix.Weights, error) {
	out := make([]float64, m.Cols())
	var mu, nu, pi float64
	for j := 0; j < m.Cols(); j++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for k := 0; k < m.Comps(); k++ {
			col, err := m.Column(j, k)
			if err != nil {
				return matrix.Weights{}, fmt.Errorf("szmidt: %w", err)
			}
			for _, v := range col {
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
		}
		for i := 0; i < m.Rows(); i++ {
			mu, _ = m.At(i, j, 0)
			nu, _ = m.At(i, j, 1)
			pi = 1 - mu - nu
			out[j] += (lo + pi) / (hi + pi)
		}
		out[j] /= float64(m.Rows())
	}

	return matrix.CrispWeights(out)
}

func thakur(m *matrix.Tensor) (matrix.Weights, error) {
	sec := func(x float64) float64 {
		return 1 / math.Cos(math.Abs(math.Abs(3-2*x-7.0/3)-7.0/3)*math.Pi/7)
	}
	e := columnMean(m, func(mu, nu float64) float64 {
		return (sec(mu) + sec(nu) - 334.0/135) / (206.0 / 135)
	})

	return matrix.CrispWeights(complementShare(e))
}

func ye(m *matrix.Tensor) (matrix.Weights, error) {
	e := columnMean(m, func(mu, nu float64) float64 {
		return (math.Sin((1+mu-nu)*math.Pi/4) + math.Sin((1-mu+nu)*math.Pi/4) - 1) / (math.Sqrt2 - 1)
	})

	return matrix.CrispWeights(e)
}
