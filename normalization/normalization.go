// SPDX-License-Identifier: MIT

package normalization

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ifdm/matrix"
)

// Kind identifies a normalization formula independent of its registry name.
type Kind int

const (
	// KindCustom marks a caller-supplied normalizer.
	KindCustom Kind = iota
	KindMinMax
	KindSwap
	KindMax
	KindEcer
	KindSupriya
)

// Normalizer is a named normalization formula.
type Normalizer struct {
	Name string
	Kind Kind
	Fn   func(m *matrix.Tensor, types []int) (*matrix.Tensor, error)
}

// Apply runs the normalizer after checking that types covers every column.
// The result must keep the shape of m.
func (n Normalizer) Apply(m *matrix.Tensor, types []int) (*matrix.Tensor, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", n.Name, matrix.ErrNilMatrix)
	}
	if len(types) != m.Cols() {
		return nil, fmt.Errorf("%s: %d types for %d criteria: %w", n.Name, len(types), m.Cols(), ErrTypesLength)
	}

	out, err := n.Fn(m, types)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%s: %w", n.Name, matrix.ErrNilMatrix)
	}
	if err = matrix.ValidateSameShape(m, out); err != nil {
		return nil, fmt.Errorf("%s: %w", n.Name, err)
	}

	return out, nil
}

// Built-in normalizers.
var (
	MinMax  = Normalizer{Name: "minmax", Kind: KindMinMax, Fn: minMax}
	Swap    = Normalizer{Name: "swap", Kind: KindSwap, Fn: swap}
	Max     = Normalizer{Name: "max", Kind: KindMax, Fn: maxNorm}
	Ecer    = Normalizer{Name: "ecer", Kind: KindEcer, Fn: ecer}
	Supriya = Normalizer{Name: "supriya", Kind: KindSupriya, Fn: supriya}
)

var registry = map[string]Normalizer{}

func init() {
	for _, n := range []Normalizer{MinMax, Swap, Max, Ecer, Supriya} {
		registry[n.Name] = n
	}
}

// Lookup resolves a built-in normalizer by name.
func Lookup(name string) (Normalizer, error) {
	n, ok := registry[name]
	if !ok {
		return Normalizer{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknown)
	}

	return n, nil
}

// Names lists the registered normalizer names in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
