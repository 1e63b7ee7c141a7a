// SPDX-License-Identifier: MIT

package score

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
)

// ErrUnknown is returned by Lookup for an unregistered name.
var ErrUnknown = errors.New("score: unknown score function")

// DefaultChenY is the default adjusting parameter of chen_2.
const DefaultChenY = 0.5

// Func is a named score function.
type Func struct {
	Name string
	Fn   func(ifs.Value) float64
}

// Of applies the score to a single value.
func (f Func) Of(v ifs.Value) float64 { return f.Fn(v) }

// Built-in score functions.
var (
	Chen1 = Func{Name: "chen_1", Fn: func(v ifs.Value) float64 {
		return v.Mu - v.Nu
	}}
	Chen2 = ChenY(DefaultChenY)
	Kharal1 = Func{Name: "kharal_1", Fn: func(v ifs.Value) float64 {
		return v.Mu - (v.Nu+(1-v.Mu-v.Nu))/2
	}}
	Kharal2 = Func{Name: "kharal_2", Fn: func(v ifs.Value) float64 {
		return (v.Mu+v.Nu)/2 - (1 - v.Mu - v.Nu)
	}}
	LiuWang = Func{Name: "liu_wang", Fn: func(v ifs.Value) float64 {
		return v.Mu + v.Mu*(1-v.Mu-v.Nu)
	}}
	Supriya = Func{Name: "supriya", Fn: func(v ifs.Value) float64 {
		return v.Mu - v.Nu*(1-v.Mu-v.Nu)
	}}
	Thakur = Func{Name: "thakur", Fn: func(v ifs.Value) float64 {
		return v.Mu*v.Mu - v.Nu*v.Nu
	}}
	WanDong1 = Func{Name: "wan_dong_1", Fn: func(v ifs.Value) float64 {
		return 0.5 * ((v.Mu-v.Nu)/2 + 1)
	}}
	WanDong2 = Func{Name: "wan_dong_2", Fn: func(v ifs.Value) float64 {
		return ((v.Mu - v.Nu) + 1) / 2
	}}
	Wei = Func{Name: "wei", Fn: func(v ifs.Value) float64 {
		p := 1 - v.Mu - v.Nu
		return math.Cos(math.Abs(v.Mu-v.Nu) / (2 * (1 + p)) * math.Pi)
	}}
	ZhangXu1 = Func{Name: "zhang_xu_1", Fn: func(v ifs.Value) float64 {
		return (1 - v.Nu) / (2 - v.Mu - v.Nu)
	}}
	ZhangXu2 = Func{Name: "zhang_xu_2", Fn: func(v ifs.Value) float64 {
		d := v.Mu + v.Nu
		if d == 0 {
			return 0
		}
		return 1 - (1-v.Mu)/d
	}}
)

// ChenY returns chen_2 with a custom adjusting parameter y.
// The registry name stays "chen_2".
func ChenY(y float64) Func {
	return Func{Name: "chen_2", Fn: func(v ifs.Value) float64 {
		return y*v.Mu + (1-y)*(1-v.Nu)
	}}
}

var registry = map[string]Func{}

func init() {
	for _, f := range []Func{Chen1, Chen2, Kharal1, Kharal2, LiuWang, Supriya,
		Thakur, WanDong1, WanDong2, Wei, ZhangXu1, ZhangXu2} {
		registry[f.Name] = f
	}
}

// Lookup resolves a built-in score by name.
func Lookup(name string) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return Func{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknown)
	}

	return f, nil
}

// Names lists the registered score names in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Vector scores each value.
func Vector(f Func, vals []ifs.Value) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = f.Fn(v)
	}

	return out
}

// Grid scores every cell of an IFS tensor, [alternative][criterion].
//
// Errors:
//   - matrix.ErrComponents when t is crisp.
func Grid(f Func, t *matrix.Tensor) ([][]float64, error) {
	cells, err := t.Grid()
	if err != nil {
		return nil, fmt.Errorf("score.Grid(%s): %w", f.Name, err)
	}
	out := make([][]float64, len(cells))
	for i, row := range cells {
		out[i] = Vector(f, row)
	}

	return out, nil
}
