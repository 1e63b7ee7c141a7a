// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/weights"
	"gopkg.in/yaml.v3"
)

// Decode returns the embedded decision problem. Weights come from the
// document when present, otherwise from the configured weighting method.
func (c *Config) Decode() (*matrix.Tensor, matrix.Weights, []int, error) {
	if c.Problem == nil {
		return nil, matrix.Weights{}, nil, ErrNoProblem
	}

	m, err := matrix.TensorFrom(c.Problem.Matrix)
	if err != nil {
		return nil, matrix.Weights{}, nil, fmt.Errorf("config: matrix: %w", err)
	}

	var w matrix.Weights
	switch {
	case !isZeroNode(c.Problem.Weights):
		w, err = decodeWeights(&c.Problem.Weights)
	case c.Weighting != "":
		var f weights.Func
		if f, err = weights.Lookup(c.Weighting); err == nil {
			w, err = f.Derive(m)
		}
	default:
		err = ErrNoWeights
	}
	if err != nil {
		return nil, matrix.Weights{}, nil, fmt.Errorf("config: weights: %w", err)
	}

	return m, w, append([]int(nil), c.Problem.Types...), nil
}

func isZeroNode(n yaml.Node) bool { return n.Kind == 0 }

// decodeWeights accepts a flat list (crisp) or a list of 2- or 3-element lists (IFS).
func decodeWeights(n *yaml.Node) (matrix.Weights, error) {
	if n.Kind != yaml.SequenceNode || len(n.Content) == 0 {
		return matrix.Weights{}, ErrWeightsFormat
	}

	switch n.Content[0].Kind {
	case yaml.ScalarNode:
		var w []float64
		if err := n.Decode(&w); err != nil {
			return matrix.Weights{}, fmt.Errorf("%w: %w", ErrWeightsFormat, err)
		}
		return matrix.CrispWeights(w)
	case yaml.SequenceNode:
		var rows [][]float64
		if err := n.Decode(&rows); err != nil {
			return matrix.Weights{}, fmt.Errorf("%w: %w", ErrWeightsFormat, err)
		}
		return matrix.FuzzyWeights(rows)
	default:
		return matrix.Weights{}, ErrWeightsFormat
	}
}

// NewProblem captures an in-memory decision problem so that it can be
// embedded in a Config and written with Marshal.
func NewProblem(m *matrix.Tensor, w matrix.Weights, types []int) (*ProblemConfig, error) {
	if m == nil {
		return nil, fmt.Errorf("config: %w", matrix.ErrNilMatrix)
	}
	p := &ProblemConfig{Matrix: m.ToSlices(), Types: append([]int(nil), types...)}

	var err error
	if w.IsCrisp() {
		err = p.Weights.Encode(w.Crisp())
	} else {
		err = p.Weights.Encode(w.Rows())
	}
	if err != nil {
		return nil, fmt.Errorf("config: weights: %w", err)
	}
	p.Weights.Style = yaml.FlowStyle

	return p, nil
}

// Marshal renders the configuration as a YAML document accepted by Parse.
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	return out, nil
}
