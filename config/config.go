// SPDX-License-Identifier: MIT

// Package config loads ranking-method configurations and decision problems
// from YAML documents and resolves them through the strategy registries.
//
// A document names a method and, optionally, the strategies and parameters
// overriding its defaults:
//
//	method: codas
//	normalization: swap     # "none" disables normalization
//	distance: euclidean
//	distance_2: hamming
//	tau: 0.05
//	problem:
//	  matrix: [[[0.6, 0.3], [0.4, 0.5]], [[0.7, 0.2], [0.3, 0.6]]]
//	  weights: [0.5, 0.5]     # or [[0.6, 0.3], [0.5, 0.4]] for IFS weights
//	  types: [1, -1]
//
// Unknown strategy names surface the owning registry's ErrUnknown.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/ifdm/distance"
	"github.com/katalvlaran/ifdm/methods"
	"github.com/katalvlaran/ifdm/normalization"
	"github.com/katalvlaran/ifdm/score"
	"gopkg.in/yaml.v3"
)

// NormalizationNone disables normalization for the configured method.
const NormalizationNone = "none"

// DefaultMethod is used when a document omits method.
const DefaultMethod = "topsis"

var (
	// ErrInvalidParameter indicates a numeric parameter outside its domain.
	ErrInvalidParameter = errors.New("config: invalid parameter")

	// ErrNoProblem indicates Decode was called on a document without one.
	ErrNoProblem = errors.New("config: no problem section")

	// ErrNoWeights indicates a problem with neither weights nor a weighting method.
	ErrNoWeights = errors.New("config: problem has no weights")

	// ErrWeightsFormat indicates weights that are neither a list nor a list of lists.
	ErrWeightsFormat = errors.New("config: weights must be a list of numbers or of pairs")
)

// Config describes one ranking method. Empty names and nil parameters keep
// the method's own defaults.
type Config struct {
	Method        string   `yaml:"method"`
	Normalization string   `yaml:"normalization,omitempty"`
	Distance      string   `yaml:"distance,omitempty"`
	Distance2     string   `yaml:"distance_2,omitempty"`
	Score         string   `yaml:"score,omitempty"`
	ChenY         *float64 `yaml:"chen_y,omitempty"` // only read with score chen_2
	Tau           *float64 `yaml:"tau,omitempty"`
	V             *float64 `yaml:"v,omitempty"`
	P             *float64 `yaml:"p,omitempty"`
	G             *float64 `yaml:"g,omitempty"`

	// Weighting derives weights from the matrix when the problem has none.
	Weighting string `yaml:"weighting,omitempty"`

	Problem *ProblemConfig `yaml:"problem,omitempty"`
}

// ProblemConfig is an embedded decision problem.
type ProblemConfig struct {
	Matrix  [][][]float64 `yaml:"matrix"`
	Weights yaml.Node     `yaml:"weights"`
	Types   []int         `yaml:"types"`
}

// DefaultConfig returns a Config that builds DefaultMethod with its defaults.
func DefaultConfig() *Config {
	return &Config{Method: DefaultMethod}
}

// Parse decodes a YAML document on top of DefaultConfig.
// Unknown keys are rejected; an empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Method == "" {
		cfg.Method = DefaultMethod
	}

	return cfg, nil
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return Parse(data)
}

// Build resolves every name and parameter and constructs the method.
func (c *Config) Build() (methods.Method, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	m, err := methods.New(c.Method, opts...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return m, nil
}

// Options translates the document into method options. Parameters are range
// checked here so that malformed documents return errors instead of reaching
// the panicking option constructors.
func (c *Config) Options() ([]methods.Option, error) {
	var opts []methods.Option

	switch c.Normalization {
	case "":
	case NormalizationNone:
		opts = append(opts, methods.WithoutNormalization())
	default:
		n, err := normalization.Lookup(c.Normalization)
		if err != nil {
			return nil, fmt.Errorf("config: normalization: %w", err)
		}
		opts = append(opts, methods.WithNormalization(n))
	}

	if c.Distance != "" {
		d, err := distance.Lookup(c.Distance)
		if err != nil {
			return nil, fmt.Errorf("config: distance: %w", err)
		}
		opts = append(opts, methods.WithDistance(d))
	}
	if c.Distance2 != "" {
		d, err := distance.Lookup(c.Distance2)
		if err != nil {
			return nil, fmt.Errorf("config: distance_2: %w", err)
		}
		opts = append(opts, methods.WithDistance2(d))
	}
	if c.Score != "" {
		s, err := score.Lookup(c.Score)
		if err != nil {
			return nil, fmt.Errorf("config: score: %w", err)
		}
		if c.ChenY != nil && s.Name == score.Chen2.Name {
			if !inUnit(*c.ChenY) {
				return nil, fmt.Errorf("config: chen_y=%g: %w", *c.ChenY, ErrInvalidParameter)
			}
			s = score.ChenY(*c.ChenY)
		}
		opts = append(opts, methods.WithScore(s))
	}

	if c.Tau != nil {
		if !(*c.Tau >= 0) || math.IsInf(*c.Tau, 0) {
			return nil, fmt.Errorf("config: tau=%g: %w", *c.Tau, ErrInvalidParameter)
		}
		opts = append(opts, methods.WithTau(*c.Tau))
	}
	if c.V != nil {
		if !inUnit(*c.V) {
			return nil, fmt.Errorf("config: v=%g: %w", *c.V, ErrInvalidParameter)
		}
		opts = append(opts, methods.WithV(*c.V))
	}
	if c.P != nil {
		if !positive(*c.P) {
			return nil, fmt.Errorf("config: p=%g: %w", *c.P, ErrInvalidParameter)
		}
		opts = append(opts, methods.WithP(*c.P))
	}
	if c.G != nil {
		if !positive(*c.G) {
			return nil, fmt.Errorf("config: g=%g: %w", *c.G, ErrInvalidParameter)
		}
		opts = append(opts, methods.WithG(*c.G))
	}

	return opts, nil
}

func inUnit(x float64) bool { return x >= 0 && x <= 1 }

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 0) }
