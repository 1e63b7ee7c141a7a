// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ifdm/ifs"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTensor(t *testing.T) *matrix.Tensor {
	t.Helper()
	m, err := matrix.TensorFrom([][][]float64{
		{{0.6, 0.3}, {0.2, 0.5}},
		{{0.4, 0.4}, {0.7, 0.1}},
		{{0.5, 0.2}, {0.3, 0.6}},
	})
	require.NoError(t, err)

	return m
}

func TestNewTensorShapeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		rows, cols, comp int
		want             error
	}{
		{"zero rows", 0, 2, 2, matrix.ErrInvalidDimensions},
		{"zero cols", 2, 0, 2, matrix.ErrInvalidDimensions},
		{"zero comps", 2, 2, 0, matrix.ErrComponents},
		{"four comps", 2, 2, 4, matrix.ErrComponents},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := matrix.NewTensor(tc.rows, tc.cols, tc.comp)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTensorFromRagged(t *testing.T) {
	t.Parallel()

	_, err := matrix.TensorFrom([][][]float64{{{0.1, 0.2}}, {{0.1, 0.2}, {0.3, 0.4}}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.TensorFrom([][][]float64{{{0.1, 0.2}, {0.3}}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.TensorFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestTensorAccessors(t *testing.T) {
	t.Parallel()
	m := sampleTensor(t)

	r, c, k := m.Shape()
	require.Equal(t, [3]int{3, 2, 2}, [3]int{r, c, k})

	v, err := m.At(1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.7, v)

	_, err = m.At(3, 0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, 2, 1), matrix.ErrOutOfRange)

	cell, err := m.Cell(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, cell.Pi, 1e-12)

	col, err := m.Column(0, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0.3, 0.4, 0.2}, col)

	require.Equal(t, [][]float64{{0.6, 0.3}, {0.2, 0.5}}, m.ToSlices()[0])
}

func TestTensorCellComponents(t *testing.T) {
	t.Parallel()

	crisp, err := matrix.TensorFrom([][][]float64{{{0.4}}})
	require.NoError(t, err)
	_, err = crisp.Cell(0, 0)
	require.ErrorIs(t, err, matrix.ErrComponents)
	_, err = crisp.Grid()
	require.ErrorIs(t, err, matrix.ErrComponents)

	explicit, err := matrix.TensorFrom([][][]float64{{{0.4, 0.3, 0.2}}})
	require.NoError(t, err)
	cell, err := explicit.Cell(0, 0)
	require.NoError(t, err)
	require.True(t, cell.Equal(ifs.NewWithPi(0.4, 0.3, 0.2)))

	require.NoError(t, explicit.SetCell(0, 0, ifs.NewWithPi(0.5, 0.1, 0.4)))
	require.Equal(t, [][][]float64{{{0.5, 0.1, 0.4}}}, explicit.ToSlices())
}

func TestTensorCloneAndApply(t *testing.T) {
	t.Parallel()
	m := sampleTensor(t)

	cp := m.Clone()
	require.NoError(t, cp.Apply(func(_, _, _ int, v float64) float64 { return 1 - v }))

	orig, _ := m.At(0, 0, 0)
	mod, _ := cp.At(0, 0, 0)
	require.Equal(t, 0.6, orig)
	assert.InDelta(t, 0.4, mod, 1e-12)

	strict, err := matrix.NewTensor(1, 1, 2, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestTensorFromValuesAndGrid(t *testing.T) {
	t.Parallel()

	grid := [][]ifs.Value{{ifs.New(0.5, 0.25), ifs.New(0.1, 0.8)}}
	m, err := matrix.TensorFromValues(grid, 2)
	require.NoError(t, err)

	back, err := m.Grid()
	require.NoError(t, err)
	require.Equal(t, grid, back)
	require.Equal(t, "[(0.5, 0.25), (0.1, 0.8)]\n", m.String())
}

func TestSplitTypes(t *testing.T) {
	t.Parallel()

	p, c := matrix.SplitTypes([]int{1, -1, 1, 0, -1})
	require.Equal(t, []int{0, 2}, p)
	require.Equal(t, []int{1, 4}, c)
}
