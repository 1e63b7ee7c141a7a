// SPDX-License-Identifier: MIT

package weights_test

import (
	"testing"

	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/weights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tensor(t *testing.T, cells [][][]float64) *matrix.Tensor {
	t.Helper()
	m, err := matrix.TensorFrom(cells)
	require.NoError(t, err)

	return m
}

// fourByFive is a four-alternative, five-criterion IFS matrix.
func fourByFive(t *testing.T) *matrix.Tensor {
	return tensor(t, [][][]float64{
		{{0.41, 0.38}, {0.48, 0.57}, {0.36, 0.43}, {0.33, 0.37}, {0.28, 0.34}},
		{{0.46, 0.37}, {0.48, 0.39}, {0.37, 0.41}, {0.35, 0.44}, {0.51, 0.39}},
		{{0.36, 0.39}, {0.21, 0.37}, {0.41, 0.38}, {0.28, 0.34}, {0.32, 0.46}},
		{{0.51, 0.39}, {0.37, 0.45}, {0.32, 0.46}, {0.37, 0.57}, {0.37, 0.45}},
	})
}

func TestReferenceWeights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		f     weights.Func
		cells [][][]float64
		want  []float64
	}{
		{"entropy", weights.Entropy, [][][]float64{
			{{0.75, 0.1}, {0.6, 0.25}, {0.8, 0.2}},
			{{0.8, 0.15}, {0.68, 0.2}, {0.45, 0.5}},
			{{0.4, 0.45}, {0.75, 0.05}, {0.6, 0.3}},
		}, []float64{0.2452, 0.1826, 0.5722}},
		{"liu", weights.Liu, [][][]float64{{{0.4, 0.1}}}, []float64{0.7883}},
		{"szmidt", weights.Szmidt, [][][]float64{{{0.5, 0, 0.5}}, {{0, 0.5, 0.5}}}, []float64{0.5}},
		{"ye", weights.Ye, [][][]float64{{{0.2, 0.5}}}, []float64{0.9057}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w, err := tc.f.Derive(tensor(t, tc.cells))
			require.NoError(t, err)
			require.True(t, w.IsCrisp())
			assert.InDeltaSlice(t, tc.want, w.Crisp(), 1e-4)
		})
	}
}

func TestNormalizedWeights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f    weights.Func
		want []float64
	}{
		{weights.Burillo, []float64{0.2057, 0.2088, 0.1975, 0.1918, 0.1962}},
		{weights.Thakur, []float64{0.2004, 0.2804, 0.1714, 0.1563, 0.1914}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.f.Name, func(t *testing.T) {
			t.Parallel()
			w, err := tc.f.Derive(fourByFive(t))
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, w.Crisp(), 1e-4)
			assert.InDelta(t, 1, w.Sum(), 1e-9)
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	w, err := weights.Equal.Derive(fourByFive(t))
	require.NoError(t, err)
	require.False(t, w.IsCrisp())
	require.Equal(t, 5, w.Len())
	for j := 0; j < w.Len(); j++ {
		mu, nu := w.Pair(j)
		assert.Equal(t, 0.5, mu)
		assert.Equal(t, 0.5, nu)
	}
}

func TestDeriveErrors(t *testing.T) {
	t.Parallel()

	_, err := weights.Entropy.Derive(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = weights.Burillo.Derive(tensor(t, [][][]float64{{{0.4}}}))
	require.ErrorIs(t, err, matrix.ErrComponents)

	// No hesitancy anywhere in the column.
	_, err = weights.Entropy.Derive(tensor(t, [][][]float64{{{0.6, 0.4}}, {{0.3, 0.7}}}))
	require.ErrorIs(t, err, weights.ErrZeroHesitancy)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"burillo", "entropy", "equal", "liu", "szmidt", "thakur", "ye"}, weights.Names())

	f, err := weights.Lookup("ye")
	require.NoError(t, err)
	assert.Equal(t, "ye", f.Name)

	_, err = weights.Lookup("critic")
	require.ErrorIs(t, err, weights.ErrUnknown)
}
