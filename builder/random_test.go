// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ifdm/builder"
	"github.com/katalvlaran/ifdm/matrix"
	"github.com/katalvlaran/ifdm/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seed = 42

func TestRandomIFSMatrixShapeAndValidity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		m, n  int
		comps int
		opts  []builder.Option
	}{
		{"pairs", 4, 6, 2, []builder.Option{builder.WithSeed(seed)}},
		{"triples", 3, 2, 3, []builder.Option{builder.WithSeed(seed), builder.WithComponents(3)}},
		{"single cell", 1, 1, 2, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.RandomIFSMatrix(tc.m, tc.n, tc.opts...)
			require.NoError(t, err)
			r, c, k := m.Shape()
			require.Equal(t, []int{tc.m, tc.n, tc.comps}, []int{r, c, k})

			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					v, err := m.Cell(i, j)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, v.Mu, 0.0)
					assert.GreaterOrEqual(t, v.Nu, 0.0)
					assert.LessOrEqual(t, v.Mu+v.Nu, 1.0)
					assert.InDelta(t, 1.0, v.Mu+v.Nu+v.Pi, 1e-12)
				}
			}
		})
	}
}

func TestSeedIsReproducible(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomIFSMatrix(5, 4, builder.WithSeed(seed))
	require.NoError(t, err)
	b, err := builder.RandomIFSMatrix(5, 4, builder.WithRand(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)
	assert.Equal(t, a.ToSlices(), b.ToSlices())

	c, err := builder.RandomIFSMatrix(5, 4, builder.WithSeed(seed+1))
	require.NoError(t, err)
	assert.NotEqual(t, a.ToSlices(), c.ToSlices())
}

func TestGeneratedProblemValidates(t *testing.T) {
	t.Parallel()

	m, err := builder.RandomIFSMatrix(6, 5, builder.WithSeed(seed))
	require.NoError(t, err)
	w, err := builder.RandomWeights(5, builder.WithSeed(seed))
	require.NoError(t, err)
	types, err := builder.RandomTypes(5, builder.WithSeed(seed))
	require.NoError(t, err)

	require.NoError(t, validator.Validate(m, w, types,
		validator.RequireMixedTypes(), validator.RequireCrispWeights()))

	fw, err := builder.RandomFuzzyWeights(5, builder.WithSeed(seed), builder.WithComponents(3))
	require.NoError(t, err)
	assert.False(t, fw.IsCrisp())
	assert.Equal(t, 3, fw.Comps())
	require.NoError(t, validator.Validate(m, fw, types))
}

func TestRandomWeightsSumToOne(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 7, 30} {
		w, err := builder.RandomWeights(n, builder.WithSeed(int64(n)))
		require.NoError(t, err)
		require.Equal(t, n, w.Len())
		assert.InDelta(t, 1.0, w.Sum(), 1e-9)
		for _, v := range w.Crisp() {
			assert.Greater(t, v, 0.0)
		}
	}
}

func TestRandomTypesAreMixed(t *testing.T) {
	t.Parallel()

	for s := int64(0); s < 20; s++ {
		types, err := builder.RandomTypes(2, builder.WithSeed(s))
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{matrix.Profit, matrix.Cost}, types)
	}

	one, err := builder.RandomTypes(1, builder.WithSeed(seed))
	require.NoError(t, err)
	assert.Contains(t, []int{matrix.Profit, matrix.Cost}, one[0])
}

func TestTooFew(t *testing.T) {
	t.Parallel()

	_, err := builder.RandomIFSMatrix(0, 3)
	require.ErrorIs(t, err, builder.ErrTooFew)
	_, err = builder.RandomIFSMatrix(3, -1)
	require.ErrorIs(t, err, builder.ErrTooFew)
	_, err = builder.RandomWeights(0)
	require.ErrorIs(t, err, builder.ErrTooFew)
	_, err = builder.RandomFuzzyWeights(0)
	require.ErrorIs(t, err, builder.ErrTooFew)
	_, err = builder.RandomTypes(0)
	require.ErrorIs(t, err, builder.ErrTooFew)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithComponents(1) })
	assert.Panics(t, func() { builder.WithComponents(4) })
}
