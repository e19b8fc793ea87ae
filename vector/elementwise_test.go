// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecalc/vector"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, vector.Vector{1, 2, 0, 3.5}, vector.Abs(vector.Vector{-1, 2, 0, -3.5}))
}

func TestMinMax(t *testing.T) {
	a := vector.Vector{1, 5, -3}
	b := vector.Vector{2, 4, -3}

	lo, err := vector.Min(a, b)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{1, 4, -3}, lo)

	hi, err := vector.Max(a, b)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{2, 5, -3}, hi)
}

func TestFloorCeil(t *testing.T) {
	v := vector.Vector{1.5, -1.5, 2, -0.2}
	assert.Equal(t, vector.Vector{1, -2, 2, -1}, vector.Floor(v))
	assert.Equal(t, vector.Vector{2, -1, 2, 0}, vector.Ceil(v))
}

func TestSnap(t *testing.T) {
	got, err := vector.Snap(vector.Vector{2.5, 3.7, -1.2}, 1)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{2, 4, -1}, got)

	got, err = vector.Snap(vector.Vector{1.26, 0.74}, 0.5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 0.5}, []float64(got), tol)

	got, err = vector.Snap(vector.Vector{7, 13}, 5)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{5, 15}, got)
}

func TestSnap_ZeroIncrement(t *testing.T) {
	got, err := vector.Snap(vector.Vector{1, 2}, 0)
	assert.ErrorIs(t, err, vector.ErrDegenerateInput)
	assert.Nil(t, got)
}

func TestClamp(t *testing.T) {
	got, err := vector.Clamp(
		vector.Vector{5, -2, 10},
		vector.Vector{0, 0, 0},
		vector.Vector{8, 8, 8},
	)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{5, 0, 8}, got)
}

func TestClamp_DimensionMismatch(t *testing.T) {
	_, err := vector.Clamp(vector.Vector{1, 2}, vector.Vector{0}, vector.Vector{3, 3})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = vector.Clamp(vector.Vector{1, 2}, vector.Vector{0, 0}, vector.Vector{3})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestTrig(t *testing.T) {
	v := vector.Vector{0, math.Pi / 2, math.Pi}
	assert.InDeltaSlice(t, []float64{0, 1, 0}, []float64(vector.Sin(v)), tol)
	assert.InDeltaSlice(t, []float64{1, 0, -1}, []float64(vector.Cos(v)), tol)
	assert.InDeltaSlice(t, []float64{0, 1}, []float64(vector.Tan(vector.Vector{0, math.Pi / 4})), tol)
}
