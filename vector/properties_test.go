// SPDX-License-Identifier: MIT

package vector_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecalc/vector"
)

// propTrials is the number of random cases per property.
const propTrials = 200

// randVector returns a deterministic pseudo-random vector of length n with
// components in [-100, 100).
func randVector(rng *rand.Rand, n int) vector.Vector {
	v := make(vector.Vector, n)
	for i := range v {
		v[i] = rng.Float64()*200 - 100
	}

	return v
}

func TestProperty_AddSubRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < propTrials; trial++ {
		n := 1 + rng.Intn(8)
		a, b := randVector(rng, n), randVector(rng, n)

		sum, err := vector.Add(a, b)
		require.NoError(t, err)
		back, err := vector.Sub(sum, b)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64(a), []float64(back), 1e-9)
	}
}

func TestProperty_DotCommutes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < propTrials; trial++ {
		n := 1 + rng.Intn(8)
		a, b := randVector(rng, n), randVector(rng, n)

		ab, err := vector.Dot(a, b)
		require.NoError(t, err)
		ba, err := vector.Dot(b, a)
		require.NoError(t, err)
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestProperty_CrossAntiCommutes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < propTrials; trial++ {
		a, b := randVector(rng, 3), randVector(rng, 3)

		ab, err := vector.Cross(a, b)
		require.NoError(t, err)
		ba, err := vector.Cross(b, a)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64(ab), []float64(vector.Scale(ba, -1)), 1e-9)
	}
}

func TestProperty_LengthIsDistanceFromOrigin(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < propTrials; trial++ {
		v := randVector(rng, 1+rng.Intn(8))

		d, err := vector.Distance(v, vector.Zeros(len(v)))
		require.NoError(t, err)
		assert.InDelta(t, vector.Length(v), d, 1e-9)
		assert.GreaterOrEqual(t, d, 0.0)
	}
}

func TestProperty_FloorCeilBracket(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < propTrials; trial++ {
		v := randVector(rng, 1+rng.Intn(8))
		lo, hi := vector.Floor(v), vector.Ceil(v)
		for i := range v {
			assert.LessOrEqual(t, lo[i], v[i])
			assert.LessOrEqual(t, v[i], hi[i])
		}
	}
}

func TestProperty_ClampWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for trial := 0; trial < propTrials; trial++ {
		n := 1 + rng.Intn(8)
		v, x, y := randVector(rng, n), randVector(rng, n), randVector(rng, n)
		lo, err := vector.Min(x, y)
		require.NoError(t, err)
		hi, err := vector.Max(x, y)
		require.NoError(t, err)

		got, err := vector.Clamp(v, lo, hi)
		require.NoError(t, err)
		for i := range got {
			assert.GreaterOrEqual(t, got[i], lo[i])
			assert.LessOrEqual(t, got[i], hi[i])
		}
	}
}

// TestProperty_MismatchHasNoPartialResult checks every binary kernel rejects
// operands of different lengths without producing output.
func TestProperty_MismatchHasNoPartialResult(t *testing.T) {
	a := vector.Vector{1, 2, 3}
	b := vector.Vector{1, 2}

	vecOps := map[string]func() (vector.Vector, error){
		"Add":         func() (vector.Vector, error) { return vector.Add(a, b) },
		"Sub":         func() (vector.Vector, error) { return vector.Sub(a, b) },
		"Project":     func() (vector.Vector, error) { return vector.Project(a, b) },
		"Reflect":     func() (vector.Vector, error) { return vector.Reflect(a, b) },
		"Refract":     func() (vector.Vector, error) { return vector.Refract(a, b, 1.5) },
		"FaceForward": func() (vector.Vector, error) { return vector.FaceForward(a, b) },
		"Min":         func() (vector.Vector, error) { return vector.Min(a, b) },
		"Max":         func() (vector.Vector, error) { return vector.Max(a, b) },
		"Clamp":       func() (vector.Vector, error) { return vector.Clamp(a, b, a) },
	}
	for name, op := range vecOps {
		t.Run(name, func(t *testing.T) {
			got, err := op()
			assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
			assert.Nil(t, got)
		})
	}

	scalarOps := map[string]func() (float64, error){
		"Dot":      func() (float64, error) { return vector.Dot(a, b) },
		"Distance": func() (float64, error) { return vector.Distance(a, b) },
	}
	for name, op := range scalarOps {
		t.Run(name, func(t *testing.T) {
			got, err := op()
			assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
			assert.Zero(t, got)
		})
	}
}
