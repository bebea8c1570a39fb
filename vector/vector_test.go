package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/vector"
)

const eps = 1e-9

func TestDot(t *testing.T) {
	got, err := vector.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, got)

	got, err = vector.Dot(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = vector.Dot([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestNorm(t *testing.T) {
	assert.Equal(t, 5.0, vector.Norm([]float64{3, 4}))
	assert.Zero(t, vector.Norm(nil))
	assert.InDelta(t, math.Sqrt(14), vector.Norm([]float64{1, -2, 3}), eps)
}

func TestAngle(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, math.Pi / 2},
		{"parallel", []float64{1, 1}, []float64{2, 2}, 0},
		{"opposite", []float64{1, 0}, []float64{-3, 0}, math.Pi},
		{"diagonal", []float64{1, 0}, []float64{1, 1}, math.Pi / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := vector.Angle(tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, eps)
		})
	}

	deg, err := vector.AngleDegrees([]float64{1, 0}, []float64{0, 5})
	require.NoError(t, err)
	assert.InDelta(t, 90, deg, eps)
}

func TestAngle_NearlyParallel(t *testing.T) {
	got, err := vector.Angle([]float64{1, 1e-9}, []float64{3, 0})
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-9, got, 1e-6)

	got, err = vector.Angle([]float64{0.1, 0.2, 0.3}, []float64{0.3, 0.6, 0.9})
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-14)
}

func TestAngle_Errors(t *testing.T) {
	_, err := vector.Angle([]float64{0, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, vector.ErrZeroVector)

	_, err = vector.Angle(nil, nil)
	assert.ErrorIs(t, err, vector.ErrEmpty)

	_, err = vector.AngleDegrees([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestArithmetic(t *testing.T) {
	sum, err := vector.Add([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, sum)

	diff, err := vector.Sub([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, diff)

	_, err = vector.Add([]float64{1}, nil)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	assert.Equal(t, []float64{2, -4}, vector.Scale([]float64{1, -2}, 2))

	unit, err := vector.Normalize([]float64{0, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1, vector.Norm(unit), eps)
	_, err = vector.Normalize([]float64{0, 0})
	assert.ErrorIs(t, err, vector.ErrZeroVector)
}

func TestVectorType(t *testing.T) {
	v := vector.Vector{3, 4}
	w := vector.Vector{4, -3}

	dot, err := v.Dot(w)
	require.NoError(t, err)
	assert.Zero(t, dot)
	assert.Equal(t, 5.0, v.Len())

	ang, err := v.AngleWith(w)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, ang, eps)

	assert.True(t, v.Equal(vector.Vector{3, 4}))
	assert.False(t, v.Equal(w))
	assert.False(t, v.Equal(vector.Vector{3}))
	assert.Equal(t, "Vector([3 4])", v.String())
}
