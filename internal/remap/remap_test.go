package remap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRemap(t *testing.T, v, vmin, vmax, tmin, tmax float32) float32 {
	t.Helper()
	out, err := Remap(v, vmin, vmax, tmin, tmax)
	require.NoError(t, err)
	return out
}

func TestRemapExamples(t *testing.T) {
	assert.Equal(t, float32(-100), mustRemap(t, -1, -1, 1, -100, 100))
	assert.Equal(t, float32(100), mustRemap(t, 1, -1, 1, -100, 100))
	assert.Equal(t, float32(200), mustRemap(t, 0, -1, 1, 125, 275))
	assert.Equal(t, float32(50), mustRemap(t, 0.5, -1, 1, -100, 100))
	assert.Equal(t, float32(162.5), mustRemap(t, -0.5, -1, 1, 125, 275))
}

func TestRemapClamps(t *testing.T) {
	for _, v := range []float32{-1, -1.5, -10, -1e9} {
		assert.Equal(t, float32(125), mustRemap(t, v, -1, 1, 125, 275), "v=%g", v)
	}
	for _, v := range []float32{1, 1.0001, 3, 1e9} {
		assert.Equal(t, float32(275), mustRemap(t, v, -1, 1, 125, 275), "v=%g", v)
	}
}

func TestRemapExactBounds(t *testing.T) {
	assert.Equal(t, float32(0.1), mustRemap(t, 2, 2, 7, 0.1, 0.3))
	assert.Equal(t, float32(0.3), mustRemap(t, 7, 2, 7, 0.1, 0.3))
}

func TestRemapMonotonic(t *testing.T) {
	prev := mustRemap(t, -1, -1, 1, -100, 100)
	for i := 1; i <= 200; i++ {
		v := -1 + float32(i)*0.01
		out := mustRemap(t, v, -1, 1, -100, 100)
		assert.GreaterOrEqual(t, out, prev, "v=%g", v)
		prev = out
	}

	prev = mustRemap(t, -1, -1, 1, 100, -100)
	for i := 1; i <= 200; i++ {
		v := -1 + float32(i)*0.01
		out := mustRemap(t, v, -1, 1, 100, -100)
		assert.LessOrEqual(t, out, prev, "v=%g", v)
		prev = out
	}
}

func TestRemapIdempotent(t *testing.T) {
	a := mustRemap(t, 0.37, -1, 1, 125, 275)
	b := mustRemap(t, 0.37, -1, 1, 125, 275)
	assert.Equal(t, a, b)
}

func TestRemapInvalidRange(t *testing.T) {
	_, err := Remap(0, 1, 1, 0, 10)
	assert.True(t, errors.Is(err, ErrInvalidRange))
	_, err = Remap(0, 2, -2, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestMapping(t *testing.T) {
	m := Mapping{From: Range{-1, 1}, To: Range{-100, 100}}
	require.NoError(t, m.Validate())
	assert.Equal(t, float32(50), m.Apply(0.5))
	assert.Equal(t, float32(-100), m.Apply(-4))

	bad := Mapping{From: Range{1, -1}, To: Range{3, 4}}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidRange)
	assert.Equal(t, float32(3), bad.Apply(0))
}
