package packed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-packed/lanes"
)

func ramp(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i + 1)
	}
	return out
}

func TestSlicePositionAccounting(t *testing.T) {
	w := lanes.MaxLanes[float32]()
	data := ramp(2*w + 2)
	it := From(data)

	require.Equal(t, len(data), it.ScalarLen())
	require.Equal(t, 0, it.ScalarPosition())
	require.Equal(t, w, it.Width())

	v, ok := it.NextVector()
	require.True(t, ok)
	assert.Equal(t, data[:w], v.Data())
	assert.Equal(t, w, it.ScalarPosition())

	v, ok = it.NextVector()
	require.True(t, ok)
	assert.Equal(t, data[w:2*w], v.Data())
	assert.Equal(t, 2*w, it.ScalarPosition())

	// Two scalars left: the full-vector step refuses and holds position.
	_, ok = it.NextVector()
	assert.False(t, ok)
	assert.Equal(t, 2*w, it.ScalarPosition())
}

func TestSlicePartialTail(t *testing.T) {
	w := lanes.MaxLanes[float32]()
	data := ramp(2*w + 2)
	it := From(data)

	for {
		if _, ok := it.NextVector(); !ok {
			break
		}
	}

	def := lanes.Splat(float32(-9))
	v, ok := it.NextPartial(def)
	require.True(t, ok)
	assert.Equal(t, data[2*w], lanes.GetLane(v, 0))
	assert.Equal(t, data[2*w+1], lanes.GetLane(v, 1))
	for i := 2; i < w; i++ {
		assert.Equal(t, float32(-9), lanes.GetLane(v, i), "pad lane %d", i)
	}
	assert.Equal(t, it.ScalarLen(), it.ScalarPosition())
}

func TestSlicePartialTailNonSplatDefault(t *testing.T) {
	w := lanes.MaxLanes[float32]()
	if w < 2 {
		t.Skip("width too small to pad")
	}
	it := From(ramp(1))

	def := lanes.Load(ramp(w)) // distinct value per lane
	v, ok := it.NextPartial(def)
	require.True(t, ok)
	assert.Equal(t, float32(1), lanes.GetLane(v, 0))
	for i := 1; i < w; i++ {
		assert.Equal(t, lanes.GetLane(def, i), lanes.GetLane(v, i), "pad lane %d should come from the matching default lane", i)
	}
}

func TestSliceAtMostOnePartial(t *testing.T) {
	w := lanes.MaxLanes[float32]()
	it := From(ramp(w + 1))

	_, ok := it.NextVector()
	require.True(t, ok)

	_, ok = it.NextPartial(lanes.Zero[float32]())
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		_, ok = it.NextPartial(lanes.Zero[float32]())
		assert.False(t, ok, "repeated NextPartial must keep returning false")
		assert.Equal(t, it.ScalarLen(), it.ScalarPosition())
	}
}

func TestSliceExactMultiple(t *testing.T) {
	w := lanes.MaxLanes[float32]()
	it := From(ramp(2 * w))

	count := 0
	for {
		if _, ok := it.NextVector(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, 2, count)

	_, ok := it.NextPartial(lanes.Zero[float32]())
	assert.False(t, ok, "no spurious partial when the tail is empty")
}

func TestSliceEmpty(t *testing.T) {
	it := From([]float32{})

	_, ok := it.NextVector()
	assert.False(t, ok)
	_, ok = it.NextPartial(lanes.Splat(float32(5)))
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, it.ScalarPosition())
}

func TestSliceScalarNextSharesCursor(t *testing.T) {
	w := lanes.MaxLanes[float32]()
	data := ramp(w + 2)
	it := From(data)

	_, ok := it.NextVector()
	require.True(t, ok)

	s, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, data[w], s)
	assert.Equal(t, w+1, it.ScalarPosition())

	s, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, data[w+1], s)

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestSlicePartialWithFullVectorRemainingPanics(t *testing.T) {
	w := lanes.MaxLanes[float32]()
	it := From(ramp(w))

	assert.Panics(t, func() {
		it.NextPartial(lanes.Zero[float32]())
	}, "NextPartial before draining NextVector must not drop elements silently")
}

func TestOf(t *testing.T) {
	it := Of[int32](1, 2, 3)
	assert.Equal(t, 3, it.ScalarLen())

	s, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, int32(1), s)
}
