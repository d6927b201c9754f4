package packed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-packed/lanes"
)

func identity(v lanes.Vec[float32]) lanes.Vec[float32] { return v }

func TestCollectRoundTrip(t *testing.T) {
	w := lanes.MaxLanes[float32]()
	for _, n := range []int{0, 1, w - 1, w, w + 1, 2 * w, 2*w + 3, 5*w + 1} {
		data := ramp(n)
		out := Collect(Map(From(data), identity))
		assert.Equal(t, data, out, "length %d", n)
	}
}

func TestCollectWithoutMap(t *testing.T) {
	w := lanes.MaxLanes[float32]()
	data := ramp(3*w + 1)
	assert.Equal(t, data, Collect(From(data)))
}

func TestCollectEmpty(t *testing.T) {
	out := Collect(From([]float32{}))
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestFill(t *testing.T) {
	w := lanes.MaxLanes[float32]()
	data := ramp(w + 2)

	t.Run("exact buffer", func(t *testing.T) {
		dst := make([]float32, len(data))
		got := Fill(Map(From(data), double), dst)
		require.Equal(t, len(data), len(got))
		for i := range data {
			assert.Equal(t, data[i]*2, dst[i])
		}
	})

	t.Run("larger buffer keeps extra slots", func(t *testing.T) {
		dst := make([]float32, len(data)+3)
		dst[len(data)] = 99
		Fill(From(data), dst)
		assert.Equal(t, data, dst[:len(data)])
		assert.Equal(t, float32(99), dst[len(data)])
	})

	t.Run("short buffer panics", func(t *testing.T) {
		dst := make([]float32, len(data)-1)
		assert.Panics(t, func() {
			Fill(From(data), dst)
		})
	})
}

func TestFillOverwritesEverySlot(t *testing.T) {
	// Write-before-read discipline: seed the destination with a sentinel
	// the source cannot produce and verify none survives.
	w := lanes.MaxLanes[float32]()
	for _, n := range []int{1, w - 1, w, w + 1, 4*w + 2} {
		data := ramp(n)
		dst := make([]float32, n)
		for i := range dst {
			dst[i] = -12345
		}
		Fill(From(data), dst)
		for i, got := range dst {
			require.NotEqual(t, float32(-12345), got, "length %d slot %d never written", n, i)
		}
	}
}

func TestCollectAfterPartialConsumption(t *testing.T) {
	// Collect drains whatever is left of the cursor, not the whole sequence.
	w := lanes.MaxLanes[float32]()
	data := ramp(2*w + 1)
	it := From(data)
	_, ok := it.NextVector()
	require.True(t, ok)

	out := Collect(it)
	// The destination is sized by ScalarLen, but only the remaining w+1
	// elements are written, from the front; the unwritten slots stay zero.
	require.Equal(t, len(data), len(out))
	assert.Equal(t, data[w:], out[:w+1])
	for i := w + 1; i < len(out); i++ {
		assert.Equal(t, float32(0), out[i], "slot %d", i)
	}
}
