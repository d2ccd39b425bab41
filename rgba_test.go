package rgb_test

import (
	"encoding/binary"
	"math"
	"slices"
	"testing"

	"deedles.dev/rgb"
	"github.com/stretchr/testify/require"
)

func TestRGBA(t *testing.T) {
	c := rgb.RGBA8{R: 0, G: 128, B: 255, A: 33}
	require.Equal(t, uint8(255), c.B)
	require.Equal(t, uint8(33), c.A)
	require.Equal(t, c, rgb.CollectRGBA(c.All()))
	require.Equal(t, []byte{0, 128, 255, 33}, c.Bytes())
	require.Equal(t, [...]uint8{0, 128, 255, 33}, c.Array())

	require.Equal(t, "rgba(1,2,3,4)", rgb.NewRGBA(1, 2, 3, 4).String())
}

func TestRGBABytesNativeOrder(t *testing.T) {
	c := rgb.NewRGBA[float32](1, -2, 0.25, 1e9)
	data := c.Bytes()
	require.Len(t, data, 16)
	for i, v := range c.Array() {
		require.Equal(t, math.Float32bits(v), binary.NativeEndian.Uint32(data[i*4:]))
	}

	c.Slice()[3] = 0.5
	require.Equal(t, float32(0.5), c.A)
	binary.NativeEndian.PutUint32(data[4:], math.Float32bits(3))
	require.Equal(t, float32(3), c.G)
}

func TestSubFloats(t *testing.T) {
	a := rgb.RGBA[float64]{R: 3.5, G: -0.5, B: -2, A: 0}
	b := rgb.RGBA[float64]{R: 1, G: 1, B: -2, A: -5}
	require.Equal(t, rgb.RGBA[float64]{R: 2.5, G: -1.5, B: 0, A: 5}, a.Sub(b))
	require.Equal(t, a, a.Sub(b).Add(b))
}

func TestRGBAArithmetic(t *testing.T) {
	a := rgb.NewRGBA(2, 4, 6, 8)
	b := rgb.NewRGBA(1, 2, 3, 4)
	require.Equal(t, rgb.NewRGBA(3, 6, 9, 12), a.Add(b))
	require.Equal(t, rgb.NewRGBA(2, 8, 18, 32), a.Mul(b))
	require.Equal(t, rgb.NewRGBA(2, 2, 2, 2), a.Div(b))
	require.Equal(t, rgb.NewRGBA(1, 2, 3, 4), a.DivScalar(2))
	require.Equal(t, rgb.NewRGBA(0, 2, 4, 6), a.SubScalar(2))
	require.Equal(t, rgb.NewRGBA(5, 7, 9, 11), a.AddScalar(3))
	require.Equal(t, rgb.NewRGBA(6, 12, 18, 24), a.MulScalar(3))

	nan := rgb.NewRGBA(1.0, 0, -1, 0).DivScalar(0)
	require.True(t, math.IsInf(nan.R, 1))
	require.True(t, math.IsNaN(nan.G))
	require.True(t, math.IsInf(nan.B, -1))
}

func TestRGBAMap(t *testing.T) {
	c := rgb.NewRGBA[uint8](10, 20, 30, 40)
	require.Equal(t, c, c.Map(func(v uint8) uint8 { return v }))
	require.Equal(t, rgb.NewRGBA[uint8](5, 10, 15, 20), c.Map(func(v uint8) uint8 { return v / 2 }))
	require.Equal(t, rgb.NewRGBA[uint8](5, 10, 15, 40), c.MapRGB(func(v uint8) uint8 { return v / 2 }))
	require.Equal(t, rgb.NewRGBA[uint8](10, 20, 30, 255), c.MapAlpha(func(uint8) uint8 { return 255 }))

	f := func(v uint8) int { return int(v) - 25 }
	g := func(v int) float32 { return float32(v) / 2 }
	require.Equal(t,
		rgb.MapRGBA(rgb.MapRGBA(c, f), g),
		rgb.MapRGBA(c, func(v uint8) float32 { return g(f(v)) }),
	)
	require.Equal(t, rgb.NewRGBA[float32](-7.5, -2.5, 2.5, 7.5), rgb.MapRGBA(c, func(v uint8) float32 { return g(f(v)) }))
}

func TestRGBACompare(t *testing.T) {
	a := rgb.NewRGBA(1, 2, 3, 4)
	require.Zero(t, a.Compare(a))
	require.Negative(t, a.Compare(rgb.NewRGBA(1, 2, 3, 5)))
	require.Positive(t, a.Compare(rgb.NewRGBA(1, 2, 2, 9)))

	n := rgb.NewRGBA(math.NaN(), 0, 0, 0)
	require.Zero(t, n.Compare(n))
	require.Negative(t, n.Compare(rgb.NewRGBA(math.Inf(-1), 0, 0, 0)))
}

func TestCollectRGBA(t *testing.T) {
	require.Equal(t, rgb.NewRGBA(1, 2, 3, 0), rgb.CollectRGBA(slices.Values([]int{1, 2, 3})))
	require.Equal(t, rgb.RGBA[int]{}, rgb.CollectRGBA(slices.Values([]int(nil))))
}
