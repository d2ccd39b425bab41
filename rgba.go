package rgb

import (
	"cmp"
	"fmt"
	"iter"
	"unsafe"
)

// Common instantiations of RGBA.
type (
	RGBA8  = RGBA[uint8]
	RGBA16 = RGBA[uint16]
)

// RGBA is an RGB color with an alpha component. The alpha component
// is not premultiplied into the others by any of the methods in this
// package. The layout in memory is exactly four consecutive values of
// T.
type RGBA[T Component] struct {
	R, G, B, A T
}

// NewRGBA returns an RGBA with the given components.
func NewRGBA[T Component](r, g, b, a T) RGBA[T] {
	return RGBA[T]{R: r, G: g, B: b, A: a}
}

// CollectRGBA builds an RGBA from the first four values yielded by s.
// Components that s doesn't provide are left as zero.
func CollectRGBA[T Component](s iter.Seq[T]) (c RGBA[T]) {
	collect(c.Slice(), s)
	return c
}

// MapRGBA returns a new RGBA, possibly of a different component type,
// with f applied to each component of c, alpha included, in order.
func MapRGBA[U, T Component](c RGBA[T], f func(T) U) RGBA[U] {
	return RGBA[U]{R: f(c.R), G: f(c.G), B: f(c.B), A: f(c.A)}
}

func (c *RGBA[T]) Slice() []T {
	return (*[4]T)(unsafe.Pointer(c))[:]
}

func (c *RGBA[T]) Bytes() []byte {
	return asBytes(c, unsafe.Sizeof(*c))
}

// Array returns a copy of the components of c.
func (c RGBA[T]) Array() [4]T {
	return [...]T{c.R, c.G, c.B, c.A}
}

// All yields the components of c in order, ending with alpha.
func (c RGBA[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = yield(c.R) && yield(c.G) && yield(c.B) && yield(c.A)
	}
}

// Map is like [MapRGBA] but keeps the component type.
func (c RGBA[T]) Map(f func(T) T) RGBA[T] {
	return MapRGBA(c, f)
}

// MapRGB applies f to the color components of c, leaving alpha alone.
func (c RGBA[T]) MapRGB(f func(T) T) RGBA[T] {
	return MapRGB(c.RGB(), f).Alpha(c.A)
}

// MapAlpha applies f to the alpha component of c only.
func (c RGBA[T]) MapAlpha(f func(T) T) RGBA[T] {
	c.A = f(c.A)
	return c
}

// RGB returns c without its alpha component.
func (c RGBA[T]) RGB() RGB[T] {
	return RGB[T]{R: c.R, G: c.G, B: c.B}
}

// Compare compares c and o lexicographically in field order, with
// alpha being the least significant.
func (c RGBA[T]) Compare(o RGBA[T]) int {
	return cmp.Or(
		c.RGB().Compare(o.RGB()),
		cmp.Compare(c.A, o.A),
	)
}

func (c RGBA[T]) String() string {
	return fmt.Sprintf("rgba(%v,%v,%v,%v)", c.R, c.G, c.B, c.A)
}

func (c RGBA[T]) combine(o RGBA[T], op func(T, T) T) (r RGBA[T]) {
	pointwise(r.Slice(), c.Slice(), o.Slice(), op)
	return r
}

func (c RGBA[T]) scalar(s T, op func(T, T) T) (r RGBA[T]) {
	broadcast(r.Slice(), c.Slice(), s, op)
	return r
}

func (c RGBA[T]) Add(o RGBA[T]) RGBA[T] { return c.combine(o, add[T]) }
func (c RGBA[T]) Sub(o RGBA[T]) RGBA[T] { return c.combine(o, sub[T]) }
func (c RGBA[T]) Mul(o RGBA[T]) RGBA[T] { return c.combine(o, mul[T]) }
func (c RGBA[T]) Div(o RGBA[T]) RGBA[T] { return c.combine(o, div[T]) }

// AddScalar adds s to every component, alpha included. The other
// scalar methods behave the same way.
func (c RGBA[T]) AddScalar(s T) RGBA[T] { return c.scalar(s, add[T]) }
func (c RGBA[T]) SubScalar(s T) RGBA[T] { return c.scalar(s, sub[T]) }
func (c RGBA[T]) MulScalar(s T) RGBA[T] { return c.scalar(s, mul[T]) }
func (c RGBA[T]) DivScalar(s T) RGBA[T] { return c.scalar(s, div[T]) }
