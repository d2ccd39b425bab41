package rgb

import (
	"cmp"
	"fmt"
	"iter"
	"unsafe"
)

// Common instantiations of RGB.
type (
	RGB8  = RGB[uint8]
	RGB16 = RGB[uint16]
)

// RGB is a color with red, green and blue components. The layout in
// memory is exactly three consecutive values of T.
type RGB[T Component] struct {
	R, G, B T
}

// NewRGB returns an RGB with the given components.
func NewRGB[T Component](r, g, b T) RGB[T] {
	return RGB[T]{R: r, G: g, B: b}
}

// CollectRGB builds an RGB from the first three values yielded by s.
// Components that s doesn't provide are left as zero.
func CollectRGB[T Component](s iter.Seq[T]) (c RGB[T]) {
	collect(c.Slice(), s)
	return c
}

// MapRGB returns a new RGB, possibly of a different component type,
// with f applied to each component of c in order.
func MapRGB[U, T Component](c RGB[T], f func(T) U) RGB[U] {
	return RGB[U]{R: f(c.R), G: f(c.G), B: f(c.B)}
}

func (c *RGB[T]) Slice() []T {
	return (*[3]T)(unsafe.Pointer(c))[:]
}

func (c *RGB[T]) Bytes() []byte {
	return asBytes(c, unsafe.Sizeof(*c))
}

// Array returns a copy of the components of c.
func (c RGB[T]) Array() [3]T {
	return [...]T{c.R, c.G, c.B}
}

// All yields the components of c in order.
func (c RGB[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = yield(c.R) && yield(c.G) && yield(c.B)
	}
}

// Map is like [MapRGB] but keeps the component type.
func (c RGB[T]) Map(f func(T) T) RGB[T] {
	return MapRGB(c, f)
}

// Alpha returns c with an alpha component added.
func (c RGB[T]) Alpha(a T) RGBA[T] {
	return RGBA[T]{R: c.R, G: c.G, B: c.B, A: a}
}

// Compare compares c and o lexicographically, with R being the most
// significant. Components are compared with [cmp.Compare].
func (c RGB[T]) Compare(o RGB[T]) int {
	return cmp.Or(
		cmp.Compare(c.R, o.R),
		cmp.Compare(c.G, o.G),
		cmp.Compare(c.B, o.B),
	)
}

func (c RGB[T]) String() string {
	return fmt.Sprintf("rgb(%v,%v,%v)", c.R, c.G, c.B)
}

func (c RGB[T]) combine(o RGB[T], op func(T, T) T) (r RGB[T]) {
	pointwise(r.Slice(), c.Slice(), o.Slice(), op)
	return r
}

func (c RGB[T]) scalar(s T, op func(T, T) T) (r RGB[T]) {
	broadcast(r.Slice(), c.Slice(), s, op)
	return r
}

func (c RGB[T]) Add(o RGB[T]) RGB[T] { return c.combine(o, add[T]) }
func (c RGB[T]) Sub(o RGB[T]) RGB[T] { return c.combine(o, sub[T]) }
func (c RGB[T]) Mul(o RGB[T]) RGB[T] { return c.combine(o, mul[T]) }
func (c RGB[T]) Div(o RGB[T]) RGB[T] { return c.combine(o, div[T]) }

func (c RGB[T]) AddScalar(s T) RGB[T] { return c.scalar(s, add[T]) }
func (c RGB[T]) SubScalar(s T) RGB[T] { return c.scalar(s, sub[T]) }
func (c RGB[T]) MulScalar(s T) RGB[T] { return c.scalar(s, mul[T]) }
func (c RGB[T]) DivScalar(s T) RGB[T] { return c.scalar(s, div[T]) }
