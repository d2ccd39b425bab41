// Package rgb provides generic RGB and RGBA pixel values.
//
// The color types are plain structs parameterized over their component
// type, so RGB[uint8] is three bytes with no padding and a []RGB[uint8]
// can be handed to anything expecting packed 24-bit pixel data. See
// [RGBBytes] and the Bytes methods for the zero-copy views.
package rgb

import (
	"iter"
	"unsafe"

	"deedles.dev/xiter"
	"golang.org/x/exp/constraints"
)

// Component is a constraint for the types that can be used as the
// components of a color.
type Component interface {
	constraints.Integer | constraints.Float
}

// Components is implemented by pointers to the color types. It
// exposes the components of a color in place, without copying.
type Components[T Component] interface {
	// Slice returns the components of the color as a slice that
	// aliases the color itself. The red component is first.
	Slice() []T

	// Bytes returns the raw memory of the color in the machine's
	// native byte order. Bytes of the red component are first.
	//
	// This is an escape hatch for passing pixel data to code that
	// isn't type-safe. It is not a portable encoding.
	Bytes() []byte
}

var (
	_ Components[uint8]   = (*RGB[uint8])(nil)
	_ Components[float64] = (*RGBA[float64])(nil)
)

// asBytes reinterprets the memory pointed to by p as n bytes.
func asBytes[T any](p *T, n uintptr) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// pointwise sets each element of dst to op applied to the
// corresponding elements of a and b, first to last.
func pointwise[T Component](dst, a, b []T, op func(T, T) T) {
	for i := range dst {
		dst[i] = op(a[i], b[i])
	}
}

// broadcast is like pointwise but uses s as every right-hand operand.
func broadcast[T Component](dst, a []T, s T, op func(T, T) T) {
	for i := range dst {
		dst[i] = op(a[i], s)
	}
}

// collect fills dst from the start of s. Values past len(dst) are
// ignored.
func collect[T Component](dst []T, s iter.Seq[T]) {
	for i, v := range xiter.Enumerate(s) {
		if i >= len(dst) {
			return
		}
		dst[i] = v
	}
}

func add[T Component](a, b T) T { return a + b }
func sub[T Component](a, b T) T { return a - b }
func mul[T Component](a, b T) T { return a * b }
func div[T Component](a, b T) T { return a / b }
