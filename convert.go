package rgb

// ConvertRGB converts each component of c to U using Go's normal
// numeric conversion. Widening conversions, such as uint8 to uint16
// or uint16 to float32, are exact. Narrowing conversions truncate the
// same way a plain conversion of each component would; use
// [LosslessRGB] first if that matters.
func ConvertRGB[U, T Component](c RGB[T]) RGB[U] {
	return MapRGB(c, convert[U, T])
}

// ConvertRGBA is the RGBA equivalent of [ConvertRGB].
func ConvertRGBA[U, T Component](c RGBA[T]) RGBA[U] {
	return MapRGBA(c, convert[U, T])
}

// LosslessRGB reports whether converting c to component type U and
// back again yields the same components.
func LosslessRGB[U, T Component](c RGB[T]) bool {
	return ConvertRGB[T](ConvertRGB[U](c)).equal(c)
}

// LosslessRGBA is the RGBA equivalent of [LosslessRGB].
func LosslessRGBA[U, T Component](c RGBA[T]) bool {
	return LosslessRGB[U](c.RGB()) && lossless[U](c.A)
}

func convert[U, T Component](v T) U {
	return U(v)
}

func lossless[U, T Component](v T) bool {
	return same(T(U(v)), v)
}

// same is like == but also considers NaN equal to NaN.
func same[T Component](a, b T) bool {
	return a == b || (a != a && b != b)
}

func (c RGB[T]) equal(o RGB[T]) bool {
	return same(c.R, o.R) && same(c.G, o.G) && same(c.B, o.B)
}
