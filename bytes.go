package rgb

import "unsafe"

// RGBBytes returns the raw memory backing s, so that index 0 is the
// first byte of s[0].R, and so on. No copy is made. The byte order of
// each component is the machine's native one.
func RGBBytes[T Component](s []RGB[T]) []byte {
	return sliceBytes(s)
}

// RGBABytes is the RGBA equivalent of [RGBBytes].
func RGBABytes[T Component](s []RGBA[T]) []byte {
	return sliceBytes(s)
}

func sliceBytes[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}

	var zero E
	return asBytes(unsafe.SliceData(s), uintptr(len(s))*unsafe.Sizeof(zero))
}
