// Package format converts between raw pixel data and the
// alpha-premultiplied 16-bit values used by [color.Color], using the
// color types of package rgb to lay out the bytes.
package format

import "deedles.dev/rgb"

// Format is a raw pixel format. This package contains several
// predefined formats, such as [ARGB8888].
type Format interface {
	// Size returns the number of bytes per pixel.
	Size() int

	// Read reads raw pixel data and converts it to alpha-premultiplied
	// RGBA values, similar to color.Color's RGBA method.
	Read([]byte) (r, g, b, a uint32)

	// Write writes alpha-premultiplied RGBA values into buf.
	Write(buf []byte, r, g, b, a uint32)
}

// Various predefined Formats.
var (
	ARGB8888 formatARGB8888
	XRGB8888 formatXRGB8888
	RGBA8888 formatRGBA8888
	RGB888   formatRGB888
)

// 0x101 scales an 8-bit component to 16 bits and back.
const scale8 = 0x101

// widen converts an 8-bit straight-alpha pixel to premultiplied
// 16-bit components.
func widen(px rgb.RGBA8) rgb.RGBA[uint32] {
	c := rgb.ConvertRGBA[uint32](px).MulScalar(scale8)
	return c.RGB().MulScalar(c.A).DivScalar(0xFFFF).Alpha(c.A)
}

// narrow is the inverse of widen. A fully transparent color has no
// recoverable color components, so they become zero.
func narrow(c rgb.RGBA[uint32]) rgb.RGBA8 {
	if c.A == 0 {
		return rgb.RGBA8{}
	}

	c = c.RGB().MulScalar(0xFFFF).DivScalar(c.A).Alpha(c.A)
	return rgb.ConvertRGBA[uint8](c.DivScalar(scale8))
}

func opaque(px rgb.RGB8) (r, g, b, a uint32) {
	c := rgb.ConvertRGB[uint32](px).MulScalar(scale8)
	return c.R, c.G, c.B, 0xFFFF
}

func bgra(px rgb.RGBA8) rgb.RGBA8 {
	px.R, px.B = px.B, px.R
	return px
}

type formatARGB8888 struct{}

func (formatARGB8888) String() string { return "ARGB8888" }

func (formatARGB8888) Size() int { return 4 }

func (formatARGB8888) Read(data []byte) (r, g, b, a uint32) {
	var px rgb.RGBA8
	copy(px.Bytes(), data)
	c := widen(bgra(px))
	return c.R, c.G, c.B, c.A
}

func (formatARGB8888) Write(buf []byte, r, g, b, a uint32) {
	px := bgra(narrow(rgb.NewRGBA(r, g, b, a)))
	copy(buf, px.Bytes())
}

type formatXRGB8888 struct{}

func (formatXRGB8888) String() string { return "XRGB8888" }

func (formatXRGB8888) Size() int { return 4 }

func (formatXRGB8888) Read(data []byte) (r, g, b, a uint32) {
	var px rgb.RGBA8
	copy(px.Bytes(), data)
	return opaque(bgra(px).RGB())
}

func (formatXRGB8888) Write(buf []byte, r, g, b, a uint32) {
	c := rgb.NewRGB(r, g, b).DivScalar(scale8)
	px := bgra(rgb.ConvertRGB[uint8](c).Alpha(0xFF))
	copy(buf, px.Bytes())
}

type formatRGBA8888 struct{}

func (formatRGBA8888) String() string { return "RGBA8888" }

func (formatRGBA8888) Size() int { return 4 }

func (formatRGBA8888) Read(data []byte) (r, g, b, a uint32) {
	var px rgb.RGBA8
	copy(px.Bytes(), data)
	c := widen(px)
	return c.R, c.G, c.B, c.A
}

func (formatRGBA8888) Write(buf []byte, r, g, b, a uint32) {
	px := narrow(rgb.NewRGBA(r, g, b, a))
	copy(buf, px.Bytes())
}

type formatRGB888 struct{}

func (formatRGB888) String() string { return "RGB888" }

func (formatRGB888) Size() int { return 3 }

func (formatRGB888) Read(data []byte) (r, g, b, a uint32) {
	var px rgb.RGB8
	copy(px.Bytes(), data)
	return opaque(px)
}

// Write ignores a. The color components are written as they are, so
// a translucent color will come out darker than intended.
func (formatRGB888) Write(buf []byte, r, g, b, a uint32) {
	px := rgb.ConvertRGB[uint8](rgb.NewRGB(r, g, b).DivScalar(scale8))
	copy(buf, px.Bytes())
}
