package format

import "image/color"

// Model implements color.Model using a Format.
type Model struct {
	Format Format
}

func (m Model) Convert(c color.Color) color.Color {
	if c, ok := c.(Color); ok && c.Format == m.Format {
		return c
	}

	fc := Color{Format: m.Format}
	r, g, b, a := c.RGBA()
	m.Format.Write(fc.Slice(), r, g, b, a)
	return fc
}

// Color implements color.Color using a Format.
type Color struct {
	Format Format

	// Data holds the raw pixel. Only the first Format.Size() bytes
	// are used.
	Data [4]byte
}

// Slice returns a slice of Data correctly sized for the color's format.
func (c *Color) Slice() []byte {
	size := c.Format.Size()
	return c.Data[:size:size]
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Format.Read(c.Slice())
}

// Convert converts the pixels in src, which are in format from, to
// format to, writing the result into dst. It returns the number of
// pixels converted, which is limited by whichever of dst and src runs
// out first.
//
// A slice of rgb.RGBA8 can be converted by passing it through
// rgb.RGBABytes with a from of RGBA8888.
func Convert(to Format, dst []byte, from Format, src []byte) int {
	tsize, fsize := to.Size(), from.Size()
	n := min(len(dst)/tsize, len(src)/fsize)
	for i := range n {
		r, g, b, a := from.Read(src[i*fsize : (i+1)*fsize])
		to.Write(dst[i*tsize:(i+1)*tsize], r, g, b, a)
	}
	return n
}
