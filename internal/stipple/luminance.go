package stipple

// Grayscale reduces an RGB buffer to 8-bit luminance using ITU-R BT.601
// weights: Y = 0.299*R + 0.587*G + 0.114*B.
//
// The computation is done in 16-bit fixed point with round-to-nearest,
// matching the standard library's color.GrayModel. The three coefficients
// (19595 + 38470 + 7471 = 65536) sum to exactly one, so the result is
// always in [0,255] without clamping.
//
// Panics if src violates its length invariant.
func Grayscale(src *RGBBuffer) *GrayBuffer {
	src.assertValid()

	dst := NewGrayBuffer(src.Width, src.Height)
	for i, j := 0, 0; j < len(dst.Pix); i, j = i+3, j+1 {
		r := uint32(src.Pix[i])
		g := uint32(src.Pix[i+1])
		b := uint32(src.Pix[i+2])
		dst.Pix[j] = uint8((19595*r + 38470*g + 7471*b + 1<<15) >> 16)
	}
	return dst
}
