package stipple

// Expand converts a 1-bit bitmap back to an RGB buffer: white bits become
// (255,255,255) pixels, black bits become (0,0,0). This loses nothing
// relative to the bitmap and lets downstream encoders that expect RGB
// handle the result without 1-bit format support.
//
// Panics if src violates its length invariant.
func Expand(src *Bitmap) *RGBBuffer {
	src.assertValid()

	dst := NewRGBBuffer(src.Width, src.Height)
	i := 0
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if src.White(x, y) {
				dst.Pix[i] = 255
				dst.Pix[i+1] = 255
				dst.Pix[i+2] = 255
			}
			i += 3
		}
	}
	return dst
}
