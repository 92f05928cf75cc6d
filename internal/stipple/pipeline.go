package stipple

// Stipple runs the full conversion pipeline: RGB -> grayscale -> 1-bit
// Floyd-Steinberg dither -> RGB. The result has the same dimensions as
// the input and every pixel is either pure black or pure white.
//
// Each stage allocates its own output, so the input buffer is never
// modified and concurrent calls need no synchronization.
//
// Panics if src violates its length invariant.
func Stipple(src *RGBBuffer) *RGBBuffer {
	return Expand(Dither(Grayscale(src)))
}
