package stipple

// threshold is the fixed quantization boundary: an accumulated value at or
// above it quantizes to white, below it to black.
const threshold = 128

// Dither converts an 8-bit grayscale buffer to a 1-bit bitmap using
// Floyd-Steinberg error diffusion. The defining property: the average of
// the binary output over any local neighborhood approximates the average
// gray input over that neighborhood, which is what preserves tone where a
// naive per-pixel threshold would produce hard banding.
//
// Panics if src violates its length invariant.
//
// # Algorithm
//
// Pixels are visited left-to-right, top-to-bottom (constant raster order,
// not serpentine). For each pixel:
//
//  1. Read its accumulated value v: the original gray value plus any error
//     diffused into it from previously visited neighbors. v may transiently
//     fall outside [0,255]; it is compared against the threshold unclamped.
//
//  2. Quantize: white if v >= 128, else black.
//     The quantization error is v-255 for white, v for black.
//
//  3. Diffuse the error into not-yet-visited neighbors, in sixteenths:
//
//     .       *    7/16
//     3/16  5/16   1/16
//
//     (east, southwest, south, southeast). Targets outside the image are
//     skipped; error reaching an edge is lost, not redistributed.
//
// The error accumulator is two rolling float32 rows, one term per column:
// the current row being scanned and the row below it. Both are discarded
// when the pass ends, so the function is deterministic and stateless.
func Dither(src *GrayBuffer) *Bitmap {
	src.assertValid()

	w, h := src.Width, src.Height
	dst := NewBitmap(w, h)

	cur := make([]float32, w)
	next := make([]float32, w)

	for y := 0; y < h; y++ {
		row := src.Pix[y*w : y*w+w]
		// Seed the current row: gray values plus error carried down
		// from the row above.
		for x := 0; x < w; x++ {
			cur[x] += float32(row[x])
		}

		for x := 0; x < w; x++ {
			v := cur[x]
			var qerr float32
			if v >= threshold {
				dst.SetWhite(x, y)
				qerr = v - 255
			} else {
				qerr = v
			}

			if x+1 < w {
				cur[x+1] += qerr * 7 / 16
			}
			if y+1 < h {
				if x > 0 {
					next[x-1] += qerr * 3 / 16
				}
				next[x] += qerr * 5 / 16
				if x+1 < w {
					next[x+1] += qerr * 1 / 16
				}
			}
		}

		cur, next = next, cur
		for x := range next {
			next[x] = 0
		}
	}

	return dst
}
