package stipple

import "fmt"

// RGBBuffer is a row-major rectangular grid of RGB pixels, 3 bytes per
// pixel, no padding. Pix holds exactly Width*Height*3 bytes: the pixel at
// (x, y) occupies Pix[(y*Width+x)*3 : (y*Width+x)*3+3] as R, G, B.
type RGBBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRGBBuffer allocates a zeroed (all-black) RGB buffer of the given size.
// Panics if width or height is less than 1.
func NewRGBBuffer(width, height int) *RGBBuffer {
	assertDimensions(width, height)
	return &RGBBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// GrayBuffer is a row-major grid of 8-bit luminance values, one byte per
// pixel. Pix holds exactly Width*Height bytes.
type GrayBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrayBuffer allocates a zeroed grayscale buffer of the given size.
// Panics if width or height is less than 1.
func NewGrayBuffer(width, height int) *GrayBuffer {
	assertDimensions(width, height)
	return &GrayBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// Bitmap is a packed 1-bit-per-pixel image. Each row occupies Stride bytes
// (Width bits rounded up to a whole byte); bits are stored most significant
// first, so the pixel at (x, y) is bit 0x80>>(x%8) of Bits[y*Stride+x/8].
// A set bit is white, a cleared bit is black.
type Bitmap struct {
	Width  int
	Height int
	Stride int
	Bits   []uint8
}

// NewBitmap allocates an all-black bitmap of the given size.
// Panics if width or height is less than 1.
func NewBitmap(width, height int) *Bitmap {
	assertDimensions(width, height)
	stride := (width + 7) / 8
	return &Bitmap{
		Width:  width,
		Height: height,
		Stride: stride,
		Bits:   make([]uint8, stride*height),
	}
}

// White reports whether the pixel at (x, y) is white. Coordinates must be
// in range; callers iterate within [0,Width)x[0,Height).
func (b *Bitmap) White(x, y int) bool {
	return b.Bits[y*b.Stride+x/8]&(0x80>>uint(x%8)) != 0
}

// SetWhite marks the pixel at (x, y) white.
func (b *Bitmap) SetWhite(x, y int) {
	b.Bits[y*b.Stride+x/8] |= 0x80 >> uint(x%8)
}

func assertDimensions(width, height int) {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("stipple: invalid dimensions %dx%d", width, height))
	}
}

// assertValid panics if the buffer violates its length invariant. Stage
// entry points call this so that dimension mismatches surface at the call
// site instead of as index panics deep inside a scan loop.
func (b *RGBBuffer) assertValid() {
	assertDimensions(b.Width, b.Height)
	if len(b.Pix) != b.Width*b.Height*3 {
		panic(fmt.Sprintf("stipple: RGB buffer %dx%d needs %d bytes, has %d",
			b.Width, b.Height, b.Width*b.Height*3, len(b.Pix)))
	}
}

func (b *GrayBuffer) assertValid() {
	assertDimensions(b.Width, b.Height)
	if len(b.Pix) != b.Width*b.Height {
		panic(fmt.Sprintf("stipple: gray buffer %dx%d needs %d bytes, has %d",
			b.Width, b.Height, b.Width*b.Height, len(b.Pix)))
	}
}

func (b *Bitmap) assertValid() {
	assertDimensions(b.Width, b.Height)
	stride := (b.Width + 7) / 8
	if b.Stride != stride || len(b.Bits) != stride*b.Height {
		panic(fmt.Sprintf("stipple: bitmap %dx%d needs stride %d and %d bytes, has stride %d and %d",
			b.Width, b.Height, stride, stride*b.Height, b.Stride, len(b.Bits)))
	}
}
