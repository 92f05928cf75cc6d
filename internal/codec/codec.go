package codec

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/stipple-server/internal/stipple"
)

// DecodeImage decodes compressed image bytes into an image.Image using
// whichever registered format matches. It returns the decoded image and
// the format name reported by the decoder ("jpeg", "png", "bmp", ...).
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// Decode decodes compressed image bytes straight into an RGB pixel buffer,
// normalizing the color model along the way. This is the entry point for
// callers that have no use for the intermediate image.Image.
func Decode(r io.Reader) (*stipple.RGBBuffer, string, error) {
	img, format, err := DecodeImage(r)
	if err != nil {
		return nil, "", err
	}
	return FromImage(img), format, nil
}

// FromImage converts any decoded image to an RGB pixel buffer.
//
// The image is first cloned to straight-alpha NRGBA (handling YCbCr,
// paletted, 16-bit, and premultiplied sources uniformly), then the alpha
// channel is dropped.
func FromImage(img image.Image) *stipple.RGBBuffer {
	nrgba := imaging.Clone(img)

	w := nrgba.Rect.Dx()
	h := nrgba.Rect.Dy()
	buf := stipple.NewRGBBuffer(w, h)

	for y := 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride:]
		dst := buf.Pix[y*w*3:]
		for x := 0; x < w; x++ {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return buf
}

// ToImage converts an RGB pixel buffer to a fully opaque NRGBA image.
func ToImage(buf *stipple.RGBBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		src := buf.Pix[y*buf.Width*3:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < buf.Width; x++ {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 255
		}
	}
	return img
}

// EncodePNG writes an RGB pixel buffer to w as PNG.
func EncodePNG(w io.Writer, buf *stipple.RGBBuffer) error {
	if err := png.Encode(w, ToImage(buf)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
