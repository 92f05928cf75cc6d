// Package stipple implements the core black-and-white conversion pipeline.
//
// The pipeline turns a decoded RGB image into a visually equivalent pure
// black-and-white rendition by approximating continuous tone with spatial
// dot patterns (halftoning). It runs three stages in strict sequence:
//
//  1. Luminance reduction: RGB -> 8-bit grayscale using ITU-R BT.601
//     perceptual weights (0.299*R + 0.587*G + 0.114*B)
//
//  2. Error-diffusion dithering: grayscale -> 1-bit using Floyd-Steinberg
//     error diffusion in left-to-right raster order
//
//  3. Channel expansion: 1-bit -> RGB, replicating each bit to all three
//     channels so downstream encoders can treat the result as ordinary RGB
//
// # Purity and Concurrency
//
// Every stage is a pure function of its input buffer: each call allocates a
// fresh output buffer, never aliases its input, and holds no state between
// invocations. Multiple conversions may run concurrently on independent
// goroutines with no coordination.
//
// # Error Handling
//
// The only failure mode is a malformed buffer (length inconsistent with the
// declared width and height). That is a programmer error on the caller's
// side, so the stages panic rather than return an error. Callers that
// construct buffers through NewRGBBuffer, NewGrayBuffer, and NewBitmap
// cannot trigger these panics.
//
// # Scope
//
// Container formats (PNG, JPEG, and friends) are deliberately outside this
// package; see the codec package for decoding compressed bytes into an
// RGBBuffer and encoding the result back out.
package stipple
