// Package codec bridges compressed image bytes and the pipeline's pixel
// buffers.
//
// The stipple package works exclusively on abstract RGB buffers; this
// package owns everything container-format related: decoding JPEG, PNG,
// GIF, BMP, TIFF, and WebP input (the latter three via golang.org/x/image),
// normalizing arbitrary color models to plain RGB, and encoding pipeline
// output as PNG. It also carries the supported-content-type table the HTTP
// layer validates uploads against.
//
// Normalization follows the reference behavior: whatever the decoded color
// model, pixels are converted to straight (non-premultiplied) 8-bit RGBA
// and the alpha channel is then dropped, not composited against a
// background.
package codec
