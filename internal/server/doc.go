// Package server implements the HTTP transport for the stippling service.
//
// This package provides the thin web layer around the conversion pipeline:
// it accepts an image upload, validates the declared content type, hands
// the decoded pixels to the stipple package, and streams the result back
// as a PNG attachment. All of the actual image processing lives in
// internal/stipple and internal/codec; nothing here touches pixels.
//
// # Endpoints
//
//   - GET  /        service banner with endpoint summary
//   - GET  /health  health check for deployment platforms
//   - POST /stipple multipart upload (field "file") -> PNG response
//
// # Error Responses
//
// Errors are returned as JSON bodies of the form {"detail": "..."} with
// conventional status codes: 400 for unsupported or undecodable uploads,
// 405 for wrong methods, 413 for oversized bodies, 500 as a fallback.
//
// # Configuration
//
// All knobs (listen address, upload size limit, optional maximum image
// dimension) are passed explicitly through Config. The package keeps no
// global mutable state; concurrent requests share nothing but the
// stateless pipeline, so no locking is needed anywhere.
package server
