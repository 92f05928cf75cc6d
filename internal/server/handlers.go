package server

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/stipple-server/internal/codec"
	"github.com/ironsheep/stipple-server/internal/stipple"
)

// handleRoot serves the service banner. The default mux routes every
// unregistered path here, so anything other than "/" itself is a 404.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeDetail(w, http.StatusNotFound, "not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Stippling Image Generator API",
		"status":  "healthy",
		"endpoints": map[string]string{
			"stipple": "POST /stipple - Upload an image to convert to stippled art",
		},
	})
}

// handleHealth serves the health check endpoint for deployment platforms.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleStipple accepts a multipart image upload, runs the conversion
// pipeline, and responds with the stippled image as a PNG attachment.
//
// Processing steps:
//  1. Reject non-POST methods and bodies over the configured size limit
//  2. Validate the upload's declared content type against the supported set
//  3. Decode the image (JPEG, PNG, GIF, BMP, TIFF, or WebP)
//  4. Optionally scale down to the configured maximum dimension
//  5. Convert: RGB -> grayscale -> Floyd-Steinberg dither -> RGB
//  6. Encode as PNG and stream it back
func (s *Server) handleStipple(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed, use POST")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeDetail(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds the %d byte limit", maxBytesErr.Limit))
			return
		}
		writeDetail(w, http.StatusBadRequest, `missing upload: expected multipart form field "file"`)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !codec.SupportedType(contentType) {
		writeDetail(w, http.StatusBadRequest,
			fmt.Sprintf("Unsupported file format. Supported formats: %s", codec.SupportedTypeList()))
		return
	}

	log.Printf("Processing file: %s, size: %d bytes", header.Filename, header.Size)

	img, format, err := codec.DecodeImage(file)
	if err != nil {
		log.Printf("Error opening image: %v", err)
		writeDetail(w, http.StatusBadRequest, "Invalid image file")
		return
	}

	if s.cfg.MaxDimension > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > s.cfg.MaxDimension || bounds.Dy() > s.cfg.MaxDimension {
			img = imaging.Fit(img, s.cfg.MaxDimension, s.cfg.MaxDimension, imaging.Lanczos)
			log.Printf("Resized %s image to fit %dpx", format, s.cfg.MaxDimension)
		}
	}

	result := stipple.Stipple(codec.FromImage(img))

	var out bytes.Buffer
	if err := codec.EncodePNG(&out, result); err != nil {
		log.Printf("Error encoding result: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error processing image")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(out.Len()))
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", attachmentName(header.Filename)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.Bytes()); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// attachmentName derives the download filename for a converted image:
// the upload's base name with its extension swapped for .png and a
// "stippled_" prefix. Falls back to "stippled_image.png" when the upload
// carried no usable name.
func attachmentName(uploadName string) string {
	base := filepath.Base(uploadName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Map(func(r rune) rune {
		// Strip characters that have no business in a header value.
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." || base == ".." {
		base = "image"
	}
	return "stippled_" + base + ".png"
}
