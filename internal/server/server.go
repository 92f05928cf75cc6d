package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// Default configuration values, applied by New for zero Config fields.
const (
	// DefaultAddr is the listen address used when Config.Addr is empty.
	DefaultAddr = ":10000"

	// DefaultMaxUploadBytes caps the size of an upload request body.
	DefaultMaxUploadBytes = 20 << 20 // 20 MiB
)

// Config holds the server's explicit configuration. The zero value is
// usable; New fills in defaults.
type Config struct {
	// Addr is the listen address, e.g. ":10000".
	Addr string

	// MaxUploadBytes limits the request body size for uploads.
	MaxUploadBytes int64

	// MaxDimension, when positive, bounds uploaded images: anything
	// wider or taller is scaled down (preserving aspect ratio) before
	// conversion. Zero disables resizing.
	MaxDimension int
}

// Server handles HTTP requests for the stippling service.
type Server struct {
	cfg Config
}

// New creates a server with the given configuration, applying defaults
// for unset fields.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	return &Server{cfg: cfg}
}

// Handler returns the server's route table as an http.Handler, suitable
// for ListenAndServe or an httptest server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/stipple", s.handleStipple)
	return mux
}

// ListenAndServe starts the HTTP server and blocks until it fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("Listening on %s", s.cfg.Addr)
	return srv.ListenAndServe()
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeDetail writes an error response in the service's standard shape:
// a JSON object with a single "detail" message.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
