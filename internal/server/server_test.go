package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleRoot(t *testing.T) {
	s := New(Config{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Message   string            `json:"message"`
		Status    string            `json:"status"`
		Endpoints map[string]string `json:"endpoints"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("status field: got %q, want %q", body.Status, "healthy")
	}
	if _, ok := body.Endpoints["stipple"]; !ok {
		t.Error("banner should document the stipple endpoint")
	}
}

func TestHandleRoot_UnknownPath(t *testing.T) {
	s := New(Config{})
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleHealth(t *testing.T) {
	s := New(Config{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field: got %q, want %q", body["status"], "healthy")
	}
}

func TestNew_Defaults(t *testing.T) {
	s := New(Config{})
	if s.cfg.Addr != DefaultAddr {
		t.Errorf("addr: got %q, want %q", s.cfg.Addr, DefaultAddr)
	}
	if s.cfg.MaxUploadBytes != DefaultMaxUploadBytes {
		t.Errorf("max upload: got %d, want %d", s.cfg.MaxUploadBytes, DefaultMaxUploadBytes)
	}
	if s.cfg.MaxDimension != 0 {
		t.Errorf("max dimension should default to disabled, got %d", s.cfg.MaxDimension)
	}
}

func TestNew_KeepsExplicitConfig(t *testing.T) {
	s := New(Config{Addr: ":8080", MaxUploadBytes: 1024, MaxDimension: 500})
	if s.cfg.Addr != ":8080" || s.cfg.MaxUploadBytes != 1024 || s.cfg.MaxDimension != 500 {
		t.Errorf("explicit config overwritten: %+v", s.cfg)
	}
}
