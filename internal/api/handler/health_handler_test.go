package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Check(_ context.Context) error {
	return p.err
}

func TestHealthHandler_Liveness_Connected(t *testing.T) {
	h := NewHealthHandler(&stubPinger{})

	c, rec := newTestContext(t, http.MethodGet, "/health", "")
	if err := h.Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "ok" || resp["database"] != "connected" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestHealthHandler_Liveness_Disconnected(t *testing.T) {
	h := NewHealthHandler(&stubPinger{err: errors.New("no reachable servers")})

	c, rec := newTestContext(t, http.MethodGet, "/health", "")
	if err := h.Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// The probe itself still answers 200; the body carries the state.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["database"] != "disconnected" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
