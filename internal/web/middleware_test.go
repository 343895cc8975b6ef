package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec, status: http.StatusOK}

	sr.WriteHeader(http.StatusBadGateway)

	if sr.status != http.StatusBadGateway {
		t.Errorf("Expected recorded status 502, got %d", sr.status)
	}
	if rec.Code != http.StatusBadGateway {
		t.Errorf("Expected underlying status 502, got %d", rec.Code)
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec, status: http.StatusOK}

	if got := sr.Unwrap(); got != http.ResponseWriter(rec) {
		t.Error("Expected Unwrap to return the wrapped writer")
	}

	// http.ResponseController resolves Flusher through Unwrap
	ctl := http.NewResponseController(sr)
	if err := ctl.Flush(); err != nil {
		t.Errorf("Expected Flush via ResponseController to work: %v", err)
	}
	if !rec.Flushed {
		t.Error("Expected the underlying recorder to be flushed")
	}
}
