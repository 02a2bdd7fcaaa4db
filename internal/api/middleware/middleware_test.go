package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates UUID when no request ID provided", func(t *testing.T) {
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID, _ := r.Context().Value(requestIDKey).(string)
			if _, err := uuid.Parse(reqID); err != nil {
				t.Errorf("expected valid UUID in context, got %q", reqID)
			}
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		respReqID := w.Header().Get(headerRequestID)
		if _, err := uuid.Parse(respReqID); err != nil {
			t.Errorf("expected valid UUID in response header, got %q", respReqID)
		}
	})

	t.Run("uses provided request ID", func(t *testing.T) {
		providedID := "test-request-id-123"
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if reqID, _ := r.Context().Value(requestIDKey).(string); reqID != providedID {
				t.Errorf("expected request ID %q in context, got %q", providedID, reqID)
			}
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(headerRequestID, providedID)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if respReqID := w.Header().Get(headerRequestID); respReqID != providedID {
			t.Errorf("expected %s header %q, got %q", headerRequestID, providedID, respReqID)
		}
	})
}

func TestRequestLoggingMiddleware(t *testing.T) {
	t.Run("logs method, status and size", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		sugar := zap.New(core).Sugar()

		body := "converted"
		handler := RequestLoggingMiddleware(sugar)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(body))
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("expected one log entry, got %d", len(entries))
		}
		fields := entries[0].ContextMap()
		if fields["method"] != "POST" {
			t.Errorf("expected method POST, got %v", fields["method"])
		}
		if fields["status"] != int64(http.StatusCreated) {
			t.Errorf("expected status %d, got %v", http.StatusCreated, fields["status"])
		}
		if fields["bytes"] != int64(len(body)) {
			t.Errorf("expected %d bytes, got %v", len(body), fields["bytes"])
		}
	})

	t.Run("handler without WriteHeader is logged as 200", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		sugar := zap.New(core).Sugar()

		handler := RequestLoggingMiddleware(sugar)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("implicit ok"))
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/currencies", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("expected one log entry, got %d", len(entries))
		}
		if status := entries[0].ContextMap()["status"]; status != int64(http.StatusOK) {
			t.Errorf("expected status 200, got %v", status)
		}
	})

	t.Run("probe paths are not logged", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		sugar := zap.New(core).Sugar()

		handler := RequestLoggingMiddleware(sugar)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("expected status 200 for %s, got %d", path, w.Code)
			}
		}

		if logs.Len() != 0 {
			t.Errorf("expected no log entries for probe paths, got %d", logs.Len())
		}
	})
}

func TestResponseWriter(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newResponseWriter(w)

	if rw.status != http.StatusOK {
		t.Errorf("expected default status 200, got %d", rw.status)
	}

	rw.WriteHeader(http.StatusCreated)
	if rw.status != http.StatusCreated {
		t.Errorf("expected captured status %d, got %d", http.StatusCreated, rw.status)
	}

	data := []byte("test data")
	n, err := rw.Write(data)
	if err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if n != len(data) || rw.size != len(data) {
		t.Errorf("expected %d bytes captured, got n=%d size=%d", len(data), n, rw.size)
	}
}
