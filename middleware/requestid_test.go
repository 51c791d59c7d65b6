package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commandhttp/middleware"
)

func captureRequestID(captured *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured, _ = middleware.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDDefaultConfiguration(t *testing.T) {
	t.Parallel()

	var capturedID string
	h := middleware.RequestID()(captureRequestID(&capturedID))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, capturedID, w.Header().Get("X-Request-ID"))

	_, err := uuid.Parse(capturedID)
	assert.NoError(t, err, "default ID should be a UUID")
	assert.NotEqual(t, "client-supplied", capturedID)
}

func TestRequestIDWithConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      middleware.RequestIDConfig
		incoming string
		wantID   string
		header   string
	}{
		{
			name:   "custom generator",
			cfg:    middleware.RequestIDConfig{Generator: func() string { return "custom-123" }},
			wantID: "custom-123",
			header: "X-Request-ID",
		},
		{
			name:     "uses existing id",
			cfg:      middleware.RequestIDConfig{UseExisting: true, Generator: func() string { return "generated" }},
			incoming: "incoming-1",
			wantID:   "incoming-1",
			header:   "X-Request-ID",
		},
		{
			name:   "generates when existing is missing",
			cfg:    middleware.RequestIDConfig{UseExisting: true, Generator: func() string { return "generated" }},
			wantID: "generated",
			header: "X-Request-ID",
		},
		{
			name:     "custom header",
			cfg:      middleware.RequestIDConfig{HeaderName: "X-Correlation-ID", UseExisting: true},
			incoming: "corr-9",
			wantID:   "corr-9",
			header:   "X-Correlation-ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var capturedID string
			h := middleware.RequestIDWithConfig(tt.cfg)(captureRequestID(&capturedID))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(tt.header, tt.incoming)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantID, capturedID)
			assert.Equal(t, tt.wantID, w.Header().Get(tt.header))
		})
	}
}

func TestRequestIDSkip(t *testing.T) {
	t.Parallel()

	var capturedID string
	h := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Skip: func(r *http.Request) bool { return r.URL.Path == "/health" },
	})(captureRequestID(&capturedID))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, capturedID)
	assert.Empty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	_, ok := middleware.RequestIDExtractor(context.Background())
	assert.False(t, ok)

	attr, ok := middleware.RequestIDExtractor(middleware.WithRequestID(context.Background(), "req-1"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-1", attr.Value.String())
}
