package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/pokedex-api/internal/api/shared"
	"github.com/phrazzld/pokedex-api/internal/platform/logger"
)

func TestTraceMiddleware(t *testing.T) {
	l, buf := logger.GetTestLogger(t)

	var seen string
	handler := NewTraceMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Len(t, seen, 32)
	assert.Equal(t, seen, w.Header().Get(TraceIDHeader))
	logger.AssertLogContains(t, buf, "request started")
	logger.AssertLogField(t, buf, "trace_id", seen)
}

func TestTraceMiddlewareUniquePerRequest(t *testing.T) {
	handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(TraceIDHeader), second.Header().Get(TraceIDHeader))
}
