//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	r.GET("/panic", func(*gin.Context) {
		panic("boom")
	})
	return r
}

func get(r http.Handler, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "203.0.113.7:4242"
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects once the burst is spent", func(t *testing.T) {
		r := newEngine(middleware.NewRateLimitMiddleware(config.RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 0.001,
			Burst:             2,
		}))

		assert.Equal(t, http.StatusOK, get(r, "/ping", nil).Code)
		assert.Equal(t, http.StatusOK, get(r, "/ping", nil).Code)

		w := get(r, "/ping", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too many requests")
	})

	t.Run("disabled passes everything", func(t *testing.T) {
		r := newEngine(middleware.NewRateLimitMiddleware(config.RateLimitConfig{Enabled: false, Burst: 1}))
		for range 5 {
			assert.Equal(t, http.StatusOK, get(r, "/ping", nil).Code)
		}
	})
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newEngine(middleware.LoggingMiddleware(logger, config.NewTestConfig().Log))

	t.Run("generates a uuid request id", func(t *testing.T) {
		buf.Reset()
		w := get(r, "/ping?id=book001", nil)
		require.Equal(t, http.StatusOK, w.Code)

		id := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Contains(t, w.Body.String(), id)
		assert.Contains(t, buf.String(), `"msg":"Request completed"`)
		assert.Contains(t, buf.String(), `"book_id":"book001"`)
	})

	t.Run("reuses an incoming request id", func(t *testing.T) {
		w := get(r, "/ping", map[string]string{"X-Request-ID": "req-123"})
		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})
}

func TestRecoveryAndErrorHandler(t *testing.T) {
	r := newEngine(middleware.CustomRecovery(), middleware.ErrorHandler())

	w := get(r, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
}

func TestNewLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := middleware.NewLogger(config.LogConfig{Level: "warn", TimeZone: "UTC", TimeFormat: "15:04"})

	logger := l.GetSlogLogger()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
}

func TestCORS(t *testing.T) {
	cfg := config.NewTestConfig().CORS
	r := newEngine(middleware.NewCORSMiddleware(cfg))

	w := get(r, "/ping", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
}
