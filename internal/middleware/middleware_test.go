package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := CORS(nextHandler)

	t.Run("OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Normal request", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Custom origin from env", func(t *testing.T) {
		t.Setenv("FRONTEND_ORIGIN", "https://shop.example.com")

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestResolveRateTier(t *testing.T) {
	t.Run("File validation is strict", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/files/validate", nil)

		limit, burst, tier := resolveRateTier(req)

		assert.Equal(t, limitStrict, limit)
		assert.Equal(t, burstStrict, burst)
		assert.Equal(t, "strict", tier)
	})

	t.Run("Frontend-heavy client", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products", nil)
		req.Header.Set("X-Client-Type", "frontend-heavy")

		limit, burst, tier := resolveRateTier(req)

		assert.Equal(t, limitFrontend, limit)
		assert.Equal(t, burstFrontend, burst)
		assert.Equal(t, "frontend", tier)
	})

	t.Run("Internal service with secret", func(t *testing.T) {
		t.Setenv("INTERNAL_SECRET_KEY", "s3cret")

		req := httptest.NewRequest("GET", "/products", nil)
		req.Header.Set("X-Service-Auth", "s3cret")

		limit, _, tier := resolveRateTier(req)

		assert.Equal(t, limitInternal, limit)
		assert.Equal(t, "internal", tier)
	})

	t.Run("Default is general", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products", nil)

		limit, burst, tier := resolveRateTier(req)

		assert.Equal(t, limitGeneral, limit)
		assert.Equal(t, burstGeneral, burst)
		assert.Equal(t, "general", tier)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := RateLimitMiddleware(nextHandler)

	t.Run("Allows requests within burst", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products", nil)
		req.Header.Set("X-Device-ID", "device-allow")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Blocks after the burst is exhausted", func(t *testing.T) {
		var last int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/files/validate", nil)
			req.Header.Set("X-Device-ID", "device-burst")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			last = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("Separate quotas per tier", func(t *testing.T) {
		// The strict bucket for this device may be empty, the general one is not.
		req := httptest.NewRequest("GET", "/products", nil)
		req.Header.Set("X-Device-ID", "device-burst")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
