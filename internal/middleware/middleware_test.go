package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	return router
}

func TestCORS(t *testing.T) {
	router := setupTestRouter(CORS(DefaultCORSConfig()))

	tests := []struct {
		name           string
		method         string
		origin         string
		wantStatus     int
		wantCORSHeader string
	}{
		{
			name:           "shell webview origin allowed",
			method:         http.MethodGet,
			origin:         "tauri://localhost",
			wantStatus:     http.StatusOK,
			wantCORSHeader: "tauri://localhost",
		},
		{
			name:           "dev server origin allowed",
			method:         http.MethodGet,
			origin:         "http://localhost:1420",
			wantStatus:     http.StatusOK,
			wantCORSHeader: "http://localhost:1420",
		},
		{
			name:           "foreign origin rejected",
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			wantStatus:     http.StatusForbidden,
			wantCORSHeader: "",
		},
		{
			name:           "preflight from shell origin",
			method:         http.MethodOptions,
			origin:         "tauri://localhost",
			wantStatus:     http.StatusNoContent,
			wantCORSHeader: "tauri://localhost",
		},
		{
			name:           "preflight from foreign origin rejected",
			method:         http.MethodOptions,
			origin:         "https://evil.example.com",
			wantStatus:     http.StatusForbidden,
			wantCORSHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/health", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCORSHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRateLimit(t *testing.T) {
	router := setupTestRouter(RateLimit(RateLimitConfig{
		RequestsPerSecond: 1,
		Burst:             2,
	}))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass within burst", i)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}
