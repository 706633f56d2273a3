package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Origins the shell frontend loads from: the packaged webview origin plus the
// Vite dev server used during development.
var shellOrigins = []string{
	"tauri://localhost",
	"http://localhost:1420",
	"http://127.0.0.1:1420",
}

// CORSConfig defines CORS configuration options.
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
	MaxAge           time.Duration

	// CustomSchemas lists non-http origin schemes, such as the packaged
	// webview's. Required for tauri:// origins to pass validation.
	CustomSchemas []string
}

// DefaultCORSConfig restricts the backend to the shell frontend's origins.
// The backend binds a local port, so anything in the user's browser could
// otherwise reach it.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:     shellOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
		CustomSchemas:    []string{"tauri://"},
	}
}

// CORS creates a CORS middleware with the provided configuration.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
		CustomSchemas:    cfg.CustomSchemas,
	})
}
