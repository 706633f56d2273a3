// Package middleware provides gin middleware for the shell backend: CORS for
// the desktop frontend and per-IP rate limiting on the invoke surface.
package middleware
