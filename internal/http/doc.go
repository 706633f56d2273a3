// Package http provides the REST surface the shell frontend invokes:
// health checks, service listing, generic tool execution, and the dedicated
// kernel launch route.
package http
