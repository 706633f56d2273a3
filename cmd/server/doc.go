// Package main is the entry point for the FyodorOS shell backend.
//
// The desktop shell delegates all real computation to an external Python
// kernel; this service is the bridge between the two. The frontend invokes
// backend operations over REST and WebSocket, the most important of which is
// start_kernel: spawn the kernel process (python3 loop serve) and report
// whether the launch succeeded.
//
// Architecture:
//
//	Frontend (shell UI) → Go Backend → Kernel process (python3 loop serve)
//
// The server provides:
//   - The kernel launch bridge (fire-and-forget spawn, single-string reply)
//   - Service provider registry and dispatch
//   - WebSocket stream for the frontend
//   - Prometheus metrics, rate limiting, CORS
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown (spawned kernels are left running)
package main
