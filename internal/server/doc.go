// Package server wires the shell backend together: configuration, logging,
// metrics, the kernel supervisor, the dispatch registry with its providers,
// and the gin router with its middleware and routes.
package server
