// Package types defines shared data types for the shell backend.
//
// These types form the contract between the dispatch registry, the service
// providers, and the HTTP/WebSocket transport: service definitions with their
// tools, execution results, and request payloads.
package types
