// Package providers implements the service providers exposed to the shell UI.
//
// Each provider registers with the dispatch registry and exposes its
// operations as tools under a service ID:
//   - Kernel: launch the external kernel process and report the outcome
//   - System: backend info, time, and an in-memory log buffer for the UI
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
package providers
