// Package supervisor owns kernel process creation for the shell.
//
// The shell delegates all real computation to an external kernel process; this
// package is the bridge. It exposes a single operation, StartKernel, which
// builds the fixed launch command, asks the OS to spawn it, and reports the
// outcome synchronously. The spawn is fire-and-forget: no handle is retained,
// the child is never waited on, and no pipe or socket is opened to it. Callers
// that want the kernel stopped must do so out of band.
//
// Repeated calls are not deduplicated; each successful call leaves one more
// kernel process running.
package supervisor
