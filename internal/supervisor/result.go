package supervisor

import "github.com/fyodoros/FyodorOS/backend/internal/shared/id"

// Reply strings are a frozen contract: the frontend pattern-matches on them.
const (
	spawnedMessage = "Kernel Process Spawned (API Mode)"
	failedPrefix   = "Failed to spawn kernel: "
)

// LaunchResult is the tagged outcome of one spawn attempt. It carries no
// process handle; after a successful spawn the child's lifetime is unmanaged.
type LaunchResult struct {
	ID      id.LaunchID
	Spawned bool
	Err     error
}

// Message renders the result as the single reply string the UI receives.
func (r LaunchResult) Message() string {
	if r.Spawned {
		return spawnedMessage
	}
	return failedPrefix + r.Err.Error()
}
