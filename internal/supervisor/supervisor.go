package supervisor

import (
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/fyodoros/FyodorOS/backend/internal/config"
	"github.com/fyodoros/FyodorOS/backend/internal/logging"
	"github.com/fyodoros/FyodorOS/backend/internal/shared/id"
)

// Supervisor launches the external kernel process.
type Supervisor struct {
	cfg config.KernelConfig
	log *logging.Logger
}

// New creates a supervisor for the configured kernel launch command.
func New(cfg config.KernelConfig, log *logging.Logger) *Supervisor {
	return &Supervisor{
		cfg: cfg,
		log: log.Named("supervisor"),
	}
}

// Command returns the fixed launch argument vector: interpreter, module, mode.
// It is decided at startup and cannot be changed per call.
func (s *Supervisor) Command() []string {
	return []string{s.cfg.Interpreter, s.cfg.Module, s.cfg.Mode}
}

// StartKernel spawns one kernel process and returns as soon as the creation
// syscall does. The child inherits the shell's working directory, environment,
// and stdio; no pipe or socket is established to it. On success the process
// handle is released immediately, so the supervisor holds no reference to the
// child. On failure no process is left behind.
func (s *Supervisor) StartKernel() LaunchResult {
	launchID := id.NewLaunchID()
	argv := s.Command()

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		s.log.Warn("kernel spawn failed",
			zap.String("launch_id", string(launchID)),
			zap.Strings("argv", argv),
			zap.Error(err),
		)
		return LaunchResult{ID: launchID, Err: err}
	}

	pid := cmd.Process.Pid
	// Drop the handle; the child is not ours to reap or terminate.
	cmd.Process.Release()

	s.log.Info("kernel spawned",
		zap.String("launch_id", string(launchID)),
		zap.Strings("argv", argv),
		zap.Int("pid", pid),
	)
	return LaunchResult{ID: launchID, Spawned: true}
}
