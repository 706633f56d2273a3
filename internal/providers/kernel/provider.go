// Package kernel exposes the kernel process supervisor to the shell's
// command-dispatch surface.
package kernel

import (
	"context"
	"fmt"

	"github.com/fyodoros/FyodorOS/backend/internal/monitoring"
	"github.com/fyodoros/FyodorOS/backend/internal/shared/types"
	"github.com/fyodoros/FyodorOS/backend/internal/supervisor"
)

// Provider bridges start_kernel invocations to the supervisor.
type Provider struct {
	sup     *supervisor.Supervisor
	metrics *monitoring.Metrics
}

// NewProvider creates a kernel provider. metrics may be nil in tests.
func NewProvider(sup *supervisor.Supervisor, metrics *monitoring.Metrics) *Provider {
	return &Provider{sup: sup, metrics: metrics}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "kernel",
		Name:        "Kernel Service",
		Description: "Launches the external kernel process",
		Category:    types.CategoryKernel,
		Capabilities: []string{
			"launch",
		},
		Tools: []types.Tool{
			{
				ID:          "kernel.start_kernel",
				Name:        "Start Kernel",
				Description: "Spawn the kernel process and report the launch outcome",
				Parameters:  []types.Parameter{},
				Returns:     "string",
			},
			{
				ID:          "kernel.command",
				Name:        "Launch Command",
				Description: "Get the fixed kernel launch argument vector",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
		},
	}
}

// Execute runs a kernel operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "kernel.start_kernel":
		return p.startKernel()
	case "kernel.command":
		return p.command()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// startKernel performs one launch attempt. A spawn failure is still a
// successful invocation: the failure text is the reply, never a fault.
func (p *Provider) startKernel() (*types.Result, error) {
	result := p.sup.StartKernel()

	if p.metrics != nil {
		outcome := monitoring.OutcomeSpawned
		if !result.Spawned {
			outcome = monitoring.OutcomeFailed
		}
		p.metrics.RecordLaunch(outcome)
	}

	return success(map[string]interface{}{
		"message":   result.Message(),
		"spawned":   result.Spawned,
		"launch_id": string(result.ID),
	})
}

func (p *Provider) command() (*types.Result, error) {
	return success(map[string]interface{}{
		"argv": p.sup.Command(),
	})
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}
