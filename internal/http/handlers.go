package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fyodoros/FyodorOS/backend/internal/monitoring"
	"github.com/fyodoros/FyodorOS/backend/internal/service"
	"github.com/fyodoros/FyodorOS/backend/internal/shared/id"
	"github.com/fyodoros/FyodorOS/backend/internal/shared/types"
	"github.com/fyodoros/FyodorOS/backend/internal/supervisor"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	sup      *supervisor.Supervisor
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set. metrics may be nil in tests.
func NewHandlers(registry *service.Registry, sup *supervisor.Supervisor, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry: registry,
		sup:      sup,
		metrics:  metrics,
	}
}

// recordDispatch counts one dispatched tool call, labeled by service, tool,
// and outcome.
func (h *Handlers) recordDispatch(toolID string, result *types.Result, err error) {
	if h.metrics == nil {
		return
	}

	svc, tool := toolID, ""
	if parts := strings.SplitN(toolID, ".", 2); len(parts) == 2 {
		svc, tool = parts[0], parts[1]
	}

	status := "success"
	if err != nil || result == nil || !result.Success {
		status = "error"
	}

	h.metrics.RecordServiceCall(svc, tool, status)
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "FyodorOS Shell Backend (Go)",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"kernel":           gin.H{"command": h.sup.Command()},
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reqID := string(id.NewRequestID())
	appCtx := &types.Context{RequestID: &reqID}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	h.recordDispatch(req.ToolID, result, err)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// StartKernel is the dedicated bridging route for the shell frontend. The
// reply body is the bare launch string; callers pattern-match on it.
func (h *Handlers) StartKernel(c *gin.Context) {
	result, err := h.registry.Execute(c.Request.Context(), "kernel.start_kernel", nil, nil)
	h.recordDispatch("kernel.start_kernel", result, err)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message, _ := result.Data["message"].(string)
	c.String(http.StatusOK, message)
}
