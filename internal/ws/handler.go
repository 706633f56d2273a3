// Package ws provides the WebSocket stream between the shell frontend and the
// backend.
//
// Message Types (Client → Server):
//   - start_kernel: Launch the kernel process
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - system: Connection established
//   - kernel: Launch reply (single string, same contract as the REST route)
//   - pong: Ping reply
//   - error: Unknown message type
package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/fyodoros/FyodorOS/backend/internal/logging"
	"github.com/fyodoros/FyodorOS/backend/internal/monitoring"
	"github.com/fyodoros/FyodorOS/backend/internal/service"
	"github.com/fyodoros/FyodorOS/backend/internal/shared/id"
	"github.com/fyodoros/FyodorOS/backend/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the desktop shell connects from its own origin
	},
}

// Handler manages WebSocket connections
type Handler struct {
	registry *service.Registry
	log      *logging.Logger
	metrics  *monitoring.Metrics
}

// NewHandler creates a new WebSocket handler. metrics may be nil in tests.
func NewHandler(registry *service.Registry, log *logging.Logger, metrics *monitoring.Metrics) *Handler {
	return &Handler{
		registry: registry,
		log:      log.Named("ws"),
		metrics:  metrics,
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	connID := id.NewConnID()
	h.log.Debug("frontend connected", zap.String("conn_id", string(connID)))

	h.send(conn, map[string]interface{}{
		"type":    "system",
		"message": "Connected to FyodorOS Shell Backend",
	})

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			h.log.Debug("frontend disconnected",
				zap.String("conn_id", string(connID)),
				zap.Error(err),
			)
			break
		}

		switch msg.Type {
		case "start_kernel":
			h.handleStartKernel(conn, c)
		case "ping":
			h.send(conn, map[string]interface{}{"type": "pong"})
		default:
			h.send(conn, map[string]interface{}{
				"type":    "error",
				"message": "unknown message type",
			})
		}
	}
}

func (h *Handler) handleStartKernel(conn *websocket.Conn, c *gin.Context) {
	result, err := h.registry.Execute(c.Request.Context(), "kernel.start_kernel", nil, nil)
	if h.metrics != nil {
		status := "success"
		if err != nil || result == nil || !result.Success {
			status = "error"
		}
		h.metrics.RecordServiceCall("kernel", "start_kernel", status)
	}
	if err != nil {
		h.send(conn, map[string]interface{}{
			"type":    "error",
			"message": err.Error(),
		})
		return
	}

	message, _ := result.Data["message"].(string)
	h.send(conn, map[string]interface{}{
		"type":    "kernel",
		"message": message,
	})
}

func (h *Handler) send(conn *websocket.Conn, payload map[string]interface{}) {
	if err := conn.WriteJSON(payload); err != nil {
		h.log.Warn("websocket write failed", zap.Error(err))
	}
}
