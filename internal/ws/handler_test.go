package ws

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyodoros/FyodorOS/backend/internal/config"
	"github.com/fyodoros/FyodorOS/backend/internal/logging"
	"github.com/fyodoros/FyodorOS/backend/internal/monitoring"
	kernelProvider "github.com/fyodoros/FyodorOS/backend/internal/providers/kernel"
	"github.com/fyodoros/FyodorOS/backend/internal/service"
	"github.com/fyodoros/FyodorOS/backend/internal/supervisor"
)

type wsReply struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// dialTestStream spins up a stream endpoint backed by a supervisor using the
// given interpreter, dials it, and consumes the welcome message.
func dialTestStream(t *testing.T, interpreter string) (*websocket.Conn, *monitoring.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sup := supervisor.New(config.KernelConfig{
		Interpreter: interpreter,
		Module:      "loop",
		Mode:        "serve",
	}, logging.NewNop())

	metrics := monitoring.NewMetrics()
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(kernelProvider.NewProvider(sup, metrics)))

	handler := NewHandler(registry, logging.NewNop(), metrics)

	router := gin.New()
	router.GET("/stream", handler.HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	welcome := readReply(t, conn)
	require.Equal(t, "system", welcome.Type)
	require.Contains(t, welcome.Message, "Connected")

	return conn, metrics
}

func readReply(t *testing.T, conn *websocket.Conn) wsReply {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var reply wsReply
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func fakeInterpreter(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-python3")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	return path
}

func TestStreamStartKernel(t *testing.T) {
	conn, metrics := dialTestStream(t, fakeInterpreter(t))

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "start_kernel"}))

	reply := readReply(t, conn)
	assert.Equal(t, "kernel", reply.Type)
	assert.Equal(t, "Kernel Process Spawned (API Mode)", reply.Message)

	assert.Equal(t, 1.0,
		testutil.ToFloat64(metrics.ServiceCalls.WithLabelValues("kernel", "start_kernel", "success")))
}

func TestStreamStartKernelSpawnFailure(t *testing.T) {
	conn, _ := dialTestStream(t, "no-such-interpreter-3f1b")

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "start_kernel"}))

	reply := readReply(t, conn)
	assert.Equal(t, "kernel", reply.Type)
	assert.True(t, strings.HasPrefix(reply.Message, "Failed to spawn kernel: "),
		"unexpected reply: %q", reply.Message)
}

func TestStreamPing(t *testing.T) {
	conn, _ := dialTestStream(t, "python3")

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))

	reply := readReply(t, conn)
	assert.Equal(t, "pong", reply.Type)
}

func TestStreamUnknownMessageType(t *testing.T) {
	conn, _ := dialTestStream(t, "python3")

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "bogus"}))

	reply := readReply(t, conn)
	assert.Equal(t, "error", reply.Type)
	assert.Equal(t, "unknown message type", reply.Message)
}
