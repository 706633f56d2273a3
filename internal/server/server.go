package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fyodoros/FyodorOS/backend/internal/config"
	"github.com/fyodoros/FyodorOS/backend/internal/http"
	"github.com/fyodoros/FyodorOS/backend/internal/logging"
	"github.com/fyodoros/FyodorOS/backend/internal/middleware"
	"github.com/fyodoros/FyodorOS/backend/internal/monitoring"
	kernelProvider "github.com/fyodoros/FyodorOS/backend/internal/providers/kernel"
	systemProvider "github.com/fyodoros/FyodorOS/backend/internal/providers/system"
	"github.com/fyodoros/FyodorOS/backend/internal/service"
	"github.com/fyodoros/FyodorOS/backend/internal/supervisor"
	"github.com/fyodoros/FyodorOS/backend/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	sup      *supervisor.Supervisor
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logCfg := logging.DefaultConfig()
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	logCfg.Level = cfg.Logging.Level

	logger, err := logging.New(logCfg)
	if err != nil {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing shell backend",
		zap.String("port", cfg.Server.Port),
		zap.String("kernel_interpreter", cfg.Kernel.Interpreter),
		zap.String("kernel_module", cfg.Kernel.Module),
	)

	metrics := monitoring.NewMetrics()

	// Kernel process supervisor: the one bridge between the shell and the
	// external kernel.
	sup := supervisor.New(cfg.Kernel, logger)

	serviceRegistry := service.NewRegistry()

	logger.Info("Registering service providers...")
	registerProviders(serviceRegistry, sup, metrics, logger)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := http.NewHandlers(serviceRegistry, sup, metrics)
	wsHandler := ws.NewHandler(serviceRegistry, logger, metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// Kernel launch (dedicated bridging route)
	router.POST("/kernel/start", handlers.StartKernel)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: serviceRegistry,
		sup:      sup,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the server
func (s *Server) Run(addr string) error {
	s.logger.Info("Starting shell backend", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close cleans up resources. Spawned kernels are deliberately left running;
// the supervisor does not own them.
func (s *Server) Close() error {
	s.logger.Info("Shutting down shell backend")
	return s.logger.Sync()
}

func registerProviders(registry *service.Registry, sup *supervisor.Supervisor, metrics *monitoring.Metrics, logger *logging.Logger) {
	if err := registry.Register(kernelProvider.NewProvider(sup, metrics)); err != nil {
		logger.Warn("Failed to register kernel provider", zap.Error(err))
	}

	if err := registry.Register(systemProvider.NewProvider()); err != nil {
		logger.Warn("Failed to register system provider", zap.Error(err))
	}

	stats := registry.Stats()
	logger.Info("Service providers registered",
		zap.Any("total_services", stats["total_services"]),
		zap.Any("total_tools", stats["total_tools"]),
	)
}
