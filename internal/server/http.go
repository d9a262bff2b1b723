package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/assistant-directory/internal/assistant/service"
	"github.com/lk2023060901/assistant-directory/internal/conf"
	apperrors "github.com/lk2023060901/assistant-directory/internal/pkg/errors"
	"github.com/lk2023060901/assistant-directory/internal/pkg/logger"
	"github.com/lk2023060901/assistant-directory/internal/pkg/response"
	"github.com/rs/cors"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	apiPrefix          = "/api"
	helloMessage       = "Hello from Flask!"
	healthCheckTimeout = 2 * time.Second
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HTTPServer struct {
	server   *http.Server
	listener net.Listener
	logger   *logger.Logger
}

func NewHTTPServer(
	config *conf.Config,
	log *logger.Logger,
	health HealthChecker,
	assistantService *service.AssistantService,
) *HTTPServer {
	router := gin.New()
	router.Use(logger.GinRecovery(log))
	router.Use(logger.GinLogger(log, logger.MiddlewareOptions{
		SkipPaths: []string{"/health"},
	}))
	router.Use(corsMiddleware(apiPrefix+"/", newCORS(config.Server.CORS)))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := health.HealthCheck(ctx); err != nil {
			log.WithContext(c.Request.Context()).Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unavailable",
				"time":     time.Now().Format(time.RFC3339),
				"database": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	})

	// API routes
	api := router.Group(apiPrefix)
	api.GET("/hello", hello)
	api.POST("/data", echo)
	assistantService.RegisterRoutes(api)

	router.NoRoute(func(c *gin.Context) {
		response.HandleError(c, apperrors.New(apperrors.ErrNotFound, "route not found"))
	})

	return &HTTPServer{
		server: &http.Server{
			Addr:              config.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: log,
	}
}

// Handler exposes the router, mainly for tests
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

// Listen binds the configured address
func (s *HTTPServer) Listen() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address once Listen has succeeded
func (s *HTTPServer) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

// Start serves until Stop is called, binding first when Listen was skipped
func (s *HTTPServer) Start() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.logger.Info("starting HTTP server", zap.String("addr", s.Addr()))

	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")
	return s.server.Shutdown(ctx)
}

func hello(c *gin.Context) {
	response.Success(c, gin.H{"message": helloMessage})
}

// echo returns the request body untouched under "received"
func echo(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "failed to read request body")
		return
	}

	var received json.RawMessage
	if len(strings.TrimSpace(string(body))) > 0 {
		if !gjson.ValidBytes(body) {
			response.BadRequest(c, "invalid JSON body")
			return
		}
		received = body
	}

	response.Success(c, gin.H{
		"received": received,
		"status":   "success",
	})
}

func newCORS(cfg conf.CORSConfig) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

// corsMiddleware runs at engine level so preflights reach it even though
// no OPTIONS routes are registered
func corsMiddleware(prefix string, c *cors.Cors) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !strings.HasPrefix(ctx.Request.URL.Path, prefix) {
			ctx.Next()
			return
		}

		c.HandlerFunc(ctx.Writer, ctx.Request)

		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
