package server

import (
	"context"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"

	"vaccine-assistant/internal/actions"
	"vaccine-assistant/internal/common/config"
	"vaccine-assistant/internal/common/logger"
	"vaccine-assistant/internal/conversation"
	"vaccine-assistant/internal/models"
	"vaccine-assistant/pkg/catalog"
)

const ServiceName = "vaccine-assistant"

// Dispatcher runs actions named by the webhook caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, turn *actions.Turn) (*actions.Result, error)
	Has(name string) bool
}

// Conversations serves the session API.
type Conversations interface {
	Handle(ctx context.Context, senderID string, in conversation.Input) (*conversation.Reply, error)
	Slots(ctx context.Context, senderID string) (models.Slots, error)
	Reset(ctx context.Context, senderID string) error
}

// Check is one readiness probe, usually a backing store ping.
type Check func(ctx context.Context) error

type Deps struct {
	Dispatcher    Dispatcher
	Conversations Conversations
	Catalog       *catalog.ActionCatalog
	Checks        map[string]Check
	Logger        logger.Logger
	// Registry receives the HTTP metrics; the default registerer when nil.
	Registry prometheus.Registerer
	Version  string
}

type Server struct {
	app  *fiber.App
	deps Deps
	log  logger.Logger
}

func New(cfg config.ServerConfig, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = logger.NewNoOpLogger()
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.DefaultRegisterer
	}

	app := fiber.New(fiber.Config{
		AppName:               ServiceName,
		ReadTimeout:           config.GetDuration(cfg.ReadTimeout),
		WriteTimeout:          config.GetDuration(cfg.WriteTimeout),
		DisableStartupMessage: true,
	})

	s := &Server{
		app:  app,
		deps: deps,
		log:  deps.Logger.WithFields(map[string]interface{}{"component": "server"}),
	}

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(s.requestLogger)

	prom := fiberprometheus.NewWithRegistry(deps.Registry, ServiceName, "http", "", nil)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health", s.health)
	s.app.Get("/ready", s.ready)

	s.app.Post("/webhook", s.webhook)
	s.app.Get("/actions", s.listActions)

	v1 := s.app.Group("/v1/conversations/:sender")
	v1.Post("/messages", s.postMessage)
	v1.Get("/slots", s.getSlots)
	v1.Delete("/slots", s.deleteSlots)
}

// App exposes the fiber app, mostly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	s.log.Info("http server listening", map[string]interface{}{"addr": addr})
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.log.Debug("http request", map[string]interface{}{
		"method":    c.Method(),
		"path":      c.Path(),
		"status":    c.Response().StatusCode(),
		"duration":  time.Since(start).String(),
		"requestId": c.GetRespHeader(fiber.HeaderXRequestID),
	})
	return err
}
