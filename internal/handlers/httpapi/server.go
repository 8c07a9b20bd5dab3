package httpapi

import (
	"errors"

	"github.com/gin-gonic/gin"

	sessionService "github.com/archylab/archy/internal/services/session"
	slotService "github.com/archylab/archy/internal/services/slot"
	"github.com/archylab/archy/internal/services/livestats"
)

// archerIDHeader identifies the requesting archer. Identity verification
// happens upstream; by the time a request reaches this layer the header
// is trusted.
const archerIDHeader = "X-Archer-ID"

// Config holds the dependencies for the HTTP API
type Config struct {
	SessionService sessionService.Service
	SlotService    slotService.Service
	StatsService   livestats.Service
}

// Server wires the service layer to gin routes plus the websocket
// stats feed
type Server struct {
	sessions sessionService.Service
	slots    slotService.Service
	stats    livestats.Service
	broker   *Broker
}

// New creates a new HTTP API server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}
	if cfg.SlotService == nil {
		return nil, errors.New("slot service cannot be nil")
	}
	if cfg.StatsService == nil {
		return nil, errors.New("stats service cannot be nil")
	}

	broker, err := NewBroker(&BrokerConfig{StatsService: cfg.StatsService})
	if err != nil {
		return nil, err
	}

	return &Server{
		sessions: cfg.SessionService,
		slots:    cfg.SlotService,
		stats:    cfg.StatsService,
		broker:   broker,
	}, nil
}

// Routes builds the gin engine with all API routes registered
func (s *Server) Routes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v0 := engine.Group("/v0")
	{
		sessions := v0.Group("/sessions")
		{
			sessions.POST("", s.openSession)
			sessions.GET("", s.listOpenSessions)
			sessions.GET("/closed", s.listClosedSessions)
			sessions.GET("/mine", s.ownerOpenSession)
			sessions.PATCH("/:id/close", s.closeSession)
			sessions.PATCH("/:id/reopen", s.reopenSession)
		}

		slots := v0.Group("/slots")
		{
			slots.POST("", s.joinSession)
			slots.GET("/mine", s.activeSlot)
			slots.PATCH("/:id/leave", s.leaveSlot)
			slots.PATCH("/:id/rejoin", s.rejoinSlot)
			slots.POST("/:id/shots", s.recordShot)
		}

		stats := v0.Group("/stats")
		{
			stats.GET("/:slot_id", s.getLiveStat)
			stats.GET("/:slot_id/ws", s.streamStats)
		}
	}

	return engine
}
