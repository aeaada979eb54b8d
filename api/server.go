package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/trayweave/cableroute/routing"
)

// Server wraps a gin.Engine over a routing.Engine. It holds no state of
// its own beyond the engine and logger it was constructed with.
type Server struct {
	engine *gin.Engine
	router *routing.Engine
	logger *zap.Logger
}

// NewServer builds a Server with its routes registered. router must not
// be nil. A nil logger is replaced with a no-op one.
func NewServer(router *routing.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{engine: gin.New(), router: router, logger: logger}
	s.engine.Use(gin.Recovery())
	s.registerRoutes()

	return s
}

// Handler returns the underlying http.Handler for use with http.Server.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) registerRoutes() {
	s.engine.POST("/routing", s.handleRouteGrid)
	s.engine.POST("/cables/length", s.handleUpdateCableLength)
}

// handleRouteGrid binds a GridConfig, runs the routing pipeline, and
// returns the RoutingResponse. A malformed body is a 400; any error
// surfaced from RouteGrid indicates a violated invariant and is a 500 —
// recoverable per-cable conditions never reach this path as errors, they
// come back inside a 200 response (warnings, problematicCables, or a cable
// missing from cableRoutes).
func (s *Server) handleRouteGrid(c *gin.Context) {
	var req gridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	resp, err := s.router.RouteGrid(c.Request.Context(), req.toDomain())
	if err != nil {
		s.logger.Error("routing pipeline failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal routing failure"})

		return
	}

	c.JSON(http.StatusOK, responseOf(resp))
}

type updateCableLengthRequest struct {
	CableIdentifier string `json:"cable_identifier" binding:"required"`
	Length          string `json:"length" binding:"required"`
}

type updateCableLengthResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	CableIdentifier string `json:"cable_identifier"`
}

// handleUpdateCableLength implements the stateless length-update
// contract: it only validates the request shape and echoes an
// acknowledgement. The server holds no cable state to mutate — the
// caller is expected to resubmit the full GridConfig, with the updated
// cable length, to /routing.
func (s *Server) handleUpdateCableLength(c *gin.Context) {
	var req updateCableLengthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, updateCableLengthResponse{
		Success:         true,
		Message:         "length recorded; resubmit the grid to re-route",
		CableIdentifier: req.CableIdentifier,
	})
}
