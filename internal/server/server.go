// Package server exposes the tutoring engine over HTTP. Routing,
// validation, and persistence live here; the engine itself stays pure.
package server

// #region imports
import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/danielpatrickdp/frog-tutor/internal/config"
	"github.com/danielpatrickdp/frog-tutor/internal/decision"
	"github.com/danielpatrickdp/frog-tutor/internal/solver"
	"github.com/danielpatrickdp/frog-tutor/internal/store"
)

// #endregion

// Version reported by the health endpoint.
const Version = "1.0.0"

// #region server

// Server wires the store, solver, and decision engine behind the HTTP
// surface.
type Server struct {
	cfg    config.Config
	store  *store.Store
	solver *solver.Solver
	engine *decision.Engine
	logger *slog.Logger
}

// New builds a server from its collaborators.
func New(cfg config.Config, st *store.Store, sv *solver.Solver, eng *decision.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, store: st, solver: sv, engine: eng, logger: logger}
}

// Router returns the configured gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", s.handleHealth)
	router.POST("/game", s.handleCreateGame)
	router.POST("/game/:id", s.handleMove)
	router.POST("/game/:id/miss", s.handleMiss)
	router.GET("/game/:id/best_next", s.handleBestNext)
	router.GET("/game/:id/metrics", s.handleMetrics)

	return router
}

// #endregion
