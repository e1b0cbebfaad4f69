// Package api is the operator HTTP surface: the approval queue, ticket and
// decision read endpoints, on-demand analysis, health, and metrics.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shipdesk/shipdesk/pkg/approval"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/services"
)

// Server is the operator API server.
type Server struct {
	cfg       *config.Config
	db        *database.Client
	pending   *approval.Queue
	tickets   *services.TicketService
	decisions *services.DecisionService
	analyze   *services.AnalyzeService
	directory *services.DirectoryService

	e       *echo.Echo
	httpSrv *http.Server
}

// NewServer creates the API server with all routes registered.
func NewServer(cfg *config.Config, db *database.Client, pending *approval.Queue, tickets *services.TicketService, decisions *services.DecisionService, analyze *services.AnalyzeService, directory *services.DirectoryService) *Server {
	s := &Server{
		cfg:       cfg,
		db:        db,
		pending:   pending,
		tickets:   tickets,
		decisions: decisions,
		analyze:   analyze,
		directory: directory,
		e:         echo.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.e.Use(securityHeaders())

	s.e.GET("/healthz", s.healthHandler)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	g := s.e.Group("/api/v1")

	g.GET("/messages/pending", s.listPendingHandler)
	g.GET("/messages/pending/:id", s.getPendingHandler)
	g.POST("/messages/pending/:id/approve", s.approvePendingHandler)
	g.POST("/messages/pending/:id/reject", s.rejectPendingHandler)
	g.POST("/messages/pending/:id/retry", s.retryPendingHandler)

	g.GET("/tickets", s.listTicketsHandler)
	g.GET("/tickets/:ticket_number", s.getTicketHandler)
	g.POST("/tickets/:ticket_number/analyze", s.analyzeHandler)

	g.GET("/ai-decisions", s.listDecisionsHandler)
	g.GET("/ai-decisions/:id", s.getDecisionHandler)
	g.POST("/ai-decisions/:id/feedback", s.feedbackHandler)

	g.GET("/suppliers", s.listSuppliersHandler)
	g.PUT("/suppliers", s.upsertSupplierHandler)
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.e,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Handler exposes the router (used by tests).
func (s *Server) Handler() http.Handler {
	return s.e
}
