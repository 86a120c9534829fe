// Package server exposes the airport store and the route queries over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/albertthomas2205/flights-routes-system/engine"
	"github.com/albertthomas2205/flights-routes-system/routes"
	"github.com/albertthomas2205/flights-routes-system/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Airports is the writable side of the airport store.
type Airports interface {
	Search(ctx context.Context, q string) ([]*routes.Airport, error)
	Put(in store.AirportInput) error
	AddNext(next store.NextAirport) error
	Delete(code string) error
}

// ErrorResponse is the body of all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AirportResponse is the JSON representation of an airport.
type AirportResponse struct {
	Code          string  `json:"code"`
	Left          string  `json:"left,omitempty"`
	LeftDistance  float64 `json:"left_distance,omitempty"`
	Right         string  `json:"right,omitempty"`
	RightDistance float64 `json:"right_distance,omitempty"`
}

// AirportsResponse is the body returned when listing airports.
type AirportsResponse struct {
	Query    string            `json:"query,omitempty"`
	Airports []AirportResponse `json:"airports"`
}

type Server struct {
	engine   *engine.Engine
	airports Airports
	logger   *zap.Logger
	router   *gin.Engine
}

// New returns a server answering route queries with eng and managing airports
// through airports.
func New(eng *engine.Engine, airports Airports, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine:   eng,
		airports: airports,
		logger:   logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP requests on addr until ctx is canceled, then shuts the
// server down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests(), cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a := r.Group("/airports")
	a.GET("", s.handleListAirports)
	a.POST("", s.handlePutAirport)
	a.POST("/next", s.handleAddNext)
	a.DELETE("/:code", s.handleDeleteAirport)

	q := r.Group("/routes")
	q.GET("/nearby", s.handleNearby)
	q.GET("/duration", s.handleDuration)
	q.GET("/nth", s.handleNthNode)
	q.GET("/longest", s.handleLongest)

	return r
}

// logRequests logs one line per request once it has been served.
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func toResponse(a *routes.Airport) AirportResponse {
	r := AirportResponse{Code: a.Code}
	if a.Left != nil {
		r.Left, r.LeftDistance = a.Left.Code, a.LeftDistance
	}
	if a.Right != nil {
		r.Right, r.RightDistance = a.Right.Code, a.RightDistance
	}
	return r
}
