package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/albertthomas2205/flights-routes-system/routes"
	"github.com/albertthomas2205/flights-routes-system/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type nearbyRequest struct {
	Start string `form:"start" binding:"required"`
}

type durationRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type nthNodeRequest struct {
	Start     string `form:"start" binding:"required"`
	Direction string `form:"direction" binding:"required"`
	N         int    `form:"n" binding:"required,min=1"`
}

func (s *Server) handleListAirports(c *gin.Context) {
	q := c.Query("q")
	airports, err := s.airports.Search(c.Request.Context(), q)
	if err != nil {
		s.logger.Error("Failed to list airports", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list airports"})
		return
	}

	resp := AirportsResponse{Query: q, Airports: make([]AirportResponse, 0, len(airports))}
	for _, a := range airports {
		resp.Airports = append(resp.Airports, toResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handlePutAirport(c *gin.Context) {
	var in store.AirportInput
	if err := c.ShouldBindJSON(&in); err != nil {
		airportWritesTotal.WithLabelValues("put", resultInvalid).Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := s.airports.Put(in); err != nil {
		s.writeError(c, "put", err)
		return
	}

	airportWritesTotal.WithLabelValues("put", resultOK).Inc()
	c.JSON(http.StatusCreated, gin.H{"code": routes.NormalizeCode(in.Code)})
}

func (s *Server) handleAddNext(c *gin.Context) {
	var next store.NextAirport
	if err := c.ShouldBindJSON(&next); err != nil {
		airportWritesTotal.WithLabelValues("add_next", resultInvalid).Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := s.airports.AddNext(next); err != nil {
		s.writeError(c, "add_next", err)
		return
	}

	s.logger.Info("Added next airport",
		zap.String("parent", routes.NormalizeCode(next.Parent)),
		zap.String("direction", next.Direction),
		zap.String("child", routes.NormalizeCode(next.Child)),
		zap.Float64("distance", next.Distance))
	airportWritesTotal.WithLabelValues("add_next", resultOK).Inc()
	c.JSON(http.StatusCreated, gin.H{"code": routes.NormalizeCode(next.Child)})
}

func (s *Server) handleDeleteAirport(c *gin.Context) {
	if err := s.airports.Delete(c.Param("code")); err != nil {
		s.writeError(c, "delete", err)
		return
	}
	airportWritesTotal.WithLabelValues("delete", resultOK).Inc()
	c.Status(http.StatusNoContent)
}

func (s *Server) handleNearby(c *gin.Context) {
	const query = "nearby"
	defer observe(query, time.Now())

	var req nearbyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.badRequest(c, query, err)
		return
	}

	res, err := s.engine.NearbyAirports(c.Request.Context(), req.Start)
	if err != nil {
		s.queryError(c, query, err)
		return
	}

	queriesTotal.WithLabelValues(query, foundLabel(res.Found)).Inc()
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleDuration(c *gin.Context) {
	const query = "duration"
	defer observe(query, time.Now())

	var req durationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.badRequest(c, query, err)
		return
	}

	res, err := s.engine.Duration(c.Request.Context(), req.From, req.To)
	if err != nil {
		s.queryError(c, query, err)
		return
	}

	queriesTotal.WithLabelValues(query, foundLabel(res.Found)).Inc()
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleNthNode(c *gin.Context) {
	const query = "nth"
	defer observe(query, time.Now())

	var req nthNodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.badRequest(c, query, err)
		return
	}

	res, err := s.engine.NthNode(c.Request.Context(), req.Start, req.Direction, req.N)
	if err != nil {
		s.queryError(c, query, err)
		return
	}

	queriesTotal.WithLabelValues(query, foundLabel(res.Found)).Inc()
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleLongest(c *gin.Context) {
	const query = "longest"
	defer observe(query, time.Now())

	res, err := s.engine.LongestRoute(c.Request.Context())
	if err != nil {
		s.queryError(c, query, err)
		return
	}

	queriesTotal.WithLabelValues(query, foundLabel(res.Found)).Inc()
	c.JSON(http.StatusOK, res)
}

func observe(query string, start time.Time) {
	queryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}

func (s *Server) badRequest(c *gin.Context, query string, err error) {
	queriesTotal.WithLabelValues(query, resultInvalid).Inc()
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// queryError maps an engine error to a response. Invalid arguments are the
// caller's fault, anything else comes from the store.
func (s *Server) queryError(c *gin.Context, query string, err error) {
	if errors.Is(err, routes.ErrInvalidDirection) || errors.Is(err, routes.ErrInvalidSteps) {
		s.badRequest(c, query, err)
		return
	}
	queriesTotal.WithLabelValues(query, resultError).Inc()
	s.logger.Error("Route query failed", zap.String("query", query), zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "route query failed"})
}

func (s *Server) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		airportWritesTotal.WithLabelValues(op, resultInvalid).Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrAirportNotFound):
		airportWritesTotal.WithLabelValues(op, resultNotFound).Inc()
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		airportWritesTotal.WithLabelValues(op, resultError).Inc()
		s.logger.Error("Airport write failed", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "airport write failed"})
	}
}
