// Package engine answers route queries over the airports of a record store.
// Every query fetches the current airports from the store and builds its own
// graph, so queries never share mutable state.
package engine

import (
	"context"
	"fmt"

	"github.com/albertthomas2205/flights-routes-system/routes"
	"go.uber.org/zap"
)

// Store is the source of airport records.
type Store interface {
	// ListAirports returns all the airports currently known by the store.
	ListAirports(ctx context.Context) ([]*routes.Airport, error)
}

// Config holds the engine settings.
type Config struct {
	// MaxResults caps the number of airports returned by NearbyAirports. The
	// closest airports are kept. Zero means no limit.
	MaxResults int
}

// Option configures an Engine.
type Option func(*Config)

// WithMaxResults sets Config.MaxResults. Negative values are treated as zero.
func WithMaxResults(n int) Option {
	return func(c *Config) {
		if n < 0 {
			n = 0
		}
		c.MaxResults = n
	}
}

type Engine struct {
	Store Store
	Cfg   Config

	logger *zap.Logger
}

// New returns an engine answering queries over the airports of store. A nil
// logger disables logging.
func New(store Store, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		Store:  store,
		Cfg:    cfg,
		logger: logger,
	}
}

// NearbyAirports returns the airports reachable from start sorted by the
// length of their shortest route.
func (e *Engine) NearbyAirports(ctx context.Context, start string) (routes.NearbyResult, error) {
	g, err := e.graph(ctx)
	if err != nil {
		return routes.NearbyResult{}, err
	}

	res := routes.ShortestDistancesFrom(g, start)
	if n := e.Cfg.MaxResults; n > 0 && len(res.Airports) > n {
		res.Airports = res.Airports[:n]
	}

	e.logger.Debug("Nearby airports query",
		zap.String("start", res.Start),
		zap.Bool("found", res.Found),
		zap.Int("airports", len(res.Airports)))
	return res, nil
}

// Duration returns the length of the shortest route between two airports.
func (e *Engine) Duration(ctx context.Context, from string, to string) (routes.DurationResult, error) {
	g, err := e.graph(ctx)
	if err != nil {
		return routes.DurationResult{}, err
	}

	res := routes.ShortestDistanceBetween(g, from, to)

	e.logger.Debug("Duration query",
		zap.String("from", res.From),
		zap.String("to", res.To),
		zap.Bool("found", res.Found),
		zap.Float64("duration", res.Duration))
	return res, nil
}

// NthNode returns the airport reached after following n links in the given
// direction ("left" or "right") from start. Invalid directions and
// non-positive n are reported as errors wrapping routes.ErrInvalidDirection
// and routes.ErrInvalidSteps.
func (e *Engine) NthNode(ctx context.Context, start string, direction string, n int) (routes.NthNodeResult, error) {
	dir, err := routes.ParseDirection(direction)
	if err != nil {
		return routes.NthNodeResult{}, err
	}

	airports, err := e.airports(ctx)
	if err != nil {
		return routes.NthNodeResult{}, err
	}

	res, err := routes.NthDirectionalNode(airports, start, dir, n)
	if err != nil {
		return routes.NthNodeResult{}, err
	}

	e.logger.Debug("Nth node query",
		zap.String("start", res.Start),
		zap.String("direction", string(dir)),
		zap.Int("steps", n),
		zap.Bool("found", res.Found))
	return res, nil
}

// LongestRoute returns the longest direct link between two airports.
func (e *Engine) LongestRoute(ctx context.Context) (routes.LongestRouteResult, error) {
	airports, err := e.airports(ctx)
	if err != nil {
		return routes.LongestRouteResult{}, err
	}

	res := routes.LongestDirectEdge(airports)

	e.logger.Debug("Longest route query",
		zap.String("from", res.From),
		zap.String("to", res.To),
		zap.Float64("distance", res.Distance))
	return res, nil
}

func (e *Engine) airports(ctx context.Context) ([]*routes.Airport, error) {
	airports, err := e.Store.ListAirports(ctx)
	if err != nil {
		e.logger.Error("Failed to list airports", zap.Error(err))
		return nil, fmt.Errorf("error listing airports: %w", err)
	}
	return airports, nil
}

// graph builds a fresh graph from the current airports of the store.
func (e *Engine) graph(ctx context.Context) (*routes.Graph, error) {
	airports, err := e.airports(ctx)
	if err != nil {
		return nil, err
	}
	g := routes.NewGraph(airports)
	e.logger.Debug("Built airport graph",
		zap.Int("airports", g.Len()),
		zap.Int("edges", len(g.Edges)))
	return g, nil
}
