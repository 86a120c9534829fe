package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query and write results used as metric labels.
const (
	resultOK       = "ok"
	resultFound    = "found"
	resultNotFound = "not_found"
	resultInvalid  = "invalid"
	resultError    = "error"
)

var (
	// queriesTotal counts route queries by query name and result.
	// Labels: query ("nearby", "duration", "nth", "longest"),
	// result ("found", "not_found", "invalid", "error").
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightroutes_queries_total",
		Help: "Total route queries by query and result",
	}, []string{"query", "result"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flightroutes_query_duration_seconds",
		Help:    "Route query duration",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"query"})

	// airportWritesTotal counts airport writes by operation and result.
	// Labels: op ("put", "add_next", "delete"),
	// result ("ok", "not_found", "invalid", "error").
	airportWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightroutes_airport_writes_total",
		Help: "Total airport writes by operation and result",
	}, []string{"op", "result"})
)

func foundLabel(found bool) string {
	if found {
		return resultFound
	}
	return resultNotFound
}
