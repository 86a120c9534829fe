package routes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/albertthomas2205/flights-routes-system/routes/paths"
)

const (
	msgNoNearbyAirport = "No nearby airport found."
	msgInvalidCodes    = "Invalid airport codes."
	msgNoRouteData     = "No route data available."
)

// Reachable is an airport reachable from a starting airport together with the
// length of the shortest route to it.
type Reachable struct {
	Code     string  `json:"code"`
	Distance float64 `json:"distance"`
}

// NearbyResult is the result of ShortestDistancesFrom. If Found is false,
// Message explains why no airport was reported.
type NearbyResult struct {
	Start    string      `json:"start"`
	Airports []Reachable `json:"airports,omitempty"`
	Found    bool        `json:"found"`
	Message  string      `json:"message,omitempty"`
}

// DurationResult is the result of ShortestDistanceBetween. If Found is false,
// Message explains why no route was reported.
type DurationResult struct {
	From     string     `json:"from"`
	To       string     `json:"to"`
	Duration float64    `json:"duration"`
	Path     paths.Path `json:"path,omitempty"`
	Found    bool       `json:"found"`
	Message  string     `json:"message,omitempty"`
}

// NthNodeResult is the result of NthDirectionalNode. If Found is false,
// Message explains why the walk failed and FailedStep is the 1-based step at
// which it failed (0 if the starting airport does not exist).
type NthNodeResult struct {
	Start      string    `json:"start"`
	Direction  Direction `json:"direction"`
	Steps      int       `json:"steps"`
	Code       string    `json:"code,omitempty"`
	FailedStep int       `json:"failed_step,omitempty"`
	Found      bool      `json:"found"`
	Message    string    `json:"message,omitempty"`
}

// LongestRouteResult is the result of LongestDirectEdge. If Found is false,
// Message explains why no route was reported.
type LongestRouteResult struct {
	From     string  `json:"from,omitempty"`
	To       string  `json:"to,omitempty"`
	Distance float64 `json:"distance"`
	Found    bool    `json:"found"`
	Message  string  `json:"message,omitempty"`
}

// ShortestDistancesFrom returns all the airports reachable from the airport
// start along with the length of the shortest route to each of them. Airports
// are sorted by non-decreasing distance; airports at the same distance are
// listed in the order in which the search discovered them. The starting
// airport itself is never part of the result.
func ShortestDistancesFrom(g *Graph, start string) NearbyResult {
	res := NearbyResult{Start: NormalizeCode(start)}

	src, ok := g.ID(start)
	if !ok {
		res.Message = msgNoNearbyAirport
		return res
	}

	sp, _ := dijkstra(g, src, -1)
	for _, v := range sp.order {
		if v == src {
			continue
		}
		res.Airports = append(res.Airports, Reachable{
			Code:     g.Codes[v],
			Distance: sp.dists[v],
		})
	}
	if len(res.Airports) == 0 {
		res.Message = msgNoNearbyAirport
		return res
	}

	sort.SliceStable(res.Airports, func(i, j int) bool {
		return res.Airports[i].Distance < res.Airports[j].Distance
	})
	res.Found = true
	return res
}

// ShortestDistanceBetween returns the length of the shortest route from the
// airport from to the airport to, and the airports along that route.
func ShortestDistanceBetween(g *Graph, from string, to string) DurationResult {
	res := DurationResult{From: NormalizeCode(from), To: NormalizeCode(to)}

	src, okFrom := g.ID(from)
	dst, okTo := g.ID(to)
	if !okFrom || !okTo {
		res.Message = msgInvalidCodes
		return res
	}

	sp, reached := dijkstra(g, src, dst)
	if !reached {
		res.Message = fmt.Sprintf("No route found between %s and %s.", res.From, res.To)
		return res
	}

	nodes := sp.pathTo(g, dst)
	codes := make([]string, len(nodes))
	for i, n := range nodes {
		codes[i] = g.Codes[n]
	}

	res.Duration = sp.dists[dst]
	res.Path = paths.New(codes...)
	res.Found = true
	return res
}

// NthDirectionalNode follows the links of the given direction n times starting
// from the airport start and returns the airport it ends on. Unlike the other
// queries, it walks the directed links of the airports rather than the
// undirected graph.
//
// An error is only returned for invalid arguments: a direction that is neither
// Left nor Right, or a non-positive n.
func NthDirectionalNode(airports []*Airport, start string, dir Direction, n int) (NthNodeResult, error) {
	if dir != Left && dir != Right {
		return NthNodeResult{}, fmt.Errorf("%w: got %q", ErrInvalidDirection, string(dir))
	}
	if n <= 0 {
		return NthNodeResult{}, fmt.Errorf("%w: got %d", ErrInvalidSteps, n)
	}

	res := NthNodeResult{
		Start:     NormalizeCode(start),
		Direction: dir,
		Steps:     n,
	}

	curr := findAirport(airports, start)
	if curr == nil {
		res.Message = fmt.Sprintf("Airport %s not found.", res.Start)
		return res, nil
	}

	for step := 1; step <= n; step++ {
		next, _ := curr.Child(dir)
		if next == nil {
			res.FailedStep = step
			res.Message = fmt.Sprintf("No %s node found at step %d.", dir, step)
			return res, nil
		}
		curr = next
	}

	res.Code = curr.Code
	res.Found = true
	return res, nil
}

// LongestDirectEdge returns the longest direct link between two airports. If
// several links share the longest distance, the first one found is returned,
// scanning airports in order and the left link of an airport before its right
// link.
func LongestDirectEdge(airports []*Airport) LongestRouteResult {
	res := LongestRouteResult{Message: msgNoRouteData}
	for _, a := range airports {
		if a == nil {
			continue
		}
		for _, dir := range []Direction{Left, Right} {
			child, dist := a.Child(dir)
			if child == nil || !(dist > res.Distance) {
				continue
			}
			res = LongestRouteResult{
				From:     a.Code,
				To:       child.Code,
				Distance: dist,
				Found:    true,
			}
		}
	}
	return res
}

// findAirport returns the airport with the given code, ignoring letter case,
// or nil if there is none.
func findAirport(airports []*Airport, code string) *Airport {
	code = strings.TrimSpace(code)
	for _, a := range airports {
		if a != nil && strings.EqualFold(a.Code, code) {
			return a
		}
	}
	return nil
}
