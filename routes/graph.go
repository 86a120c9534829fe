package routes

import "math"

// Edge represents a weighted edge between two airports of a graph. From and To
// are airport ids as returned by Graph.ID.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph is an undirected weighted view of a set of airports. Every left or
// right link of an airport is stored as a pair of opposite edges with the same
// weight.
//
// Airport codes are interned to dense ids in order of first appearance. The
// edges leaving an airport are kept in insertion order so that all queries on
// a graph are deterministic.
type Graph struct {
	Codes []string
	Nexts [][]int
	Edges []Edge

	ids map[string]int
}

// NewGraph builds the graph of the given airports.
//
// A link only produces edges if its distance is strictly positive and finite.
// When the same pair of airports is linked more than once, the last link wins
// and silently overwrites the weight of the previous one.
func NewGraph(airports []*Airport) *Graph {
	g := &Graph{ids: make(map[string]int, len(airports))}
	for _, a := range airports {
		if a == nil {
			continue
		}
		u := g.intern(a.Code)
		if a.Left != nil && isWeight(a.LeftDistance) {
			g.link(u, g.intern(a.Left.Code), a.LeftDistance)
		}
		if a.Right != nil && isWeight(a.RightDistance) {
			g.link(u, g.intern(a.Right.Code), a.RightDistance)
		}
	}
	return g
}

// Len returns the number of airports in the graph.
func (g *Graph) Len() int {
	return len(g.Codes)
}

// ID returns the id of the airport with the given code. The second returned
// value is false if the airport is not in the graph.
func (g *Graph) ID(code string) (int, bool) {
	id, ok := g.ids[NormalizeCode(code)]
	return id, ok
}

// Has returns true if the airport with the given code is in the graph.
func (g *Graph) Has(code string) bool {
	_, ok := g.ID(code)
	return ok
}

// Neighbors returns the codes of the airports directly connected to the given
// airport, in insertion order.
func (g *Graph) Neighbors(code string) []string {
	u, ok := g.ID(code)
	if !ok {
		return nil
	}
	codes := make([]string, 0, len(g.Nexts[u]))
	for _, e := range g.Nexts[u] {
		codes = append(codes, g.Codes[g.Edges[e].To])
	}
	return codes
}

// Weight returns the weight of the edge from airport a to airport b. The second
// returned value is false if there is no such edge.
func (g *Graph) Weight(a string, b string) (float64, bool) {
	u, ok := g.ID(a)
	if !ok {
		return 0, false
	}
	v, ok := g.ID(b)
	if !ok {
		return 0, false
	}
	if e := g.edge(u, v); e >= 0 {
		return g.Edges[e].Weight, true
	}
	return 0, false
}

func (g *Graph) intern(code string) int {
	code = NormalizeCode(code)
	if id, ok := g.ids[code]; ok {
		return id
	}
	id := len(g.Codes)
	g.ids[code] = id
	g.Codes = append(g.Codes, code)
	g.Nexts = append(g.Nexts, nil)
	return id
}

// link sets the weight of the edges u -> v and v -> u.
func (g *Graph) link(u int, v int, w float64) {
	g.set(u, v, w)
	g.set(v, u, w)
}

func (g *Graph) set(u int, v int, w float64) {
	if e := g.edge(u, v); e >= 0 {
		g.Edges[e].Weight = w
		return
	}
	g.Nexts[u] = append(g.Nexts[u], len(g.Edges))
	g.Edges = append(g.Edges, Edge{From: u, To: v, Weight: w})
}

// edge returns the index of edge u -> v or -1 if it does not exist. Airports
// have few links, a linear scan is enough.
func (g *Graph) edge(u int, v int) int {
	for _, e := range g.Nexts[u] {
		if g.Edges[e].To == v {
			return e
		}
	}
	return -1
}

// isWeight reports whether d can weight an edge. NaN fails both comparisons.
func isWeight(d float64) bool {
	return d > 0 && !math.IsInf(d, 1)
}
