package routes

import (
	"math"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// shortestPaths holds the result of a single-source shortest path search.
type shortestPaths struct {
	src int

	// dists[v] is the length of the shortest path from src to v, or +Inf if v
	// has not been reached.
	dists []float64

	// prevs[v] is the last edge on the shortest path from src to v, or -1 if v
	// is src or has not been reached.
	prevs []int

	// order lists the reached nodes in the order they were first discovered,
	// starting with src.
	order []int
}

// dijkstra computes the shortest paths from node src to all the other nodes of
// graph g. If dst is a node of g, the search stops as soon as dst is settled;
// the returned bool reports whether that happened. Pass dst = -1 to explore
// the whole component of src.
//
// Edge weights are strictly positive by construction (see NewGraph) so a node
// popped from the heap is settled at its final distance.
func dijkstra(g *Graph, src int, dst int) (*shortestPaths, bool) {
	nNodes := g.Len()

	sp := &shortestPaths{
		src:   src,
		dists: make([]float64, nNodes),
		prevs: make([]int, nNodes),
	}
	for i := range sp.dists {
		sp.dists[i] = math.Inf(1)
		sp.prevs[i] = -1
	}

	// Content of a sparse set without removals is in insertion order.
	discovered := sparsesets.New(nNodes)
	discovered.Insert(src)

	h := yagh.New[float64](nNodes)
	h.Put(src, 0)
	sp.dists[src] = 0

	for h.Size() > 0 {
		entry := h.Pop()
		u, d := entry.Elem, entry.Cost

		if u == dst {
			sp.order = append([]int(nil), discovered.Content()...)
			return sp, true
		}

		for _, e := range g.Nexts[u] {
			v := g.Edges[e].To
			newDist := d + g.Edges[e].Weight

			// Path src -> u -> v is not better than the best known path.
			if discovered.Contains(v) && sp.dists[v] <= newDist {
				continue
			}

			discovered.Insert(v)
			sp.dists[v] = newDist
			sp.prevs[v] = e
			h.Put(v, newDist)
		}
	}

	sp.order = append([]int(nil), discovered.Content()...)
	return sp, false
}

// pathTo returns the nodes on the shortest path from the search source to dst,
// both included. It returns nil if dst was not reached.
func (sp *shortestPaths) pathTo(g *Graph, dst int) []int {
	if math.IsInf(sp.dists[dst], 1) {
		return nil
	}
	nodes := []int{dst}
	for e := sp.prevs[dst]; e >= 0; e = sp.prevs[g.Edges[e].From] {
		nodes = append(nodes, g.Edges[e].From)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}
