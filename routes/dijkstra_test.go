package routes

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDijkstra(t *testing.T) {
	// 0 --1-- 1 --1-- 2
	// |               |
	// +------5--------+
	//
	// 3 (isolated)
	g := NewGraph(newAirports([]string{"A", "B", "C", "D"},
		link{"A", Left, "B", 1},
		link{"B", Left, "C", 1},
		link{"A", Right, "C", 5},
	))
	inf := math.Inf(1)

	testCases := []struct {
		desc        string
		src, dst    int
		wantReached bool
		wantDists   []float64
		wantOrder   []int
	}{
		{
			desc:      "whole component",
			src:       0,
			dst:       -1,
			wantDists: []float64{0, 1, 2, inf},
			wantOrder: []int{0, 1, 2},
		},
		{
			desc:        "stops at destination",
			src:         0,
			dst:         1,
			wantReached: true,
			wantDists:   []float64{0, 1, 5, inf},
			wantOrder:   []int{0, 1, 2},
		},
		{
			desc:      "isolated source",
			src:       3,
			dst:       0,
			wantDists: []float64{inf, inf, inf, 0},
			wantOrder: []int{3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			sp, reached := dijkstra(g, tc.src, tc.dst)

			if reached != tc.wantReached {
				t.Errorf("dijkstra(): want reached %t, got %t", tc.wantReached, reached)
			}
			if diff := cmp.Diff(tc.wantDists, sp.dists); diff != "" {
				t.Errorf("dijkstra(): dists mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantOrder, sp.order); diff != "" {
				t.Errorf("dijkstra(): order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDijkstra_improvedNodeKeepsDiscoveryRank(t *testing.T) {
	// A --10-- B
	// |        |
	// 1        1
	// |        |
	// C --1--- D
	g := NewGraph(newAirports([]string{"A", "B", "C", "D"},
		link{"A", Left, "B", 10},
		link{"A", Right, "C", 1},
		link{"C", Left, "D", 1},
		link{"D", Left, "B", 1},
	))

	sp, _ := dijkstra(g, 0, -1)

	if diff := cmp.Diff([]float64{0, 3, 1, 2}, sp.dists); diff != "" {
		t.Errorf("dijkstra(): dists mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, sp.order); diff != "" {
		t.Errorf("dijkstra(): order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2, 3, 1}, sp.pathTo(g, 1)); diff != "" {
		t.Errorf("pathTo(1): mismatch (-want +got):\n%s", diff)
	}
}

func TestShortestPaths_pathTo(t *testing.T) {
	g := NewGraph(newAirports([]string{"A", "B", "C", "D"},
		link{"A", Left, "B", 1},
		link{"B", Left, "C", 1},
		link{"A", Right, "C", 5},
	))
	sp, _ := dijkstra(g, 0, -1)

	testCases := []struct {
		dst  int
		want []int
	}{
		{0, []int{0}},
		{1, []int{0, 1}},
		{2, []int{0, 1, 2}},
		{3, nil},
	}

	for _, tc := range testCases {
		got := sp.pathTo(g, tc.dst)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("pathTo(%d): mismatch (-want +got):\n%s", tc.dst, diff)
		}
	}
}
