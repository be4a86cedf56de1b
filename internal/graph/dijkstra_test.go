package graph

import (
	"math"
	"testing"
)

func TestShortestFrom_WeightedPath(t *testing.T) {
	// A --2-- B --5-- C, plus a detour A --1-- D --1-- C.
	g := buildGraph(t, []string{"A", "B", "C", "D"}, [][3]interface{}{
		{"A", "B", 2.0},
		{"B", "C", 5.0},
		{"A", "D", 1.0},
		{"D", "C", 1.0},
	})
	dist := g.ShortestFrom(0)

	want := []float64{0, 2, 2, 1}
	for i, w := range want {
		if dist[i] != w {
			t.Errorf("dist[%s] = %v, want %v", g.ID(i), dist[i], w)
		}
	}
}

func TestShortestFrom_Unreachable(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][3]interface{}{
		{"A", "B", 1.0},
	})
	dist := g.ShortestFrom(0)
	if dist[0] != 0 || dist[1] != 1 {
		t.Errorf("dist = %v, want [0 1 +Inf]", dist)
	}
	if !math.IsInf(dist[2], 1) {
		t.Errorf("dist[C] = %v, want +Inf", dist[2])
	}
}

func TestShortestFrom_CycleShortcut(t *testing.T) {
	// Ring of 5 with uniform cost: opposite side reached the short way round.
	ids := []string{"A", "B", "C", "D", "E"}
	conns := [][3]interface{}{
		{"A", "B", 1.0}, {"B", "C", 1.0}, {"C", "D", 1.0}, {"D", "E", 1.0}, {"E", "A", 1.0},
	}
	g := buildGraph(t, ids, conns)
	dist := g.ShortestFrom(0)
	want := []float64{0, 1, 2, 2, 1}
	for i, w := range want {
		if dist[i] != w {
			t.Errorf("dist[%s] = %v, want %v", ids[i], dist[i], w)
		}
	}
}

func TestShortestFrom_DirectedAsymmetry(t *testing.T) {
	g := New(WithDirected())
	for _, id := range []string{"A", "B"} {
		g.AddSystem(id)
	}
	g.AddConnection("A", "B", 3)

	if dist := g.ShortestFrom(0); dist[1] != 3 {
		t.Errorf("dist A->B = %v, want 3", dist[1])
	}
	if dist := g.ShortestFrom(1); !math.IsInf(dist[0], 1) {
		t.Errorf("dist B->A = %v, want +Inf", dist[0])
	}
}
