package engine

import (
	"context"
	"fmt"
	"math"
	"testing"

	"eve-router/internal/graph"
)

func buildGraph(t *testing.T, ids []string, conns [][3]interface{}) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range ids {
		if err := g.AddSystem(id); err != nil {
			t.Fatalf("AddSystem(%q): %v", id, err)
		}
	}
	for _, c := range conns {
		if err := g.AddConnection(c[0].(string), c[1].(string), c[2].(float64)); err != nil {
			t.Fatalf("AddConnection(%v): %v", c, err)
		}
	}
	return g
}

func TestDistanceMatrix_Values(t *testing.T) {
	// A --2-- B --5-- C: no direct A-C link, so the matrix carries the
	// transitive cost.
	g := buildGraph(t, []string{"A", "B", "C"}, [][3]interface{}{
		{"A", "B", 2.0},
		{"B", "C", 5.0},
	})
	m, err := NewDistanceMatrix(context.Background(), g)
	if err != nil {
		t.Fatalf("NewDistanceMatrix: %v", err)
	}

	for i := 0; i < m.Len(); i++ {
		if m.Cost(i, i) != 0 {
			t.Errorf("Cost(%d,%d) = %v, want 0", i, i, m.Cost(i, i))
		}
	}
	if got := m.Cost(0, 2); got != 7 {
		t.Errorf("Cost(A,C) = %v, want 7", got)
	}
	if got := m.Cost(2, 0); got != 7 {
		t.Errorf("Cost(C,A) = %v, want 7", got)
	}
	if !m.AllReachableFrom(0) {
		t.Error("AllReachableFrom(A) = false, want true")
	}
}

func TestDistanceMatrix_UnreachablePair(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, [][3]interface{}{
		{"A", "B", 1.0},
		{"C", "D", 1.0},
	})
	m, err := NewDistanceMatrix(context.Background(), g)
	if err != nil {
		t.Fatalf("NewDistanceMatrix: %v", err)
	}

	if !math.IsInf(m.Cost(0, 2), 1) {
		t.Errorf("Cost(A,C) = %v, want +Inf", m.Cost(0, 2))
	}
	if m.Reachable(0, 2) {
		t.Error("Reachable(A,C) = true, want false")
	}
	if !m.Reachable(0, 1) {
		t.Error("Reachable(A,B) = false, want true")
	}
	if m.AllReachableFrom(0) {
		t.Error("AllReachableFrom(A) = true, want false")
	}
}

func TestDistanceMatrix_DirectedReachability(t *testing.T) {
	g := graph.New(graph.WithDirected())
	for _, id := range []string{"A", "B"} {
		g.AddSystem(id)
	}
	g.AddConnection("A", "B", 1)

	m, err := NewDistanceMatrix(context.Background(), g)
	if err != nil {
		t.Fatalf("NewDistanceMatrix: %v", err)
	}
	if !m.Reachable(0, 1) || m.Reachable(1, 0) {
		t.Errorf("Reachable A->B/B->A = %t/%t, want true/false", m.Reachable(0, 1), m.Reachable(1, 0))
	}
	if m.AllReachableFrom(1) {
		t.Error("AllReachableFrom(B) = true, want false")
	}
}

func TestDistanceMatrix_ManySystemsBitset(t *testing.T) {
	// A path of 70 systems crosses the 64-bit word boundary of the
	// reachability rows.
	n := 70
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("S%03d", i)
	}
	g := buildGraph(t, ids, nil)
	for i := 0; i+1 < n; i++ {
		if err := g.AddConnection(ids[i], ids[i+1], 1); err != nil {
			t.Fatalf("AddConnection: %v", err)
		}
	}

	m, err := NewDistanceMatrix(context.Background(), g)
	if err != nil {
		t.Fatalf("NewDistanceMatrix: %v", err)
	}
	if !m.AllReachableFrom(0) {
		t.Error("AllReachableFrom(S000) = false, want true")
	}
	if got := m.Cost(0, n-1); got != float64(n-1) {
		t.Errorf("Cost(first,last) = %v, want %d", got, n-1)
	}
	if !m.Reachable(0, 69) || !m.Reachable(69, 0) {
		t.Error("end-to-end reachability bit missing")
	}
}

func TestDistanceMatrix_Deterministic(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D", "E"}, [][3]interface{}{
		{"A", "B", 1.0}, {"B", "C", 2.0}, {"C", "D", 3.0}, {"D", "E", 1.0}, {"E", "A", 2.0},
	})
	first, err := NewDistanceMatrix(context.Background(), g)
	if err != nil {
		t.Fatalf("NewDistanceMatrix: %v", err)
	}
	// The build is parallel across sources; repeated builds must agree.
	for run := 0; run < 10; run++ {
		m, err := NewDistanceMatrix(context.Background(), g)
		if err != nil {
			t.Fatalf("NewDistanceMatrix run %d: %v", run, err)
		}
		for i := 0; i < m.Len(); i++ {
			for j := 0; j < m.Len(); j++ {
				if m.Cost(i, j) != first.Cost(i, j) {
					t.Fatalf("run %d: Cost(%d,%d) = %v, want %v", run, i, j, m.Cost(i, j), first.Cost(i, j))
				}
			}
		}
	}
}

func TestDistanceMatrix_Cancelled(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][3]interface{}{{"A", "B", 1.0}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewDistanceMatrix(ctx, g); err == nil {
		t.Error("NewDistanceMatrix with cancelled context returned nil error")
	}
}
