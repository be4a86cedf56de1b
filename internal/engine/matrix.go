package engine

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"eve-router/internal/graph"
)

// DistanceMatrix holds the all-pairs minimal travel costs for a graph,
// indexed by the graph's canonical system ordering. Unreachable pairs are
// stored as +Inf and tracked in a per-row reachability bitset. Built fresh
// per solve; read-only afterwards.
type DistanceMatrix struct {
	n     int
	dist  []float64 // n*n, row-major
	reach []uint64  // n rows of ceil(n/64) words
	words int
}

// NewDistanceMatrix computes the matrix by running Dijkstra from every
// system. Sources are processed in parallel; each goroutine owns one row,
// so the result does not depend on scheduling.
func NewDistanceMatrix(ctx context.Context, g *graph.Graph) (*DistanceMatrix, error) {
	n := g.Len()
	m := &DistanceMatrix{
		n:     n,
		dist:  make([]float64, n*n),
		words: (n + 63) / 64,
	}
	m.reach = make([]uint64, n*m.words)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for source := 0; source < n; source++ {
		source := source
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := g.ShortestFrom(source)
			copy(m.dist[source*n:(source+1)*n], row)
			for to, d := range row {
				if !math.IsInf(d, 1) {
					m.reach[source*m.words+to/64] |= 1 << uint(to%64)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

// Len returns the number of systems the matrix covers.
func (m *DistanceMatrix) Len() int {
	return m.n
}

// Cost returns the minimal travel cost from system i to system j.
// +Inf means unreachable; check Reachable instead of comparing costs.
func (m *DistanceMatrix) Cost(i, j int) float64 {
	return m.dist[i*m.n+j]
}

// Reachable reports whether system j can be reached from system i.
func (m *DistanceMatrix) Reachable(i, j int) bool {
	return m.reach[i*m.words+j/64]&(1<<uint(j%64)) != 0
}

// AllReachableFrom reports whether every system is reachable from source.
func (m *DistanceMatrix) AllReachableFrom(source int) bool {
	row := m.reach[source*m.words : (source+1)*m.words]
	for w := 0; w < m.words; w++ {
		want := ^uint64(0)
		if w == m.words-1 && m.n%64 != 0 {
			want = 1<<uint(m.n%64) - 1
		}
		if row[w]&want != want {
			return false
		}
	}
	return true
}
