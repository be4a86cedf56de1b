package engine

import (
	"context"

	"eve-router/internal/graph"
)

// Options tunes a solve request.
type Options struct {
	// ClosedTour adds the return leg from the last system back to the
	// start, turning the open path into a round trip.
	ClosedTour bool
	// MaxSystems caps the instance size for the exact search.
	// Zero means DefaultMaxSystems.
	MaxSystems int
}

// Route is the result of a solve: every system of the graph in optimal
// visiting order, starting at the requested system, plus the total travel
// cost along consecutive pairs.
type Route struct {
	Systems   []string
	TotalCost float64
}

// Solve computes the cheapest order that visits every system in g exactly
// once, starting from the system with ID start. The graph is first
// collapsed to an all-pairs distance matrix, so systems without a direct
// connection are traversed via intermediate jumps.
//
// Returns graph.ErrUnknownSystem if start is not in the graph, a
// *TooLargeError if the graph exceeds the exact-search limit, and
// ErrNoCompleteRoute if some system cannot be reached from start.
func Solve(ctx context.Context, g *graph.Graph, start string, opts Options) (*Route, error) {
	startIdx, err := g.Index(start)
	if err != nil {
		return nil, err
	}

	limit := opts.MaxSystems
	if limit <= 0 {
		limit = DefaultMaxSystems
	}
	if n := g.Len(); n > limit {
		return nil, &TooLargeError{Systems: n, Limit: limit}
	}

	m, err := NewDistanceMatrix(ctx, g)
	if err != nil {
		return nil, err
	}
	if !m.AllReachableFrom(startIdx) {
		return nil, ErrNoCompleteRoute
	}

	order, total, err := solveExact(ctx, m, startIdx, opts.ClosedTour)
	if err != nil {
		return nil, err
	}

	route := &Route{
		Systems:   make([]string, len(order)),
		TotalCost: total,
	}
	for i, idx := range order {
		route.Systems[i] = g.ID(idx)
	}
	return route, nil
}
