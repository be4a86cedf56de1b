package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrUnknownSystem is returned when a system ID is not present in the graph.
	ErrUnknownSystem = errors.New("unknown system")
	// ErrInvalidGraph is returned for malformed input: negative connection
	// costs, self-loops, or duplicate systems.
	ErrInvalidGraph = errors.New("invalid graph")
)

// Connection is a directed arc to a neighboring system with its jump cost.
type Connection struct {
	To   int // canonical index of the destination system
	Cost float64
}

// Neighbor pairs a neighboring system ID with its direct jump cost.
type Neighbor struct {
	ID   string
	Cost float64
}

// Graph holds the systems and weighted connections of a star map.
// Systems are identified by case-sensitive string IDs; their insertion
// order defines the canonical indexing used by the distance matrix and
// the route solver. Read-only once constructed.
type Graph struct {
	ids      []string       // canonical index -> system ID, insertion order
	index    map[string]int // system ID -> canonical index
	adj      [][]Connection // adj[i] = outgoing connections of system i
	directed bool
	strict   bool
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected makes connections one-way. By default connections are
// undirected and AddConnection inserts both arcs.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithStrictConnections rejects duplicate connections between the same
// ordered pair instead of keeping the minimum cost.
func WithStrictConnections() Option {
	return func(g *Graph) { g.strict = true }
}

// New creates an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{index: make(map[string]int)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports whether connections are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// Len returns the number of systems.
func (g *Graph) Len() int {
	return len(g.ids)
}

// AddSystem registers a system. IDs must be unique.
func (g *Graph) AddSystem(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty system ID", ErrInvalidGraph)
	}
	if _, ok := g.index[id]; ok {
		return fmt.Errorf("%w: duplicate system %q", ErrInvalidGraph, id)
	}
	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)
	g.adj = append(g.adj, nil)
	return nil
}

// AddConnection adds a connection between two systems. Both endpoints must
// already exist. Costs must be non-negative and self-loops are rejected.
// A duplicate connection between the same ordered pair keeps the minimum
// cost (redundant map data is benign, conflicting costs resolve low).
func (g *Graph) AddConnection(from, to string, cost float64) error {
	fi, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: connection endpoint %q", ErrUnknownSystem, from)
	}
	ti, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: connection endpoint %q", ErrUnknownSystem, to)
	}
	if fi == ti {
		return fmt.Errorf("%w: self-loop on %q", ErrInvalidGraph, from)
	}
	if cost < 0 {
		return fmt.Errorf("%w: negative cost %v on %q -> %q", ErrInvalidGraph, cost, from, to)
	}
	if g.strict && g.hasArc(fi, ti) {
		return fmt.Errorf("%w: duplicate connection %q -> %q", ErrInvalidGraph, from, to)
	}
	g.addArc(fi, ti, cost)
	if !g.directed {
		g.addArc(ti, fi, cost)
	}
	return nil
}

func (g *Graph) hasArc(from, to int) bool {
	for _, c := range g.adj[from] {
		if c.To == to {
			return true
		}
	}
	return false
}

func (g *Graph) addArc(from, to int, cost float64) {
	for i, c := range g.adj[from] {
		if c.To == to {
			if cost < c.Cost {
				g.adj[from][i].Cost = cost
			}
			return
		}
	}
	g.adj[from] = append(g.adj[from], Connection{To: to, Cost: cost})
}

// Systems returns all system IDs in canonical (insertion) order.
// The returned slice is a copy.
func (g *Graph) Systems() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	return out
}

// ID returns the system ID at the given canonical index.
func (g *Graph) ID(index int) string {
	return g.ids[index]
}

// Index returns the canonical index for a system ID.
func (g *Graph) Index(id string) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, id)
	}
	return i, nil
}

// Neighbors returns the directly connected systems and jump costs for id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	i, err := g.Index(id)
	if err != nil {
		return nil, err
	}
	out := make([]Neighbor, len(g.adj[i]))
	for j, c := range g.adj[i] {
		out[j] = Neighbor{ID: g.ids[c.To], Cost: c.Cost}
	}
	return out, nil
}

// ReachableFrom returns the subgraph containing only the systems reachable
// from start (following connections in their stored direction), preserving
// the relative canonical order of the kept systems.
func (g *Graph) ReachableFrom(start string) (*Graph, error) {
	si, err := g.Index(start)
	if err != nil {
		return nil, err
	}

	seen := make([]bool, len(g.ids))
	seen[si] = true
	stack := []int{si}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range g.adj[cur] {
			if !seen[c.To] {
				seen[c.To] = true
				stack = append(stack, c.To)
			}
		}
	}

	sub := New()
	sub.directed = g.directed
	sub.strict = g.strict
	for i, id := range g.ids {
		if seen[i] {
			sub.AddSystem(id)
		}
	}
	for i := range g.ids {
		if !seen[i] {
			continue
		}
		for _, c := range g.adj[i] {
			if !seen[c.To] {
				continue
			}
			si, ti := sub.index[g.ids[i]], sub.index[g.ids[c.To]]
			sub.addArc(si, ti, c.Cost)
		}
	}
	return sub, nil
}

// IsCyclic reports whether the graph contains a cycle. For undirected
// graphs a cycle requires revisiting a system other than through the
// connection just traversed; for directed graphs any back-arc counts.
func (g *Graph) IsCyclic() bool {
	if g.directed {
		return g.hasDirectedCycle()
	}
	visited := make([]bool, len(g.ids))
	for i := range g.ids {
		if !visited[i] && g.undirectedCycleFrom(i, visited) {
			return true
		}
	}
	return false
}

func (g *Graph) undirectedCycleFrom(root int, visited []bool) bool {
	type frame struct{ node, parent int }
	stack := []frame{{root, -1}}
	visited[root] = true
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range g.adj[f.node] {
			if c.To == f.parent {
				continue
			}
			if visited[c.To] {
				return true
			}
			visited[c.To] = true
			stack = append(stack, frame{c.To, f.node})
		}
	}
	return false
}

func (g *Graph) hasDirectedCycle() bool {
	const (
		white = iota
		gray
		black
	)
	color := make([]int, len(g.ids))
	var visit func(int) bool
	visit = func(n int) bool {
		color[n] = gray
		for _, c := range g.adj[n] {
			switch color[c.To] {
			case gray:
				return true
			case white:
				if visit(c.To) {
					return true
				}
			}
		}
		color[n] = black
		return false
	}
	for i := range g.ids {
		if color[i] == white && visit(i) {
			return true
		}
	}
	return false
}
