package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// DefaultMaxSystems is the largest instance the exact solver accepts unless
// the caller raises the limit. The subset DP needs O(2^V * V) memory, which
// stops being practical a little above 20 systems.
const DefaultMaxSystems = 20

// ErrNoCompleteRoute is returned when at least one system cannot be reached
// from the start system, so no route visiting everything exists.
var ErrNoCompleteRoute = errors.New("no complete route: unreachable system")

// TooLargeError is returned when the system count exceeds the exact-search
// limit. It carries the limit so the caller can decide to retry with a
// higher Options.MaxSystems.
type TooLargeError struct {
	Systems int
	Limit   int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("graph has %d systems, exact search is limited to %d", e.Systems, e.Limit)
}

// solveExact finds the minimum-cost order visiting every system exactly
// once, starting at start. closed adds the return leg to start.
//
// This is the Held-Karp subset DP run backwards: remaining[mask][j] is the
// cheapest cost to finish the route from system j with mask already
// visited. Computing the table suffix-first lets the reconstruction walk
// forward and pick the smallest canonical index whenever several
// continuations are equally cheap, so ties always resolve to the
// lexicographically smallest order.
func solveExact(ctx context.Context, m *DistanceMatrix, start int, closed bool) ([]int, float64, error) {
	n := m.Len()
	full := 1<<uint(n) - 1
	startBit := 1 << uint(start)

	remaining := make([]float64, (full+1)*n)

	// Masks are filled in descending order; every transition reads a
	// strictly larger mask, so each entry is ready when needed.
	for mask := full; mask >= startBit; mask-- {
		if mask%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
		}
		if mask&startBit == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if mask&(1<<uint(j)) == 0 {
				continue
			}
			if mask == full {
				if closed {
					remaining[mask*n+j] = m.Cost(j, start)
				}
				continue
			}
			best := math.Inf(1)
			for k := 0; k < n; k++ {
				if mask&(1<<uint(k)) != 0 {
					continue
				}
				if c := m.Cost(j, k) + remaining[(mask|1<<uint(k))*n+k]; c < best {
					best = c
				}
			}
			remaining[mask*n+j] = best
		}
	}

	total := remaining[startBit*n+start]
	if math.IsInf(total, 1) {
		return nil, 0, ErrNoCompleteRoute
	}

	// Forward reconstruction. At each step take the lowest-index unvisited
	// system whose continuation matches the optimal remaining cost; the
	// comparison is exact because both sides are the same float expressions
	// the DP minimized over.
	order := make([]int, 1, n)
	order[0] = start
	mask, cur := startBit, start
	for mask != full {
		for k := 0; k < n; k++ {
			if mask&(1<<uint(k)) != 0 {
				continue
			}
			if m.Cost(cur, k)+remaining[(mask|1<<uint(k))*n+k] == remaining[mask*n+cur] {
				order = append(order, k)
				mask |= 1 << uint(k)
				cur = k
				break
			}
		}
	}
	return order, total, nil
}

// routeCost sums the matrix costs along consecutive pairs of order,
// adding the return leg when closed.
func routeCost(m *DistanceMatrix, order []int, closed bool) float64 {
	var total float64
	for i := 0; i+1 < len(order); i++ {
		total += m.Cost(order[i], order[i+1])
	}
	if closed && len(order) > 1 {
		total += m.Cost(order[len(order)-1], order[0])
	}
	return total
}
