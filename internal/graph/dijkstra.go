package graph

import (
	"container/heap"
	"math"
)

// ShortestFrom runs Dijkstra from the system at canonical index source and
// returns the minimal travel cost to every system, indexed canonically.
// Unreachable systems get +Inf. Costs are assumed non-negative (enforced
// at construction).
func (g *Graph) ShortestFrom(source int) []float64 {
	dist := make([]float64, len(g.ids))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	pq := &priorityQueue{{system: source, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if item.cost > dist[item.system] {
			continue
		}
		for _, c := range g.adj[item.system] {
			nd := item.cost + c.Cost
			if nd < dist[c.To] {
				dist[c.To] = nd
				heap.Push(pq, pqItem{system: c.To, cost: nd})
			}
		}
	}
	return dist
}

// Priority queue for Dijkstra
type pqItem struct {
	system int
	cost   float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
