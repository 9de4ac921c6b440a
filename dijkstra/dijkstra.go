package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/dkoval/emergenet/core"
)

// ShortestPath computes the minimum-weight route from src to dst.
//
// Returns the node sequence (src first, dst last) and the total routing
// weight along it.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. src and dst must exist (core.ErrNodeNotFound).
//  3. No edge may have negative weight (ErrNegativeWeight, fail fast).
//
// An unreachable dst yields ErrNoPath with an empty path.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func ShortestPath(g *core.Graph, src, dst int) ([]int, int64, error) {
	// 1) Validate inputs before allocating any algorithm state.
	if g == nil {
		return nil, 0, core.ErrNilGraph
	}
	if !g.HasNode(src) || !g.HasNode(dst) {
		return nil, 0, core.ErrNodeNotFound
	}

	// 2) Run the shared single-source routine.
	dist, prev, err := fromSource(g, src)
	if err != nil {
		return nil, 0, err
	}

	// 3) Reconstruct the route by walking predecessors from dst.
	d, ok := dist[dst]
	if !ok {
		return nil, 0, ErrNoPath
	}
	path := []int{dst}
	for cur := dst; cur != src; {
		p, hasPrev := prev[cur]
		if !hasPrev {
			return nil, 0, ErrNoPath
		}
		path = append([]int{p}, path...)
		cur = p
	}

	return path, d, nil
}

// fromSource is the core Dijkstra loop. It returns finalized distances for
// every reachable node and the predecessor map for path reconstruction.
// Unreachable nodes are simply absent from both maps.
func fromSource(g *core.Graph, src int) (map[int]int64, map[int]int, error) {
	// Upfront scan: reject the whole run on any negative weight, so no
	// caller ever sees a partially wrong distance table.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s weight=%d", ErrNegativeWeight, e.Key(), e.Weight)
		}
	}

	n := g.NodeCount()
	dist := make(map[int]int64, n)
	prev := make(map[int]int, n)
	done := make(map[int]bool, n)

	pq := &queue{}
	heap.Init(pq)
	dist[src] = 0
	heap.Push(pq, item{id: src, dist: 0})

	for pq.Len() > 0 {
		it := heap.Pop(pq).(item)
		if done[it.id] {
			continue // stale lazy-decrease-key entry
		}
		done[it.id] = true

		nbrs, err := g.Neighbors(it.id)
		if err != nil {
			return nil, nil, err
		}
		for _, v := range nbrs {
			e, eErr := g.Edge(it.id, v)
			if eErr != nil {
				continue
			}
			cand := dist[it.id] + e.Weight
			if known, ok := dist[v]; ok && cand >= known {
				continue
			}
			dist[v] = cand
			prev[v] = it.id
			heap.Push(pq, item{id: v, dist: cand})
		}
	}

	return dist, prev, nil
}

// Unreachable is the all-pairs sentinel distance for disconnected pairs.
var Unreachable = math.Inf(1)

// item pairs a node with its tentative distance for heap ordering.
type item struct {
	id   int
	dist int64
}

// queue is a min-heap of items under the lazy-decrease-key strategy:
// shorter rediscoveries push duplicates, stale pops are skipped.
type queue []item

func (q queue) Len() int { return len(q) }

// Less orders by distance, then by smaller node ID so that equal-cost
// frontiers expand in a fixed order.
func (q queue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}

	return q[i].id < q[j].id
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends a tentative entry; called by heap.Push.
func (q *queue) Push(x interface{}) { *q = append(*q, x.(item)) }

// Pop removes and returns the closest entry; called by heap.Pop.
func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
