package mst

import (
	"container/heap"

	"github.com/dkoval/emergenet/core"
)

// Prim computes the minimum spanning tree (forest, when the snapshot is
// disconnected) of the undirected weighted graph g.
//
// Determinism:
//   - The run starts from the smallest node ID.
//   - Frontier edges pop in (weight, destination ID) order, so equal-weight
//     candidates resolve to the smaller destination first.
//   - A disconnected snapshot restarts from the smallest unvisited ID, one
//     component at a time, in ascending order.
//
// Returns the tree edges in acquisition order, their total weight, and
// ErrEmptyGraph when g has no nodes.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph) ([]core.Edge, int64, error) {
	// 1) Validate input.
	if g == nil {
		return nil, 0, core.ErrNilGraph
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, 0, ErrEmptyGraph
	}

	// 2) Grow the tree component by component.
	visited := make(map[int]bool, len(nodes))
	tree := make([]core.Edge, 0, len(nodes)-1)
	var total int64

	pq := &frontier{}
	for _, start := range nodes {
		if visited[start] {
			continue
		}

		// 2a) Seed the frontier with the component's start node.
		visited[start] = true
		pushNeighbors(g, pq, visited, start)

		// 2b) Repeatedly take the cheapest frontier edge whose far end is
		//     still outside the tree.
		for pq.Len() > 0 {
			cand := heap.Pop(pq).(frontierEdge)
			if visited[cand.to] {
				continue // both endpoints already inside: would form a cycle
			}
			visited[cand.to] = true
			tree = append(tree, *cand.edge)
			total += cand.edge.Weight
			pushNeighbors(g, pq, visited, cand.to)
		}
	}

	return tree, total, nil
}

// pushNeighbors adds every edge from u to a not-yet-visited neighbor onto
// the frontier heap.
func pushNeighbors(g *core.Graph, pq *frontier, visited map[int]bool, u int) {
	nbrs, err := g.Neighbors(u)
	if err != nil {
		return // u was just visited, so it exists; defensive only
	}
	for _, v := range nbrs {
		if visited[v] {
			continue
		}
		e, eErr := g.Edge(u, v)
		if eErr != nil {
			continue
		}
		heap.Push(pq, frontierEdge{to: v, edge: e})
	}
}

// frontierEdge is a candidate tree edge: the concrete edge record plus the
// endpoint it would bring into the tree.
type frontierEdge struct {
	to   int
	edge *core.Edge
}

// frontier is a min-heap of frontierEdge ordered by (weight, destination).
type frontier []frontierEdge

func (f frontier) Len() int { return len(f) }

// Less orders by weight first and smaller destination ID on ties,
// pinning down the tree shape when several candidates cost the same.
func (f frontier) Less(i, j int) bool {
	if f[i].edge.Weight != f[j].edge.Weight {
		return f[i].edge.Weight < f[j].edge.Weight
	}

	return f[i].to < f[j].to
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends a candidate; called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierEdge)) }

// Pop removes and returns the cheapest candidate; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
