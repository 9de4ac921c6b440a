package centrality

import (
	"sort"

	"github.com/dkoval/emergenet/core"
)

// NodeScore pairs a node with its centrality score for ranked output.
type NodeScore struct {
	ID    int
	Score float64
}

// Betweenness computes normalized betweenness centrality for every node
// using Brandes' algorithm over unweighted shortest paths.
//
// Complexity: O(V·E) time, O(V + E) memory.
func Betweenness(g *core.Graph) map[int]float64 {
	cb := make(map[int]float64)
	if g == nil {
		return cb
	}
	nodes := g.Nodes()
	for _, id := range nodes {
		cb[id] = 0
	}

	n := len(nodes)
	if n < 3 {
		return cb
	}

	for _, s := range nodes {
		stack, sigma, pred := shortestPathCounts(g, s)
		accumulate(s, stack, sigma, pred, cb)
	}

	// Both traversal directions of every pair were accumulated, so the
	// undirected normalization factor is (n-1)(n-2) without the usual 1/2.
	norm := float64((n - 1) * (n - 2))
	for id := range cb {
		cb[id] /= norm
	}

	return cb
}

// shortestPathCounts performs the BFS phase of Brandes' algorithm from
// source s: it returns the visit stack (for reverse-order back-propagation),
// per-node shortest-path counts (sigma), and predecessor lists.
func shortestPathCounts(g *core.Graph, s int) ([]int, map[int]float64, map[int][]int) {
	n := g.NodeCount()
	stack := make([]int, 0, n)
	pred := make(map[int][]int, n)
	sigma := map[int]float64{s: 1}
	dist := map[int]int{s: 0}

	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)

		nbrs, _ := g.Neighbors(v)
		for _, w := range nbrs {
			if _, seen := dist[w]; !seen {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				pred[w] = append(pred[w], v)
			}
		}
	}

	return stack, sigma, pred
}

// accumulate performs Brandes' back-propagation phase, folding pair
// dependencies from source s into the centrality map.
func accumulate(s int, stack []int, sigma map[int]float64, pred map[int][]int, cb map[int]float64) {
	delta := make(map[int]float64, len(stack))

	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range pred[w] {
			delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
		}
		if w != s {
			cb[w] += delta[w]
		}
	}
}

// Ranked converts a score map into a list ordered by descending score,
// ties broken by ascending node ID.
func Ranked(scores map[int]float64) []NodeScore {
	out := make([]NodeScore, 0, len(scores))
	for id, sc := range scores {
		out = append(out, NodeScore{ID: id, Score: sc})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].ID < out[j].ID
	})

	return out
}
