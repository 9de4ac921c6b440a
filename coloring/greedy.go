package coloring

import (
	"sort"

	"github.com/dkoval/emergenet/core"
)

// Greedy colors every node with the largest-first strategy and returns the
// node→color assignment plus the number of colors used (1 + max index).
// An empty snapshot yields an empty assignment and 0 colors.
//
// Invariant: for every edge (u,v), colors[u] != colors[v].
//
// Complexity: O(V log V + V·Δ) time, O(V) memory.
func Greedy(g *core.Graph) (map[int]int, int, error) {
	if g == nil {
		return nil, 0, core.ErrNilGraph
	}

	// 1) Fix the processing order: degree descending, ID ascending.
	nodes := g.Nodes()
	order := make([]int, len(nodes))
	copy(order, nodes)
	sort.SliceStable(order, func(i, j int) bool {
		di, _ := g.Degree(order[i])
		dj, _ := g.Degree(order[j])
		if di != dj {
			return di > dj
		}

		return order[i] < order[j]
	})

	// 2) Assign each node the smallest color unused among its colored
	//    neighbors.
	colors := make(map[int]int, len(nodes))
	chromatic := 0
	for _, u := range order {
		taken := make(map[int]bool)
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			if c, ok := colors[v]; ok {
				taken[c] = true
			}
		}
		c := 0
		for taken[c] {
			c++
		}
		colors[u] = c
		if c+1 > chromatic {
			chromatic = c + 1
		}
	}

	return colors, chromatic, nil
}
