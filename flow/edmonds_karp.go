package flow

import (
	"sort"

	"github.com/dkoval/emergenet/core"
)

// MaxFlow computes the maximum flow from source to sink using the
// Edmonds–Karp method: BFS finds the fewest-hop augmenting path each
// iteration until none remains.
//
// Each undirected link acts as one bidirectional pipe of its capacity (see
// the package comment). Alongside the flow value the saturated min-cut is
// returned: the set of original edges crossing the source-side residual
// reachability frontier. By max-flow/min-cut duality the cut capacities
// sum to exactly the returned value.
//
// Complexity: O(V · E²) time, O(V + E) memory.
func MaxFlow(g *core.Graph, source, sink int) (int64, []core.EdgeKey, error) {
	r, err := newResidual(g, source, sink)
	if err != nil {
		return 0, nil, err
	}

	// Augment along shortest residual paths until the sink is cut off.
	var total int64
	for {
		path, bottleneck := r.augmentingPath(source, sink)
		if len(path) == 0 {
			break
		}
		total += bottleneck
		r.push(path, bottleneck)
	}

	return total, r.minCut(g, source), nil
}

// residual is the residual-capacity network for one max-flow run.
type residual struct {
	cap  map[int]map[int]int64 // cap[u][v]: remaining capacity u→v
	nbrs map[int][]int         // ascending adjacency, fixed at build time
}

// newResidual validates the endpoints and seeds residual capacities in
// both orientations of every link.
func newResidual(g *core.Graph, source, sink int) (*residual, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.HasNode(source) || !g.HasNode(sink) {
		return nil, core.ErrNodeNotFound
	}
	if source == sink {
		return nil, ErrSameEndpoints
	}

	r := &residual{
		cap:  make(map[int]map[int]int64, g.NodeCount()),
		nbrs: make(map[int][]int, g.NodeCount()),
	}
	for _, id := range g.Nodes() {
		r.cap[id] = make(map[int]int64)
		nbrs, _ := g.Neighbors(id)
		r.nbrs[id] = nbrs
	}
	for _, e := range g.Edges() {
		r.cap[e.U][e.V] = e.Capacity
		r.cap[e.V][e.U] = e.Capacity
	}

	return r, nil
}

// augmentingPath finds the fewest-hop source→sink path with positive
// residual capacity along every step and returns it together with its
// bottleneck. Neighbors expand in ascending-ID order. An empty path means
// the sink is no longer reachable.
func (r *residual) augmentingPath(source, sink int) ([]int, int64) {
	parent := make(map[int]int, len(r.cap))
	visited := map[int]bool{source: true}

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range r.nbrs[u] {
			if visited[v] || r.cap[u][v] <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return r.walkBack(parent, source, sink)
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

// walkBack reconstructs the path from parent pointers and computes its
// bottleneck capacity.
func (r *residual) walkBack(parent map[int]int, source, sink int) ([]int, int64) {
	path := []int{sink}
	for cur := sink; cur != source; {
		p := parent[cur]
		path = append([]int{p}, path...)
		cur = p
	}

	bottleneck := r.cap[path[0]][path[1]]
	for i := 1; i < len(path)-1; i++ {
		if c := r.cap[path[i]][path[i+1]]; c < bottleneck {
			bottleneck = c
		}
	}

	return path, bottleneck
}

// push applies the bottleneck along the path: forward capacity shrinks,
// reverse capacity grows.
func (r *residual) push(path []int, amount int64) {
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		r.cap[u][v] -= amount
		r.cap[v][u] += amount
	}
}

// minCut returns the original edges crossing the frontier between the
// nodes still residual-reachable from source and the rest, sorted by key.
func (r *residual) minCut(g *core.Graph, source int) []core.EdgeKey {
	reach := map[int]bool{source: true}
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range r.nbrs[u] {
			if !reach[v] && r.cap[u][v] > 0 {
				reach[v] = true
				queue = append(queue, v)
			}
		}
	}

	cut := make([]core.EdgeKey, 0, 2)
	for _, e := range g.Edges() {
		if reach[e.U] != reach[e.V] {
			cut = append(cut, e.Key())
		}
	}
	sort.Slice(cut, func(i, j int) bool {
		if cut[i].U != cut[j].U {
			return cut[i].U < cut[j].U
		}

		return cut[i].V < cut[j].V
	})

	return cut
}
