package dijkstra

import "github.com/dkoval/emergenet/core"

// AllPairs computes shortest-path weights between every ordered pair of
// nodes by running the single-source routine from each node in turn.
//
// The result maps source → target → weight. Every pair is present:
// unreachable targets carry Unreachable (+Inf) rather than being omitted,
// and the diagonal is 0.
//
// Complexity: O(V · (V + E) log V) time, O(V²) memory.
func AllPairs(g *core.Graph) (map[int]map[int]float64, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	nodes := g.Nodes()
	out := make(map[int]map[int]float64, len(nodes))
	for _, src := range nodes {
		dist, _, err := fromSource(g, src)
		if err != nil {
			return nil, err
		}
		row := make(map[int]float64, len(nodes))
		for _, dst := range nodes {
			if d, ok := dist[dst]; ok {
				row[dst] = float64(d)
			} else {
				row[dst] = Unreachable
			}
		}
		out[src] = row
	}

	return out, nil
}
