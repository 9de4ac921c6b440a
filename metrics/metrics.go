package metrics

import (
	"math"

	"github.com/dkoval/emergenet/core"
)

// Metrics is the container for network performance statistics.
type Metrics struct {
	// Density is 2·|E| / (|V|·(|V|−1)); 0 when |V| < 2.
	Density float64

	// AvgClustering is the mean local clustering coefficient; defined as 0
	// when the graph has two or fewer nodes.
	AvgClustering float64

	// AvgPathLength is the mean shortest-path hop count over all ordered
	// node pairs; +Inf when the graph is disconnected, 0 when |V| < 2.
	AvgPathLength float64

	// Diameter is the largest shortest-path hop count; +Inf when the graph
	// is disconnected, 0 when |V| < 2.
	Diameter float64

	// ConnectedComponents is the number of connected components.
	ConnectedComponents int

	// AvgDegree is the mean node degree.
	AvgDegree float64
}

// Calculate computes all statistics from the given snapshot.
// A nil or empty graph yields the zero Metrics value.
func Calculate(g *core.Graph) Metrics {
	if g == nil || g.NodeCount() == 0 {
		return Metrics{}
	}

	var m Metrics
	n := g.NodeCount()
	e := g.EdgeCount()

	// 1) Density and mean degree are direct ratios.
	if n > 1 {
		m.Density = 2 * float64(e) / (float64(n) * float64(n-1))
	}
	m.AvgDegree = 2 * float64(e) / float64(n)

	// 2) Component structure.
	components := g.ConnectedComponents()
	m.ConnectedComponents = len(components)

	// 3) Clustering: mean over all nodes of 2·T(v) / (deg·(deg−1)),
	//    where T(v) counts edges among v's neighbors. Nodes of degree < 2
	//    contribute 0. Only meaningful beyond two nodes.
	if n > 2 {
		m.AvgClustering = averageClustering(g)
	}

	// 4) Hop-count path statistics: defined sentinels for the degenerate
	//    and disconnected cases, BFS sweep otherwise.
	switch {
	case n < 2:
		// Single node: no pairs to average over.
	case m.ConnectedComponents > 1:
		m.AvgPathLength = math.Inf(1)
		m.Diameter = math.Inf(1)
	default:
		m.AvgPathLength, m.Diameter = pathStatistics(g)
	}

	return m
}

// averageClustering computes the mean local clustering coefficient.
func averageClustering(g *core.Graph) float64 {
	nodes := g.Nodes()
	var total float64
	for _, v := range nodes {
		nbrs, err := g.Neighbors(v)
		if err != nil || len(nbrs) < 2 {
			continue // degree < 2 contributes a 0 coefficient
		}
		links := 0
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) {
					links++
				}
			}
		}
		k := len(nbrs)
		total += 2 * float64(links) / (float64(k) * float64(k-1))
	}

	return total / float64(len(nodes))
}

// pathStatistics runs a BFS from every node over a connected graph and
// returns the mean and maximum hop distance across all ordered pairs.
func pathStatistics(g *core.Graph) (avg, diameter float64) {
	nodes := g.Nodes()
	var sum, count float64

	for _, src := range nodes {
		dist := map[int]int{src: 0}
		queue := []int{src}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			nbrs, _ := g.Neighbors(u)
			for _, v := range nbrs {
				if _, seen := dist[v]; seen {
					continue
				}
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
		for v, d := range dist {
			if v == src {
				continue
			}
			sum += float64(d)
			count++
			if float64(d) > diameter {
				diameter = float64(d)
			}
		}
	}

	// Caller guarantees a connected graph with n > 1, so count == n·(n−1).
	return sum / count, diameter
}
