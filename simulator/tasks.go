package simulator

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dkoval/emergenet/centrality"
	"github.com/dkoval/emergenet/coloring"
	"github.com/dkoval/emergenet/core"
	"github.com/dkoval/emergenet/dijkstra"
	"github.com/dkoval/emergenet/flow"
	"github.com/dkoval/emergenet/metrics"
	"github.com/dkoval/emergenet/mst"
	"github.com/dkoval/emergenet/sched"
)

// RunMST computes the minimum spanning tree and highlights its edges.
func (s *Simulator) RunMST() *sched.Task {
	return s.tasks.Submit("Calculating MST", func(g *core.Graph) (sched.Result, error) {
		edges, total, err := mst.Prim(g)
		if err != nil {
			return sched.Result{}, err
		}

		keys := make([]core.EdgeKey, len(edges))
		for i, e := range edges {
			keys[i] = e.Key()
		}

		return sched.Result{
			Text: fmt.Sprintf("MST Generated via Prim's Algorithm.\nTotal Weight: %d\nEdges: %v",
				total, keys),
			Highlight: keys,
		}, nil
	})
}

// RunShortestPath computes the cheapest route between two sites and
// highlights it.
func (s *Simulator) RunShortestPath(src, dst int) *sched.Task {
	return s.tasks.Submit("Dijkstra Algorithm", func(g *core.Graph) (sched.Result, error) {
		path, total, err := dijkstra.ShortestPath(g, src, dst)
		if errors.Is(err, dijkstra.ErrNoPath) {
			return sched.Result{
				Text: fmt.Sprintf("No path between Node %d and Node %d", src, dst),
			}, nil
		}
		if err != nil {
			return sched.Result{}, err
		}

		return sched.Result{
			Text: fmt.Sprintf("Shortest Path (Dijkstra) Node %d -> %d:\nPath: %v\nTotal Weight: %d",
				src, dst, path, total),
			Highlight: pathEdges(path),
		}, nil
	})
}

// RunAllPairs computes shortest-path weights between every pair of sites.
func (s *Simulator) RunAllPairs() *sched.Task {
	return s.tasks.Submit("All-Pairs Shortest Path", func(g *core.Graph) (sched.Result, error) {
		table, err := dijkstra.AllPairs(g)
		if err != nil {
			return sched.Result{}, err
		}

		var b strings.Builder
		fmt.Fprintf(&b, "All-Pairs Shortest Path Calculated.\nData for %d nodes ready.\n", len(table))
		srcs := make([]int, 0, len(table))
		for src := range table {
			srcs = append(srcs, src)
		}
		sort.Ints(srcs)
		for _, src := range srcs {
			fmt.Fprintf(&b, "\nFrom Node %d:", src)
			for _, dst := range srcs {
				if dst == src {
					continue
				}
				d := table[src][dst]
				if math.IsInf(d, 1) {
					fmt.Fprintf(&b, " %d:unreachable", dst)
				} else {
					fmt.Fprintf(&b, " %d:%.0f", dst, d)
				}
			}
		}

		return sched.Result{Text: b.String()}, nil
	})
}

// RunMaxFlow computes the maximum flow between two sites and reports the
// bounding min-cut.
func (s *Simulator) RunMaxFlow(src, dst int) *sched.Task {
	return s.tasks.Submit("Max Flow Analysis", func(g *core.Graph) (sched.Result, error) {
		value, cut, err := flow.MaxFlow(g, src, dst)
		if err != nil {
			return sched.Result{}, err
		}

		return sched.Result{
			Text: fmt.Sprintf("Maximum Network Flow (%d -> %d): %d\nMin Cut: %v",
				src, dst, value, cut),
			Highlight: cut,
		}, nil
	})
}

// RunColoring computes the greedy node coloring and annotates node colors.
func (s *Simulator) RunColoring() *sched.Task {
	return s.tasks.Submit("Graph Coloring", func(g *core.Graph) (sched.Result, error) {
		colors, chromatic, err := coloring.Greedy(g)
		if err != nil {
			return sched.Result{}, err
		}

		ids := make([]int, 0, len(colors))
		for id := range colors {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		pairs := make([]string, len(ids))
		for i, id := range ids {
			pairs[i] = fmt.Sprintf("%d:%d", id, colors[id])
		}

		return sched.Result{
			Text: fmt.Sprintf("Graph Coloring Complete.\nChromatic Number: %d\nMapping: {%s}",
				chromatic, strings.Join(pairs, ", ")),
			Colors: colors,
		}, nil
	})
}

// RunCentrality ranks sites by betweenness centrality.
func (s *Simulator) RunCentrality() *sched.Task {
	return s.tasks.Submit("Centrality Analysis", func(g *core.Graph) (sched.Result, error) {
		ranked := centrality.Ranked(centrality.Betweenness(g))

		var b strings.Builder
		b.WriteString("Betweenness Centrality (Top Nodes):")
		for _, ns := range ranked {
			fmt.Fprintf(&b, "\nNode %d: %.4f", ns.ID, ns.Score)
		}

		return sched.Result{Text: b.String()}, nil
	})
}

// RunDisjointPaths enumerates edge-disjoint routes between two sites and
// highlights all of them.
func (s *Simulator) RunDisjointPaths(a, b int) *sched.Task {
	return s.tasks.Submit("Finding Disjoint Paths", func(g *core.Graph) (sched.Result, error) {
		paths, err := flow.EdgeDisjointPaths(g, a, b)
		if err != nil {
			return sched.Result{}, err
		}
		if len(paths) == 0 {
			return sched.Result{
				Text: fmt.Sprintf("No path between Node %d and Node %d", a, b),
			}, nil
		}

		var highlight []core.EdgeKey
		var rep strings.Builder
		fmt.Fprintf(&rep, "Edge-Disjoint Paths (Node %d -> Node %d):\nCount: %d\n", a, b, len(paths))
		for i, p := range paths {
			fmt.Fprintf(&rep, "\nPath %d: %v", i+1, p)
			highlight = append(highlight, pathEdges(p)...)
		}

		return sched.Result{Text: rep.String(), Highlight: highlight}, nil
	})
}

// RunClustering reports the average clustering coefficient.
func (s *Simulator) RunClustering() *sched.Task {
	return s.tasks.Submit("Clustering Analysis", func(g *core.Graph) (sched.Result, error) {
		m := metrics.Calculate(g)

		return sched.Result{
			Text: fmt.Sprintf("Average Clustering Coefficient: %.4f", m.AvgClustering),
		}, nil
	})
}

// RunTreeOptimization reports the height a balanced command tree over the
// surviving sites would need.
func (s *Simulator) RunTreeOptimization() *sched.Task {
	return s.tasks.Submit("Optimize Tree", func(g *core.Graph) (sched.Result, error) {
		nodes := g.Nodes()
		if len(nodes) == 0 {
			return sched.Result{}, mst.ErrEmptyGraph
		}
		height := int(math.Ceil(math.Log2(float64(len(nodes) + 1))))

		return sched.Result{
			Text: fmt.Sprintf("Balanced Command Tree Height required: %d\nNodes: %v", height, nodes),
		}, nil
	})
}

// pathEdges converts a node sequence into the edge keys linking it.
func pathEdges(path []int) []core.EdgeKey {
	if len(path) < 2 {
		return nil
	}
	keys := make([]core.EdgeKey, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		keys = append(keys, core.NewEdgeKey(path[i], path[i+1]))
	}

	return keys
}
