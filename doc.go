// Package emergenet analyzes small weighted communication networks — think
// a handful of emergency sites linked by cables of known routing cost and
// flow capacity — by running a suite of classic graph algorithms against a
// mutable topology that can simulate node failures and restore itself to a
// pristine baseline.
//
// What's inside?
//
//	A thread-safe, nearly-zero-dependency engine that brings together:
//		• core       — Node/Edge/Graph primitives, the Network store with its
//		               restorable baseline and reader/writer discipline
//		• builder    — the default 8-site topology plus YAML topology loading
//		• metrics    — density, clustering, path length, diameter, components
//		• mst        — Prim's minimum spanning tree (spanning forest aware)
//		• dijkstra   — single-source and all-pairs shortest paths
//		• flow       — Edmonds–Karp max-flow, min-cut and edge-disjoint paths
//		• coloring   — deterministic greedy (largest-first) node coloring
//		• centrality — Brandes' betweenness centrality
//		• sched      — background task execution with a polling message inbox
//		• simulator  — the caller-facing facade tying all of the above together
//
// Why this shape?
//
//   - Deterministic everywhere — every tie-break is fixed, so two runs on the
//     same topology produce byte-identical reports
//   - Rock-solid guarantees — one RWMutex serializes mutations against
//     in-flight algorithm reads; no algorithm ever observes a half-removed node
//   - Pure Go algorithms — the adjacency representation is a plain map of
//     neighbor maps, sized for graphs of a few hundred nodes
//
// Quick start:
//
//	sim := simulator.New()
//	task := sim.RunMST()
//	task.Wait()
//	for _, msg := range sim.Poll() {
//	    fmt.Println(msg.Text)
//	}
//
// See each package's doc.go for details and complexity notes.
package emergenet
