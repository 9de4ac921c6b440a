// Package metrics computes structural statistics over a network snapshot.
//
// Calculate is a pure function: it reads the graph it is handed and
// produces a Metrics value without retaining or mutating any shared state.
// Degenerate inputs degrade gracefully instead of failing:
//
//   - empty graph            → all-zero Metrics
//   - |V| ≤ 2                → AvgClustering defined as 0
//   - disconnected topology  → AvgPathLength and Diameter are +Inf,
//     an explicit sentinel rather than an error
//
// Path length and diameter are measured in hops (unweighted BFS
// distances); routing weights play no role here.
//
// Complexity: O(V·(V+E)) dominated by the all-pairs BFS sweep, fine for
// the few-hundred-node graphs this engine targets.
package metrics
