// Package dijkstra implements single-source and all-pairs shortest paths
// over a read-only network snapshot with non-negative routing weights.
//
// ShortestPath runs Dijkstra's algorithm with a lazy-decrease-key min-heap:
// improved distances push duplicate entries, and stale entries are skipped
// on pop. An upfront O(E) scan rejects negative weights before any state is
// touched. Heap ties on equal distance break toward the smaller node ID, so
// the reconstructed path is reproducible.
//
// AllPairs runs the same single-source routine from every node, which for
// the dense few-hundred-node graphs this engine targets is equivalent in
// spirit to Floyd–Warshall. Unreachable pairs map to +Inf and are never
// omitted from the result.
//
// Complexity:
//
//   - ShortestPath: O((V + E) log V) time, O(V + E) space.
//   - AllPairs:     O(V · (V + E) log V) time, O(V²) space.
//
// Errors:
//
//	ErrNegativeWeight   - some edge has weight < 0.
//	ErrNoPath           - the target is unreachable from the source.
//	core.ErrNodeNotFound - source or target does not exist.
package dijkstra
