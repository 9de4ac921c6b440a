// Package core defines the central Graph, Node, and Edge types together
// with the Network store that owns a mutable working graph and an immutable
// baseline snapshot.
//
// Two layers live here:
//
//   - Graph is plain data: an undirected adjacency-map representation with
//     at most one edge per node pair. It carries no locks of its own and is
//     cheap to deep-copy via Clone. All accessors return nodes, edges and
//     neighbors in deterministic (ascending-ID) order so that algorithms
//     built on top are reproducible.
//
//   - Network wraps a Graph with a single sync.RWMutex implementing the
//     reader/writer discipline: algorithm reads run under View (shared),
//     while RemoveNode and Reset take the exclusive lock, wait for all
//     in-flight readers to drain, and block new readers until done. The
//     baseline copy taken at construction is never mutated afterwards and
//     services Reset exactly.
//
// Errors:
//
//	ErrNilGraph      - graph pointer is nil.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrEdgeNotFound  - requested edge does not exist.
//	ErrEdgeExists    - second edge between the same pair of nodes.
//	ErrSelfLoop      - edge from a node to itself.
package core
