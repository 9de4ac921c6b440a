// Package mst implements Prim's minimum spanning tree algorithm over a
// read-only network snapshot.
//
// Prim grows the tree from the smallest node ID, keeping frontier edges in
// a min-heap keyed by (weight, destination ID): equal-weight candidates
// resolve to the smaller destination first, so the returned edge list is
// fully reproducible. On a disconnected graph the run continues from the
// smallest unvisited ID of each remaining component, yielding a minimum
// spanning forest rather than an error.
//
// Complexity:
//
//   - Time:  O(E log E) — every edge enters the heap at most twice.
//   - Space: O(V + E) for the visited set and the heap.
//
// Errors:
//
//	ErrEmptyGraph - the snapshot has no nodes.
package mst
