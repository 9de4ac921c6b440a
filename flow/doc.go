// Package flow implements maximum-flow analysis over a read-only network
// snapshot: Edmonds–Karp max-flow with min-cut extraction, and Menger-style
// edge-disjoint path enumeration built on the same machinery.
//
// Undirected modeling: each link is a single bidirectional pipe whose
// capacity is shared between both directions. The residual network is
// therefore seeded with the full capacity in both orientations; pushing
// flow one way consumes shared headroom and opens residual the other way.
// Under this interpretation the returned value equals the capacity of the
// minimum cut separating source and sink.
//
// Determinism: the BFS for augmenting paths expands neighbors in
// ascending-ID order, so the sequence of augmentations, and with it the
// reported cut and path sets, is reproducible.
//
// Complexity:
//
//   - MaxFlow:          O(V · E²) time, O(V + E) memory.
//   - EdgeDisjointPaths: same bound with unit capacities, in practice
//     O(P · E) for P resulting paths.
//
// Errors:
//
//	core.ErrNodeNotFound - source or sink does not exist.
//	ErrSameEndpoints     - source equals sink.
package flow
