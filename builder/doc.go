// Package builder constructs network topologies for the analysis engine.
//
// Two sources are supported:
//
//   - Default() returns the built-in 8-site baseline topology, reproduced
//     bit-exactly so that reset semantics and the worked algorithm results
//     (MST weight 23, shortest path 1→8 at 14, max flow 140) always hold.
//
//   - Parse / LoadFile read a TopologySpec from YAML, validate it, and
//     build a *core.Graph from it. Validation is strict: unknown endpoint
//     references, duplicate links, self-loops, and non-positive weights or
//     capacities are all rejected with sentinel errors, each wrapped with
//     enough context to locate the offending entry.
//
// Example topology file:
//
//	nodes: [1, 2, 3]
//	links:
//	  - {a: 1, b: 2, weight: 4, capacity: 100}
//	  - {a: 1, b: 3, weight: 3, capacity: 100}
//
// Errors:
//
//	ErrNoNodes             - spec declares no nodes.
//	ErrUnknownEndpoint     - link references an undeclared node.
//	ErrDuplicateLink       - two links over the same node pair.
//	ErrNonPositiveWeight   - link weight ≤ 0.
//	ErrNonPositiveCapacity - link capacity ≤ 0.
package builder
