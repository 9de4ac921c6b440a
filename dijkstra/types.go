package dijkstra

import "errors"

// Sentinel errors for shortest-path computation.
var (
	// ErrNegativeWeight indicates the snapshot violates the non-negative
	// weight precondition; detected by the upfront edge scan.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

	// ErrNoPath indicates the target is unreachable from the source. This
	// is a defined "no path" outcome distinct from a precondition failure.
	ErrNoPath = errors.New("dijkstra: no path between nodes")
)
