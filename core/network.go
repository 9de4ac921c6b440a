// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Network store — the working graph, its immutable baseline, and the
//       reader/writer discipline serializing mutations against reads.
// Concurrency:
//   - One sync.RWMutex guards the working graph. View holds the read lock
//     for the whole callback so an algorithm never observes a graph
//     mid-mutation; RemoveNode and Reset hold the write lock, which waits
//     for in-flight readers to drain and excludes new ones.
//   - The baseline graph is written once in NewNetwork and never after.

package core

import "sync"

// Network owns the mutable working topology and the baseline snapshot
// taken at construction. All access to the working graph goes through
// Network; the embedded lock is the mutation controller.
type Network struct {
	mu       sync.RWMutex
	working  *Graph
	baseline *Graph
}

// NewNetwork builds a Network whose working graph and immutable baseline
// are both deep copies of base; the caller keeps no aliases into either.
// Complexity: O(V + E)
func NewNetwork(base *Graph) (*Network, error) {
	if base == nil {
		return nil, ErrNilGraph
	}

	return &Network{
		working:  base.Clone(),
		baseline: base.Clone(),
	}, nil
}

// View runs fn against the working graph under the shared read lock.
// Concurrent Views proceed in parallel; mutations wait for them to drain.
// fn must not retain the *Graph beyond the call and must not mutate it.
func (n *Network) View(fn func(g *Graph) error) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return fn(n.working)
}

// RemoveNode simulates a site failure: under the exclusive lock it removes
// the node and every incident edge from the working graph.
// Returns ErrNodeNotFound when id is absent; the baseline is untouched.
func (n *Network) RemoveNode(id int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.working.RemoveNode(id)
}

// Reset replaces the working graph with a fresh deep copy of the baseline.
// Runs under the exclusive lock, so no in-flight read can observe a mix of
// pre- and post-reset state.
func (n *Network) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.working = n.baseline.Clone()
}

// Snapshot returns a deep copy of the current working graph, taken under
// the read lock. Intended for presentation-layer rendering; the copy is
// fully detached from the store.
func (n *Network) Snapshot() *Graph {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.working.Clone()
}

// Baseline returns a deep copy of the baseline topology.
func (n *Network) Baseline() *Graph {
	// The baseline is immutable after construction, but hand out a copy so
	// callers cannot break that invariant.
	return n.baseline.Clone()
}
