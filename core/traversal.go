// SPDX-License-Identifier: MIT
//
// File: traversal.go
// Role: Connectivity queries derived from the current edge set.
// Determinism:
//   - BFS expands neighbors in ascending-ID order, so component listings
//     are stable across runs.

package core

import "sort"

// HasPath reports whether any path links a and b in the current topology.
// Returns ErrNodeNotFound when either endpoint is absent.
// Complexity: O(V + E)
func (g *Graph) HasPath(a, b int) (bool, error) {
	if !g.HasNode(a) || !g.HasNode(b) {
		return false, ErrNodeNotFound
	}
	if a == b {
		return true, nil
	}

	visited := map[int]bool{a: true}
	queue := []int{a}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for nbr := range g.adj[u] {
			if visited[nbr] {
				continue
			}
			if nbr == b {
				return true, nil
			}
			visited[nbr] = true
			queue = append(queue, nbr)
		}
	}

	return false, nil
}

// IsConnected reports whether every node is reachable from every other.
// An empty graph and a single-node graph are both considered connected.
// Complexity: O(V + E)
func (g *Graph) IsConnected() bool {
	return len(g.ConnectedComponents()) <= 1
}

// ConnectedComponents returns the node sets of each connected component.
// Each component is sorted ascending; components are ordered by their
// smallest member.
// Complexity: O(V log V + E)
func (g *Graph) ConnectedComponents() [][]int {
	visited := make(map[int]bool, len(g.nodes))
	components := make([][]int, 0, 1)

	for _, start := range g.Nodes() { // ascending seeds keep output stable
		if visited[start] {
			continue
		}
		comp := []int{start}
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for nbr := range g.adj[u] {
				if visited[nbr] {
					continue
				}
				visited[nbr] = true
				comp = append(comp, nbr)
				queue = append(queue, nbr)
			}
		}
		sort.Ints(comp)
		components = append(components, comp)
	}

	return components
}
