// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Plain adjacency-map graph with deterministic accessors.
// Concurrency:
//   - Graph carries no locks; callers that share an instance across
//     goroutines go through Network (network.go), which serializes
//     mutations against reads.

package core

import "sort"

// Graph is the in-memory undirected network topology.
//
// Representation: a node catalog plus a nested adjacency map where
// adj[u][v] and adj[v][u] reference the same *Edge. At most one edge
// exists per node pair; self-loops are rejected.
type Graph struct {
	nodes map[int]*Node
	adj   map[int]map[int]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int]*Node),
		adj:   make(map[int]map[int]*Edge),
	}
}

// AddNode inserts a node with the given positive ID and default attributes
// (StatusActive, DefaultLoad). Adding an existing ID is a no-op.
// Complexity: O(1)
func (g *Graph) AddNode(id int) error {
	if id <= 0 {
		return ErrInvalidNodeID
	}
	if _, ok := g.nodes[id]; ok {
		return nil
	}
	g.nodes[id] = &Node{ID: id, Status: StatusActive, Load: DefaultLoad}
	g.adj[id] = make(map[int]*Edge)

	return nil
}

// AddEdge links u and v with the given routing weight and flow capacity,
// creating missing endpoints on the fly. The edge is stored once with
// canonical endpoint order and DefaultUtilization.
//
// Errors: ErrSelfLoop when u == v, ErrInvalidNodeID on non-positive IDs,
// ErrEdgeExists when the pair is already linked.
// Complexity: O(1)
func (g *Graph) AddEdge(u, v int, weight, capacity int64) error {
	if u == v {
		return ErrSelfLoop
	}
	if err := g.AddNode(u); err != nil {
		return err
	}
	if err := g.AddNode(v); err != nil {
		return err
	}
	if _, ok := g.adj[u][v]; ok {
		return ErrEdgeExists
	}

	k := NewEdgeKey(u, v)
	e := &Edge{U: k.U, V: k.V, Weight: weight, Capacity: capacity, Utilization: DefaultUtilization}
	g.adj[u][v] = e
	g.adj[v][u] = e

	return nil
}

// RemoveNode deletes the node and every incident edge.
// Returns ErrNodeNotFound when id is absent.
// Complexity: O(deg(id))
func (g *Graph) RemoveNode(id int) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}
	// Drop the back-references of every incident edge first,
	// so the "every edge references two existing nodes" invariant
	// holds at all times.
	for nbr := range g.adj[id] {
		delete(g.adj[nbr], id)
	}
	delete(g.adj, id)
	delete(g.nodes, id)

	return nil
}

// HasNode reports whether id exists.
// Complexity: O(1)
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether u and v are directly linked.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]

	return ok
}

// Edge returns the edge linking u and v, or ErrEdgeNotFound.
// Complexity: O(1)
func (g *Graph) Edge(u, v int) (*Edge, error) {
	e, ok := g.adj[u][v]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Node returns the node with the given ID, or ErrNodeNotFound.
// Complexity: O(1)
func (g *Graph) Node(id int) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
// Complexity: O(V) — each edge is referenced from both endpoints.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}

	return total / 2
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Edges returns every edge exactly once, ordered by (U, V) ascending.
// The returned pointers reference live edge records; treat them as
// read-only unless you own the graph exclusively.
// Complexity: O(V + E log E)
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, 0, g.EdgeCount())
	for u, nbrs := range g.adj {
		for v, e := range nbrs {
			if u < v { // emit each undirected edge once
				edges = append(edges, e)
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})

	return edges
}

// Neighbors returns the IDs adjacent to id in ascending order.
// Returns ErrNodeNotFound when id is absent.
// Complexity: O(deg log deg)
func (g *Graph) Neighbors(id int) ([]int, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]int, 0, len(g.adj[id]))
	for nbr := range g.adj[id] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
// Returns ErrNodeNotFound when id is absent.
// Complexity: O(1)
func (g *Graph) Degree(id int) (int, error) {
	if _, ok := g.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(g.adj[id]), nil
}

// Clone returns a deep copy of the graph: nodes, edges, and adjacency.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for id, n := range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
		clone.adj[id] = make(map[int]*Edge, len(g.adj[id]))
	}
	for u, nbrs := range g.adj {
		for v, e := range nbrs {
			if u < v {
				cp := *e
				clone.adj[u][v] = &cp
				clone.adj[v][u] = &cp
			}
		}
	}

	return clone
}
