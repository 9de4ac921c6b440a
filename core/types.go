// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, EdgeKey value types and the sentinel errors shared by
//       every algorithm package.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates a second edge between an already-linked pair.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrSelfLoop indicates an edge from a node to itself, which the
	// network model does not allow.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrInvalidNodeID indicates a non-positive node identifier.
	ErrInvalidNodeID = errors.New("core: node ID must be positive")
)

// Default attribute values applied to newly created nodes and edges,
// matching the baseline topology's site profile.
const (
	// StatusActive is the status tag assigned to every node at creation.
	StatusActive = "active"

	// DefaultLoad is the load attribute assigned to every node at creation.
	DefaultLoad = 0.5

	// DefaultUtilization is the informational utilization ratio assigned to
	// every edge at creation. No algorithm reads it.
	DefaultUtilization = 0.3
)

// Node represents a network site.
//
// ID uniquely identifies the node within its Graph and is a positive
// integer. Status and Load are informational attributes carried for the
// presentation layer; no algorithm branches on them.
type Node struct {
	// ID is the unique positive identifier for this node.
	ID int

	// Status is the operational tag, StatusActive at creation.
	Status string

	// Load is the informational load attribute.
	Load float64
}

// Edge represents an undirected link between two sites.
//
// Endpoints are stored in canonical order (U < V). Weight is the routing
// cost used by shortest-path and spanning-tree algorithms; Capacity is the
// flow limit used by max-flow. Utilization is informational only.
type Edge struct {
	// U is the smaller endpoint ID.
	U int

	// V is the larger endpoint ID.
	V int

	// Weight is the routing cost of the link.
	Weight int64

	// Capacity is the flow limit of the link.
	Capacity int64

	// Utilization is an informational usage ratio, not read by algorithms.
	Utilization float64
}

// Key returns the canonical EdgeKey of this edge.
func (e *Edge) Key() EdgeKey { return EdgeKey{U: e.U, V: e.V} }

// Other returns the endpoint of e opposite to id.
// The result is undefined when id is not an endpoint of e.
func (e *Edge) Other(id int) int {
	if id == e.U {
		return e.V
	}

	return e.U
}

// EdgeKey identifies an undirected edge by its canonically ordered
// endpoints (U < V). It is the value used for highlight annotations and
// min-cut reporting.
type EdgeKey struct {
	U, V int
}

// NewEdgeKey builds the canonical key for the unordered pair {a, b}.
func NewEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{U: a, V: b}
}

// String renders the key as "(u,v)".
func (k EdgeKey) String() string { return fmt.Sprintf("(%d,%d)", k.U, k.V) }
