package mst

import "errors"

// ErrEmptyGraph is returned when the snapshot has no nodes, so no spanning
// structure exists at all.
var ErrEmptyGraph = errors.New("mst: graph has no nodes")
