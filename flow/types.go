package flow

import "errors"

// ErrSameEndpoints is returned when source and sink are the same node;
// a flow value between a node and itself is undefined.
var ErrSameEndpoints = errors.New("flow: source and sink are the same node")
