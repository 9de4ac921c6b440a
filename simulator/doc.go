// Package simulator is the caller-facing facade of the analysis engine.
//
// A Simulator owns the network store (seeded with the built-in baseline
// topology unless overridden) and a task scheduler, and exposes the small
// surface a presentation layer needs:
//
//   - SubmitTask / Poll: background analysis with polled results
//   - FailNode / FailRandomNode / Reset: synchronous topology mutations
//   - CurrentGraph / Metrics: read-only snapshots for rendering
//
// On top of that it ships the canned analyses of the interactive tool:
// MST, shortest path, all-pairs shortest paths, max flow, coloring,
// betweenness centrality, edge-disjoint paths, clustering, and balanced
// command-tree sizing. Each produces a textual report and, where
// meaningful, an edge-highlight or node-color annotation that arrives
// before the report of the same run.
//
// Mutation errors (unknown node ID) propagate synchronously to the caller;
// algorithm errors inside background tasks surface as Failure messages.
package simulator
