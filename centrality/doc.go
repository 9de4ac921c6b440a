// Package centrality implements Brandes' betweenness centrality over a
// read-only network snapshot.
//
// Betweenness measures how often a node lies on shortest paths between
// other node pairs. The computation runs one BFS per source (shortest
// paths are counted in hops, not routing weight) followed by Brandes'
// back-propagation of pair dependencies, and normalizes by (n−1)(n−2) so
// that scores fall in [0, 1] for undirected graphs. Graphs with fewer
// than three nodes score 0 everywhere.
//
// Ranked turns the score map into a presentation-ready list ordered by
// descending score, ties broken by ascending node ID.
//
// Complexity: O(V·E) time, O(V + E) memory.
package centrality
