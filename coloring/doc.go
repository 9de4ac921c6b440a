// Package coloring implements deterministic greedy node coloring over a
// read-only network snapshot.
//
// The strategy is largest-first: nodes are processed by descending degree,
// ties broken by ascending ID, and each node receives the smallest color
// index not already taken by a colored neighbor. The ordering fixes the
// whole assignment, so repeated runs on the same snapshot agree exactly.
//
// The reported chromatic number is 1 + the highest color index actually
// used — an upper bound on the true chromatic number, as with any greedy
// strategy.
//
// Complexity: O(V log V + V·Δ) time, O(V) memory, where Δ is the maximum
// degree.
package coloring
