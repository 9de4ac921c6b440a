package flow

import "github.com/dkoval/emergenet/core"

// EdgeDisjointPaths returns a maximal set of pairwise edge-disjoint paths
// between a and b, found by running the augmenting-path machinery with
// unit capacity per link and decomposing the resulting flow. By Menger's
// theorem the number of paths equals the minimum number of links whose
// removal disconnects a from b.
//
// Determinism: augmentation order follows the ascending-ID BFS, and the
// decomposition walks always take the smallest carrying neighbor, so the
// path list is reproducible.
//
// Complexity: O(P · E) for P resulting paths on top of the BFS sweeps.
func EdgeDisjointPaths(g *core.Graph, a, b int) ([][]int, error) {
	r, err := newResidual(g, a, b)
	if err != nil {
		return nil, err
	}

	// 1) Rescale every pipe to unit capacity: one path may cross one link.
	for u, row := range r.cap {
		for v := range row {
			r.cap[u][v] = 1
		}
	}

	// 2) Max-flow under unit capacities counts the disjoint paths.
	var count int64
	for {
		path, bottleneck := r.augmentingPath(a, b)
		if len(path) == 0 {
			break
		}
		count += bottleneck
		r.push(path, bottleneck)
	}
	if count == 0 {
		return nil, nil
	}

	// 3) Decompose the flow: net[u][v] == 1 exactly when the final flow
	//    crosses the link u→v (cancelled opposite pushes net out to 0).
	used := func(u, v int) bool { return r.cap[v][u]-r.cap[u][v] == 2 }
	release := func(u, v int) { r.cap[u][v], r.cap[v][u] = 1, 1 }

	paths := make([][]int, 0, count)
	for n := int64(0); n < count; n++ {
		path := []int{a}
		for cur := a; cur != b; {
			next := -1
			for _, v := range r.nbrs[cur] {
				if used(cur, v) {
					next = v
					break // neighbors are ascending: smallest carrier wins
				}
			}
			if next < 0 {
				// Flow conservation guarantees a carrying neighbor until
				// the sink; bail out rather than loop if it ever breaks.
				return paths, nil
			}
			release(cur, next)
			path = append(path, next)
			cur = next
		}
		paths = append(paths, path)
	}

	return paths, nil
}
