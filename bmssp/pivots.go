package bmssp

import "math"

// findPivots implements the k-step Bellman-style relaxation and forest
// reconstruction described in spec.md §4.3, verbatim from
// original_source/src/sssp/bmssp.py's find_pivots:
//
//  1. W <- S, Wcur <- S.
//  2. For k rounds, relax one hop out of Wcur into Wnext, folding Wnext
//     into W and advancing Wcur <- Wnext. If |W| grows past k*|S|, bail
//     out early and return every vertex of S as a pivot.
//  3. Reconstruct the forest of edges that actually produced the current
//     db values (within a 1e-9 tolerance), restricted to W.
//  4. Pivots are the roots of that forest that belong to S and whose
//     subtree has size >= k.
func (s *state) findPivots(k int, B float64, S []int) (P, W []int) {
	inW := make(map[int32]bool, len(S))
	wCur := make([]int32, len(S))
	for i, v := range S {
		inW[int32(v)] = true
		wCur[i] = int32(v)
	}
	wAll := append([]int32(nil), wCur...)

	for i := 0; i < k; i++ {
		var wNext []int32
		for _, u := range wCur {
			for _, e := range s.g.outEdges(int(u)) {
				newDist := s.db[u] + e.Weight
				if newDist < B && newDist <= s.db[e.To] {
					s.db[e.To] = newDist
					s.pred[e.To] = int(u)
					if !inW[e.To] {
						inW[e.To] = true
						wNext = append(wNext, e.To)
					}
				}
			}
		}
		wAll = append(wAll, wNext...)
		wCur = wNext

		if len(wAll) > k*len(S) {
			return S, int32sToInts(wAll)
		}
		if len(wCur) == 0 {
			break
		}
	}

	W = int32sToInts(wAll)

	// Reconstruct the forest: for each w in W whose pred[w] is also in W,
	// keep the edge pred[w] -> w iff it is the edge that actually produced
	// db[w] (within tolerance).
	const tol = 1e-9
	children := make(map[int][]int, len(wAll))
	isRoot := make(map[int]bool, len(wAll))
	for _, v := range wAll {
		isRoot[int(v)] = true
	}
	for _, v := range wAll {
		p := s.pred[v]
		if p < 0 || !inW[int32(p)] {
			continue
		}
		for _, e := range s.g.outEdges(p) {
			if int(e.To) == int(v) && math.Abs(s.db[v]-(s.db[p]+e.Weight)) < tol {
				children[p] = append(children[p], int(v))
				isRoot[int(v)] = false
				break
			}
		}
	}

	P = nil
	for _, root := range S {
		if !isRoot[root] {
			continue
		}
		if treeSize(children, root) >= k {
			P = append(P, root)
		}
	}

	return P, W
}

// treeSize counts the nodes reachable from root via children, by an
// iterative BFS-style queue walk (avoiding recursion so an adversarial,
// deeply-chained forest cannot blow the Go stack).
func treeSize(children map[int][]int, root int) int {
	visited := map[int]bool{root: true}
	queue := []int{root}
	size := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		size++
		for _, c := range children[u] {
			if !visited[c] {
				visited[c] = true
				queue = append(queue, c)
			}
		}
	}
	return size
}

func int32sToInts(xs []int32) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(x)
	}
	return out
}
