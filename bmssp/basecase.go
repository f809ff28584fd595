package bmssp

import "container/heap"

// baseCase is the ℓ=0 leaf of the BMSSP recursion: a bounded Dijkstra run
// from the single source vertex x, expanding outward and relaxing edges as
// long as the tentative distance stays strictly below B.
//
// Grounded on dijkstra.go's lazy-decrease-key container/heap discipline:
// stale entries (popped key greater than the current db, because a
// cheaper path was already found) are skipped rather than removed from the
// heap. finalized plays the role of dijkstra.go's visited map, scoped to
// this call only.
//
// Returns B' = B (the base case never shrinks the bound) and U, the set of
// vertices popped with distance < B.
func (s *state) baseCase(B float64, x int) (bPrime float64, u []int) {
	finalized := make(map[int32]bool)
	var settled []int

	pq := make(bcHeap, 0, 8)
	heap.Push(&pq, bcItem{v: int32(x), dist: s.db[x]})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(bcItem)
		v := item.v

		if finalized[v] {
			continue
		}
		if item.dist >= B {
			// Out-of-bound entry: never settled. The heap is ordered by
			// dist, so any entries still queued are out of bound as well.
			continue
		}
		if item.dist > s.db[v]+1e-9 {
			// Every decrease of db for an unfinalized vertex pushes a new
			// entry, so the first entry popped for v must carry db[v].
			panic("bmssp: base case popped a distance above db")
		}

		finalized[v] = true
		settled = append(settled, int(v))

		for _, e := range s.g.outEdges(int(v)) {
			newDist := s.db[v] + e.Weight
			if newDist <= s.db[e.To] && newDist < B {
				s.db[e.To] = newDist
				s.pred[e.To] = int(v)
				if !finalized[e.To] {
					heap.Push(&pq, bcItem{v: e.To, dist: newDist})
				}
			}
		}
	}

	return B, settled
}

// bcItem is one (vertex, tentative distance) entry in the base case's heap.
type bcItem struct {
	v    int32
	dist float64
}

// bcHeap is a min-heap of bcItem ordered by dist ascending.
type bcHeap []bcItem

func (h bcHeap) Len() int            { return len(h) }
func (h bcHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h bcHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bcHeap) Push(x interface{}) { *h = append(*h, x.(bcItem)) }
func (h *bcHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
