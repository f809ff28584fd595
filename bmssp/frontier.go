package bmssp

import "sort"

// frontier is the distance-keyed multiset D feeding recursive BMSSP calls.
// Membership is set-like (inserting an already-present vertex is a no-op);
// pull extracts the M vertices of smallest current db value.
//
// This is a sort-on-pull implementation: insert is O(1), pull(M) is
// O(|D| log |D|). The spec permits this explicitly (a heap or bucketed
// structure would give a better asymptotic constant but is not required
// for correctness), matching dijkstra.go's own preference for a plain
// binary heap over a more exotic priority queue.
type frontier struct {
	members map[int32]struct{}
	db      []float64 // shared distance-bound array, read-only from here
}

// newFrontier creates an empty frontier backed by the shared db array.
func newFrontier(db []float64) *frontier {
	return &frontier{members: make(map[int32]struct{}), db: db}
}

// insert adds v to D. Duplicate inserts are no-ops.
func (d *frontier) insert(v int) {
	d.members[int32(v)] = struct{}{}
}

// isEmpty reports whether D currently holds no vertices.
func (d *frontier) isEmpty() bool {
	return len(d.members) == 0
}

// len reports the number of vertices currently in D.
func (d *frontier) len() int {
	return len(d.members)
}

// pull removes the up-to-M vertices of smallest db value from D and
// returns them alongside the next bound: the smallest db value remaining
// in D after removal, or +Inf if D is now empty.
func (d *frontier) pull(m int) (bNext float64, sPull []int) {
	if len(d.members) == 0 {
		return infinity, nil
	}

	ids := make([]int32, 0, len(d.members))
	for v := range d.members {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return d.db[ids[i]] < d.db[ids[j]] })

	if m > len(ids) {
		m = len(ids)
	}

	sPull = make([]int, m)
	for i := 0; i < m; i++ {
		sPull[i] = int(ids[i])
		delete(d.members, ids[i])
	}

	if len(d.members) == 0 {
		return infinity, sPull
	}

	bNext = infinity
	for v := range d.members {
		if d.db[v] < bNext {
			bNext = d.db[v]
		}
	}

	return bNext, sPull
}
