package bmssp

import "math"

// infinity is the sentinel distance for "not yet reached" / "unreachable".
// This package uses IEEE-754 float64 throughout, so +Inf saturates any
// further addition and never needs overflow detection (see doc.go).
var infinity = math.Inf(1)

// noPred is the sentinel predecessor value meaning "no predecessor yet",
// the Go-idiomatic analogue of the teacher's "" sentinel in dijkstra's
// string-keyed prev map.
const noPred = -1

// state holds the shared, mutable db/pred arrays that every level of the
// BMSSP recursion reads and writes. It is created once per SSSP call and
// passed by reference down the recursion; it is never copied.
type state struct {
	g    *Graph
	db   []float64
	pred []int
}

// newState allocates db/pred for a graph of g.N() vertices, with every
// entry at +Inf / noPred except db[source]=0.
func newState(g *Graph, source int) *state {
	n := g.N()
	db := make([]float64, n)
	pred := make([]int, n)
	for i := range db {
		db[i] = infinity
		pred[i] = noPred
	}
	db[source] = 0

	return &state{g: g, db: db, pred: pred}
}

// relax attempts db[v] = min(db[v], db[u]+w), recording pred[v]=u on
// success. Returns the resulting db[v] and whether a relaxation occurred.
// Uses <= (not <), matching spec.md's preserved source-side tie-break:
// later relaxations along equal-weight paths overwrite pred, observable
// only through pred, never through the final db values.
func (s *state) relax(u, v int, w float64) (newDist float64, relaxed bool) {
	newDist = s.db[u] + w
	if newDist <= s.db[v] {
		s.db[v] = newDist
		s.pred[v] = u
		return newDist, true
	}
	return s.db[v], false
}
