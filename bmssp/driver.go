package bmssp

import (
	"math"

	"github.com/katalvlaran/bmssp/core"
)

// SSSP computes single-source shortest paths from source over g using the
// BMSSP recursion. It returns db, a length-g.N() array of shortest
// distances (math.Inf(1) for vertices unreachable from source), and pred,
// a length-g.N() array of predecessor indices (-1 for source and for
// unreachable vertices).
//
// Parameters k, t, and ℓ_max are derived from n = g.N() exactly as
// spec.md §4.6 and original_source/src/sssp/bmssp.py's sssp function
// specify:
//
//	k     = max(3, floor(log2(n)^(1/3)))
//	t     = max(3, floor(log2(n)^(2/3)))
//	ℓ_max = max(1, ceil(log2(n) / t))
func SSSP(g *Graph, source int) (db []float64, pred []int, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.N()
	if source < 0 || source >= n {
		return nil, nil, ErrSourceOutOfRange
	}

	k, t, lMax := recursionParams(n)

	s := newState(g, source)
	s.recurse(params{k: k, t: t}, lMax, infinity, []int{source})

	return s.db, s.pred, nil
}

// recursionParams computes k, t, and ℓ_max for a graph of n vertices.
// n <= 1 is treated as the smallest meaningful case (log2(n) undefined or
// zero): k and t fall back to their clamp floor of 3, and ℓ_max to 1.
func recursionParams(n int) (k, t, lMax int) {
	if n <= 1 {
		return 3, 3, 1
	}

	log2n := math.Log2(float64(n))

	k = int(math.Pow(log2n, 1.0/3.0))
	if k < 3 {
		k = 3
	}

	t = int(math.Pow(log2n, 2.0/3.0))
	if t < 3 {
		t = 3
	}

	lMax = int(math.Ceil(log2n / float64(t)))
	if lMax < 1 {
		lMax = 1
	}

	return k, t, lMax
}

// SSSPNamed is the named-vertex convenience entry point: it compiles g via
// FromCoreGraph, runs SSSP, and translates the results back to the
// original string vertex IDs. Unreachable vertices are present in the
// returned db map with value math.Inf(1); pred omits the source and any
// unreachable vertex, mirroring dijkstra.Dijkstra's prev[v]=="" convention
// translated to "absent map entry".
func SSSPNamed(g *core.Graph, sourceID string) (db map[string]float64, pred map[string]string, err error) {
	bg, ix, err := FromCoreGraph(g, sourceID)
	if err != nil {
		return nil, nil, err
	}

	source, _ := ix.IndexOf(sourceID)
	idxDB, idxPred, err := SSSP(bg, source)
	if err != nil {
		return nil, nil, err
	}

	db = make(map[string]float64, ix.Len())
	pred = make(map[string]string, ix.Len())
	for i := 0; i < ix.Len(); i++ {
		id := ix.IDOf(i)
		db[id] = idxDB[i]
		if p := idxPred[i]; p != noPred {
			pred[id] = ix.IDOf(p)
		}
	}

	return db, pred, nil
}
