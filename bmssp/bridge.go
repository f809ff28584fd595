package bmssp

import (
	"fmt"

	"github.com/katalvlaran/bmssp/core"
)

// FromCoreGraph compiles a core.Graph into a compact, int-indexed Graph
// suitable for SSSP, together with an Index for translating results back
// to the original string vertex IDs.
//
// g is cloned before compilation (core.Graph.Clone), so a caller mutating
// their original graph concurrently with FromCoreGraph cannot race the
// compile step or leave it reading a half-updated topology.
//
// Vertices are assigned dense indices in the clone's Vertices() sorted
// order, so the same set of vertex IDs always compiles to the same index
// assignment. Edge orientation is read off the clone's own Neighbors(id)
// per vertex, which already applies the same rule dijkstra.relax uses: a
// directed edge only contributes to its From vertex's out-edges, while an
// undirected edge contributes to both endpoints.
//
// Returns ErrNilGraph if g is nil, or core.ErrVertexNotFound (wrapped) if
// sourceID is not a vertex of g.
func FromCoreGraph(g *core.Graph, sourceID string) (*Graph, *Index, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(sourceID) {
		return nil, nil, fmt.Errorf("bmssp: source %q: %w", sourceID, core.ErrVertexNotFound)
	}

	snap := g.Clone() // defensive snapshot: isolates compilation from concurrent mutation of g

	ids := snap.Vertices() // sorted, deterministic
	ix := &Index{
		idToIdx: make(map[string]int, len(ids)),
		idxToID: ids,
	}
	for i, id := range ids {
		ix.idToIdx[id] = i
	}

	stats := snap.Stats()
	bg := NewGraph(len(ids))
	bg.raw = make([]rawEdge, 0, stats.DirectedEdgeCount+2*stats.UndirectedEdgeCount)

	for _, id := range ids {
		u := ix.idToIdx[id]
		neighbors, err := snap.Neighbors(id)
		if err != nil {
			return nil, nil, fmt.Errorf("bmssp: neighbors of %q: %w", id, err)
		}
		for _, e := range neighbors {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("bmssp: edge %s→%s weight=%g: %w", e.From, e.To, e.Weight, ErrNegativeWeight)
			}
			other := e.To
			if e.From != id {
				other = e.From // undirected edge, reached from its To endpoint
			}
			v := ix.idToIdx[other]
			if err := bg.AddEdge(u, v, e.Weight); err != nil {
				return nil, nil, err
			}
		}
	}

	return bg, ix, nil
}
