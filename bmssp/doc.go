// Package bmssp implements the bounded multi-source shortest-path (BMSSP)
// recursion of Duan et al. (2025), "Breaking the Sorting Barrier for
// Directed Single-Source Shortest Paths", computing single-source shortest
// paths on a directed graph with non-negative real edge weights in
// roughly O(m · log^(2/3) n) time, below the classical heap-Dijkstra
// sorting barrier of O((n + m) log n).
//
// Overview:
//
//   - Graph holds a compact, int-indexed, CSR-style adjacency compiled from
//     the added edges on first use (and again after any later AddEdge):
//     out_edges(u) is a contiguous slice, giving O(1) enumeration with no
//     per-call allocation.
//   - SSSP seeds db[source]=0, computes the recursion parameters k, t, and
//     ℓ_max from the vertex count, and invokes the bmssp recursion at the
//     top level with bound +∞.
//   - The recursion alternates between findPivots (a bounded k-step
//     Bellman-style relaxation that prunes the frontier down to a small set
//     of pivots with large settled subtrees) and baseCase (a bounded
//     Dijkstra run from a single pivot), feeding settled vertices back
//     through a distance-keyed frontier container D.
//
// When to use:
//
//   - On large sparse graphs where the asymptotic improvement over Dijkstra
//     matters; for small graphs, dijkstra.Dijkstra is simpler and the
//     constant factors of BMSSP's recursion may dominate.
//   - As a library: build a Graph via NewGraph/AddEdge, or compile one from
//     a core.Graph via FromCoreGraph, then call SSSP or SSSPNamed.
//
// Shared state:
//
//   - db: length-n distance bound array, monotonically non-increasing,
//     initialized to +∞ except db[source]=0.
//   - pred: length-n predecessor array, -1 meaning "no predecessor yet".
//
// Error handling (sentinel errors):
//
//   - ErrInvalidVertex: an edge references a vertex outside [0,n).
//   - ErrNegativeWeight: an edge weight below zero was supplied.
//   - ErrSourceOutOfRange: the source vertex index passed to SSSP is invalid.
//
// Numerical overflow is not a distinct error kind here: this package uses
// IEEE-754 float64 throughout and relies on math.Inf(1) saturation for
// unreachable distances, so additions never overflow in a way that needs
// detecting (see the sentinel errors in types.go).
//
// Concurrency:
//
//   - SSSP and the recursion it drives are synchronous and single-threaded;
//     no goroutines, no locking. A Graph, once built, must not be mutated
//     concurrently with a running SSSP call. Building a core.Graph
//     concurrently (via core's own mutex-guarded API) and compiling it with
//     FromCoreGraph afterwards is a separate, earlier phase and is safe.
//
// See also:
//
//   - core.Graph: concurrency-safe named-vertex graph construction.
//   - dijkstra.Dijkstra: classical reference-oracle implementation used by
//     this package's own property tests for cross-checking.
package bmssp
