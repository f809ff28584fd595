package bmssp

import "math"

// params bundles the recursion's derived constants, computed once by SSSP
// from the vertex count and threaded down through every recursive call.
type params struct {
	k int
	t int
}

// recurse implements the BMSSP recursion of spec.md §4.5, verbatim from
// original_source/src/sssp/bmssp.py's bmssp closure: at ℓ=0 it delegates to
// baseCase; otherwise it finds pivots, pulls bounded batches from a
// frontier container D, recurses at ℓ-1, and classifies newly relaxed
// vertices into a same-level carry-over set or D itself, before finally
// augmenting the settled set with every witness vertex still under bound.
func (s *state) recurse(p params, l int, B float64, S []int) (bPrime float64, U []int) {
	if l == 0 {
		// Base case operates on a singleton frontier; find_pivots guarantees
		// this by construction (pull_size 2^((l-1)*t) collapses to 1 source
		// at l=1's recursive call into l=0 in the reference implementation's
		// general case, and the top-level driver also starts with a
		// singleton {source}).
		if len(S) == 0 {
			return B, nil
		}
		return s.baseCase(B, S[0])
	}

	P, W := s.findPivots(p.k, B, S)
	if len(P) == 0 {
		return B, nil
	}

	d := newFrontier(s.db)
	for _, v := range P {
		d.insert(v)
	}

	termination := float64(p.k) * math.Pow(2, float64(l*p.t))
	pullSize := int(math.Pow(2, float64((l-1)*p.t)))
	if pullSize < 1 {
		pullSize = 1
	}

	var settled []int32
	bPrime = B

	for float64(len(settled)) < termination && !d.isEmpty() {
		bi, si := d.pull(pullSize)

		bPrimeI, ui := s.recurse(p, l-1, bi, si)
		for _, v := range ui {
			settled = append(settled, int32(v))
		}

		var k32 []int32
		for _, u := range ui {
			for _, e := range s.g.outEdges(u) {
				newDist, relaxed := s.relax(u, int(e.To), e.Weight)
				if !relaxed {
					continue
				}
				switch {
				case newDist >= bPrimeI && newDist < bi:
					k32 = append(k32, e.To)
				case newDist >= bi && newDist < B:
					d.insert(int(e.To))
				}
			}
		}

		for _, v := range k32 {
			d.insert(int(v))
		}
		for _, sv := range si {
			if s.db[sv] >= bPrimeI && s.db[sv] < bi {
				d.insert(sv)
			}
		}

		if float64(len(settled)) >= termination {
			bPrime = bPrimeI
			break
		}
	}
	if d.isEmpty() && float64(len(settled)) < termination {
		bPrime = B
	}

	for _, w := range W {
		if s.db[w] < bPrime {
			settled = append(settled, int32(w))
		}
	}

	U = make([]int, len(settled))
	seen := make(map[int32]bool, len(settled))
	n := 0
	for _, v := range settled {
		if seen[v] {
			continue
		}
		seen[v] = true
		U[n] = int(v)
		n++
	}

	return bPrime, U[:n]
}
