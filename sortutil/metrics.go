// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sortutil

import (
	"sort"

	"github.com/bchazelle/softheap"
)

// ranks returns, for each position i of output, the position output[i]
// would occupy in sorted order - ties broken by original index so
// ranks is always a permutation of 0..len(output)-1.
func ranks[K softheap.Ordered](output []K) []int {
	idx := make([]int, len(output))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return output[idx[a]] < output[idx[b]]
	})
	r := make([]int, len(output))
	for pos, i := range idx {
		r[i] = pos
	}
	return r
}

// KendallTau returns the normalized Kendall tau distance between
// output and its own sorted order: twice the number of pairs (i, j)
// with i < j whose relative order is inverted, divided by n(n-1). It
// is 0 for an already-sorted slice and 1 for a fully reversed one.
func KendallTau[K softheap.Ordered](output []K) float64 {
	n := len(output)
	if n < 2 {
		return 0
	}
	r := ranks(output)
	var inversions int64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r[i] > r[j] {
				inversions++
			}
		}
	}
	return 2 * float64(inversions) / (float64(n) * float64(n-1))
}

// MispositionFraction returns the fraction of elements in output that
// do not sit at the index they would occupy in sorted order.
func MispositionFraction[K softheap.Ordered](output []K) float64 {
	n := len(output)
	if n == 0 {
		return 0
	}
	r := ranks(output)
	mispos := 0
	for i, rank := range r {
		if rank != i {
			mispos++
		}
	}
	return float64(mispos) / float64(n)
}

// MispositionFractionThreshold is like MispositionFraction but only
// counts an element as mispositioned if it sits more than threshold
// places away from its sorted-order index. A threshold of 0 makes it
// equivalent to MispositionFraction.
func MispositionFractionThreshold[K softheap.Ordered](output []K, threshold int) float64 {
	n := len(output)
	if n == 0 {
		return 0
	}
	r := ranks(output)
	mispos := 0
	for i, rank := range r {
		d := rank - i
		if d < 0 {
			d = -d
		}
		if d > threshold {
			mispos++
		}
	}
	return float64(mispos) / float64(n)
}
