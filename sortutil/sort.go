// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sortutil

import (
	"fmt"

	"github.com/bchazelle/softheap"
)

// Sort returns a new slice holding items in nondecreasing order. It
// builds a softheap.Heap with an epsilon of 1/(n+1), tight
// enough that the corruption bound guarantees zero corrupted elements,
// so the heap's extraction order is exactly sorted order.
func Sort[K softheap.Ordered](items []K) []K {
	if len(items) <= 1 {
		out := make([]K, len(items))
		copy(out, items)
		return out
	}
	epsilon := 1.0 / float64(len(items)+1)
	out, err := SortApprox(items, epsilon)
	if err != nil {
		// epsilon is constructed in (0,1) for any non-empty items, so
		// softheap.New cannot reject it.
		panic(err)
	}
	return out
}

// SortApprox returns a new slice holding items in approximately
// nondecreasing order: the heap's extraction order. At any one time at
// most floor(epsilon*n) of the elements in the heap travel under a
// corrupted key, but a corrupted element can displace others, so more
// elements than that may sit away from their sorted-order index. In exchange the heap's operations run
// in amortized O(log(1/epsilon)) rather than an exact sort's O(log n).
// It fails only if
// epsilon does not satisfy 0 < epsilon < 1.
func SortApprox[K softheap.Ordered](items []K, epsilon float64) ([]K, error) {
	h, err := softheap.New[K, struct{}](epsilon)
	if err != nil {
		return nil, fmt.Errorf("sortutil: %w", err)
	}
	for _, v := range items {
		h.Insert(v, struct{}{})
	}
	out := make([]K, 0, len(items))
	for !h.Empty() {
		k, _, err := h.ExtractMin()
		if err != nil {
			// h.Empty() was just checked false; ExtractMin cannot fail.
			panic(err)
		}
		out = append(out, k)
	}
	return out, nil
}
