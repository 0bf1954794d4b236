// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package softheap

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
)

// Heap is a soft heap: an approximate min-priority queue parameterized
// by an error rate epsilon. See the package doc comment for the
// guarantee it provides. The zero value is not usable; construct one
// with New or NewWithElem.
type Heap[K Ordered, V any] struct {
	first   *tree[K, V]
	rank    int // rank of the last tree in the root list, or -1 if empty.
	epsilon float64
	r       int // max rank at which a combined node's size is forced to 1.
}

// New returns a new, empty soft heap with the given error rate.
// epsilon must satisfy 0 < epsilon < 1.
func New[K Ordered, V any](epsilon float64) (*Heap[K, V], error) {
	if epsilon <= 0 || epsilon >= 1 {
		return nil, errors.WithCaller(fmt.Errorf("%w: got %v", ErrInvalidEpsilon, epsilon))
	}
	return &Heap[K, V]{rank: -1, epsilon: epsilon, r: computeR(epsilon)}, nil
}

// NewWithElem returns a new soft heap with the given error rate,
// containing a single element (key, val). epsilon must satisfy
// 0 < epsilon < 1.
func NewWithElem[K Ordered, V any](key K, val V, epsilon float64) (*Heap[K, V], error) {
	h, err := New[K, V](epsilon)
	if err != nil {
		return nil, err
	}
	h.first = makeTree(key, val)
	h.rank = 0
	return h, nil
}

// computeR returns the rank threshold past which a combined node's
// size begins to grow: max(5, ceil(log2(1/epsilon)) + 5), as recorded in
// PART E of SPEC_FULL.md. For epsilon in (0,1) the formula alone already
// gives at least 6, so the floor never changes the result there.
func computeR(epsilon float64) int {
	r := int(math.Ceil(-math.Log2(epsilon))) + 5
	if r < 5 {
		r = 5
	}
	return r
}

// Empty reports whether h contains no elements.
func (h *Heap[K, V]) Empty() bool {
	return h.first == nil
}

// Epsilon returns the error rate h was constructed with.
func (h *Heap[K, V]) Epsilon() float64 {
	return h.epsilon
}

// Insert adds (key, val) to h. It is implemented, per spec.md section
// 4.6, as a meld of h with a singleton heap; the result is copied back
// into the receiver so existing references to h remain valid.
func (h *Heap[K, V]) Insert(key K, val V) {
	single := &Heap[K, V]{first: makeTree(key, val), rank: 0, epsilon: h.epsilon, r: h.r}
	merged, err := Meld(h, single)
	if err != nil {
		// Cannot happen: single shares h's epsilon exactly.
		panic(err)
	}
	*h = *merged
}

// ExtractMin removes and returns the element of minimum ckey in h. Of
// the elements sharing that node's ckey it returns the one that has
// been resident longest (FIFO within a node's item list). It fails if
// h is empty.
func (h *Heap[K, V]) ExtractMin() (K, V, error) {
	key, val, _, err := h.extractMin()
	return key, val, err
}

// ExtractMinWithCKey is like ExtractMin but additionally returns the
// ckey the element was traveling under - an upper bound on its
// original key, and the true original key only when the element was
// never corrupted.
func (h *Heap[K, V]) ExtractMinWithCKey() (K, V, K, error) {
	return h.extractMin()
}

func (h *Heap[K, V]) extractMin() (key K, val V, ckey K, err error) {
	if h.Empty() {
		err = errors.WithCaller(ErrEmpty)
		return
	}

	t := h.first.sufmin
	x := t.root
	key, val = extractElem(x)
	ckey = x.ckey

	if x.nelems <= x.size/2 {
		switch {
		case !x.leaf():
			sift(x)
			updateSuffixMin(t)
		case x.nelems == 0:
			removeTree(h, t)
			if t.next == nil {
				if t.prev == nil {
					h.rank = -1
				} else {
					h.rank = t.prev.rank
				}
			}
			if t.prev != nil {
				updateSuffixMin(t.prev)
			}
		}
	}

	return key, val, ckey, nil
}

// Destroy releases h's forest. h is empty afterwards and safe to call
// Destroy on again; the garbage collector reclaims the forest once it
// is unreachable; see PART E of SPEC_FULL.md.
func (h *Heap[K, V]) Destroy() {
	h.first = nil
	h.rank = -1
}
