// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package softheap

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
)

// Meld consumes both P and Q and returns a heap containing the union
// of their elements. After a successful call neither P nor Q may be
// used independently again - only the returned handle is valid. Meld
// fails, leaving both inputs untouched, if P and Q were built with
// epsilons that disagree by more than a small relative tolerance.
func Meld[K Ordered, V any](p, q *Heap[K, V]) (*Heap[K, V], error) {
	if math.Abs(p.epsilon-q.epsilon) > epsilonTolerance*math.Max(p.epsilon, q.epsilon) {
		return nil, errors.WithCaller(fmt.Errorf("%w: %v vs %v", ErrEpsilonMismatch, p.epsilon, q.epsilon))
	}

	small, large := p, q
	if p.rank > q.rank {
		small, large = q, p
	}

	mergeInto(small, large)
	repeatedCombine(large, small.rank, large.r)

	// small's shell is now dead; visibly retire it so any accidental
	// further use is easy to spot rather than silently sharing state
	// with large.
	small.first, small.rank = nil, -1

	return large, nil
}

// mergeInto walks small's root list and splices each of its trees
// into large's root list, immediately before the first large-tree of
// rank >= its own. large.rank must already be >= small.rank. The
// result (kept entirely in large) is sorted by rank but may have up
// to three trees sharing a rank at any one position.
func mergeInto[K Ordered, V any](small, large *Heap[K, V]) {
	currSmall, currLarge := small.first, large.first
	for currSmall != nil {
		for currLarge.rank < currSmall.rank {
			currLarge = currLarge.next
		}
		next := currSmall.next
		insertTree(large, currSmall, currLarge)
		currSmall = next
	}
}

// repeatedCombine walks h's root list from the head, combining
// adjacent equal-rank trees into carries (binomial-heap-style) until
// no two trees remain of any rank below or at smallerRank, the rank of
// the heap that was just merged in (nothing above that rank can have
// picked up a third tree to combine). It finishes by refreshing
// sufmin for every tree from the last affected position back to the
// head.
func repeatedCombine[K Ordered, V any](h *Heap[K, V], smallerRank, r int) {
	curr := h.first
	if curr == nil {
		return
	}

loop:
	for curr.next != nil {
		two := curr.rank == curr.next.rank
		three := two && curr.next.next != nil && curr.rank == curr.next.next.rank

		switch {
		case !two:
			if curr.rank > smallerRank {
				break loop
			}
			curr = curr.next
		case !three:
			curr.root = combine(curr.root, curr.next.root, r)
			curr.rank = curr.root.rank
			removeTree(h, curr.next)
		default:
			// Three trees of equal rank: combining the first two would
			// produce a carry equal in rank to the third, breaking the
			// sorted invariant. Skip the first and combine the second
			// and third instead.
			curr = curr.next
		}
	}

	if curr.rank > h.rank {
		h.rank = curr.rank
	}
	updateSuffixMin(curr)
}
