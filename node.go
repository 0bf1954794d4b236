// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package softheap

// node is a heap-ordered binary tree node. ckey is the working key
// shared by every item currently in the node's list: it is an upper
// bound on the original key of every item the list holds, and is
// monotone non-decreasing over the node's lifetime. size is the
// node's target population; a non-leaf node with nelems < size is
// deficient and must be repaired by sift.
type node[K Ordered, V any] struct {
	left, right *node[K, V]
	first, last *item[K, V]
	ckey        K
	rank        int
	size        int
	nelems      int
}

func (x *node[K, V]) leaf() bool {
	return x.left == nil && x.right == nil
}

func makeNode[K Ordered, V any](key K, val V) *node[K, V] {
	x := &node[K, V]{ckey: key, size: 1}
	appendItem(x, key, val)
	return x
}

// sift repairs a size-deficient non-leaf node by repeatedly pulling
// the list of its lower-ckey child into its own list, descending into
// that child to repair it in turn, and discarding the child outright
// once it becomes an empty leaf. It terminates either because x is no
// longer deficient or because x has become a leaf itself (which may
// still be deficient - that is acceptable, per spec section 4.2).
func sift[K Ordered, V any](x *node[K, V]) {
	for x.nelems < x.size && !x.leaf() {
		if x.left == nil || (x.right != nil && x.right.ckey < x.left.ckey) {
			x.left, x.right = x.right, x.left
		}
		moveList(x.left, x)
		x.ckey = x.left.ckey

		if x.left.leaf() {
			// A leaf's list can never be refilled; it is spent.
			x.left = nil
		} else {
			sift(x.left)
		}
	}
}

// combine merges two equal-rank nodes into one of rank one higher. r
// is the maximum rank at which a combined node's size is still forced
// to 1; past it size grows by a factor of 3/2 (rounded up), per
// spec.md section 3.
func combine[K Ordered, V any](x, y *node[K, V], r int) *node[K, V] {
	z := &node[K, V]{left: x, right: y, rank: x.rank + 1}
	if z.rank <= r {
		z.size = 1
	} else {
		z.size = ceilDiv(3*x.size+1, 2)
	}
	sift(z)
	return z
}

func ceilDiv(num, den int) int {
	return (num + den - 1) / den
}
