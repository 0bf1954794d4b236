// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package softheap

// tree wraps one root of the forest as a node in the heap's root
// list. A tree owns its root subtree exclusively; prev, next and
// sufmin are non-owning references to other trees in the same forest.
type tree[K Ordered, V any] struct {
	prev, next, sufmin *tree[K, V]
	root               *node[K, V]
	rank               int
}

func makeTree[K Ordered, V any](key K, val V) *tree[K, V] {
	t := &tree[K, V]{root: makeNode(key, val)}
	t.sufmin = t
	return t
}

// insertTree splices inserted immediately before successor in h's
// root list.
func insertTree[K Ordered, V any](h *Heap[K, V], inserted, successor *tree[K, V]) {
	inserted.next = successor
	if successor.prev == nil {
		h.first = inserted
	} else {
		successor.prev.next = inserted
	}
	inserted.prev = successor.prev
	successor.prev = inserted
}

// removeTree unlinks removed from h's root list. removed's own prev
// and next fields are left untouched so callers (extractMin) can still
// consult them afterwards, matching the reference semantics.
func removeTree[K Ordered, V any](h *Heap[K, V], removed *tree[K, V]) {
	if removed.prev == nil {
		h.first = removed.next
	} else {
		removed.prev.next = removed.next
	}
	if removed.next != nil {
		removed.next.prev = removed.prev
	}
}

// updateSuffixMin walks backwards from t, refreshing each visited
// tree's sufmin pointer to the minimum-ckey root among itself and all
// of its successors. Callers must invoke it after any mutation that
// can change a root's ckey or t's set of successors.
func updateSuffixMin[K Ordered, V any](t *tree[K, V]) {
	for t != nil {
		if t.next == nil || t.root.ckey <= t.next.sufmin.root.ckey {
			t.sufmin = t
		} else {
			t.sufmin = t.next.sufmin
		}
		t = t.prev
	}
}
