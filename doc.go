// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package softheap implements a soft heap: an approximate min-priority
// queue following Kaplan and Zwick's binary-tree reformulation of
// Chazelle's original soft heap. Parameterized by an error rate
// epsilon in (0,1), it guarantees that across any sequence of
// operations containing n inserts, at most floor(epsilon*n) elements
// are ever "corrupted" - traveling through the heap with a working key
// (ckey) greater than the key they were inserted with. In exchange,
// Insert, Meld and ExtractMin all run in amortized O(log(1/epsilon))
// time, rather than the O(log n) a heap with an exact extract-min
// requires.
//
// A soft heap is a forest of binary trees kept in a doubly linked root
// list ordered by strictly increasing rank, each tree caching a
// pointer (sufmin) to the minimum-ckey tree among itself and its
// successors so that ExtractMin never has to scan the forest:
//
//	h, _ := softheap.New[int, struct{}](0.1)
//	h.Insert(5, struct{}{})
//	h.Insert(1, struct{}{})
//	key, _, _ := h.ExtractMin() // key == 1, almost always
//
// Melding two heaps is destructive: after a successful Meld neither
// input handle may be used again, only the value Meld returns.
package softheap
