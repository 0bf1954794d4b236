// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package softheap

// Ordered is the constraint satisfied by any key type usable with
// Heap: a total order via the built-in comparison operators. The
// original soft heap is specified purely in terms of integer keys;
// this is the generalization spec.md's Non-goals section invites -
// any totally ordered key with an arbitrary associated payload.
type Ordered interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
