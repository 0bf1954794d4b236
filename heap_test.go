// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package softheap_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/bchazelle/softheap"
)

func TestNewRejectsBadEpsilon(t *testing.T) {
	for _, eps := range []float64{0, 1, -0.1, 1.1} {
		if _, err := softheap.New[int, struct{}](eps); !errors.Is(err, softheap.ErrInvalidEpsilon) {
			t.Errorf("New(%v): got %v, want ErrInvalidEpsilon", eps, err)
		}
	}
}

func TestExtractFromEmptyFails(t *testing.T) {
	h, err := softheap.New[int, struct{}](0.1)
	if err != nil {
		t.Fatal(err)
	}
	if !h.Empty() {
		t.Fatal("new heap should be empty")
	}
	if _, _, err := h.ExtractMin(); !errors.Is(err, softheap.ErrEmpty) {
		t.Errorf("ExtractMin on empty heap: got %v, want ErrEmpty", err)
	}
}

func TestMeldRejectsMismatchedEpsilon(t *testing.T) {
	p, err := softheap.New[int, struct{}](0.2)
	if err != nil {
		t.Fatal(err)
	}
	q, err := softheap.New[int, struct{}](0.5)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := softheap.Meld(p, q); !errors.Is(err, softheap.ErrEpsilonMismatch) {
		t.Errorf("Meld with mismatched epsilons: got %v, want ErrEpsilonMismatch", err)
	}
	// Both inputs must remain usable.
	if p.Empty() != true || q.Empty() != true {
		t.Errorf("inputs should be untouched after a rejected meld")
	}
}

func drain[K softheap.Ordered](t *testing.T, h *softheap.Heap[K, struct{}]) []K {
	t.Helper()
	var out []K
	for !h.Empty() {
		k, _, err := h.ExtractMin()
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, k)
	}
	return out
}

func TestForwardSortExactAtTightEpsilon(t *testing.T) {
	const n = 1024
	h, err := softheap.New[int, struct{}](1.0 / float64(n+1))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		h.Insert(i, struct{}{})
	}
	for i := 0; i < n; i++ {
		key, _, ckey, err := h.ExtractMinWithCKey()
		if err != nil {
			t.Fatal(err)
		}
		if key != i {
			t.Fatalf("extraction %d: got key %v, want %v", i, key, i)
		}
		if ckey != key {
			t.Fatalf("extraction %d: got ckey %v, want %v (no corruption expected)", i, ckey, key)
		}
	}
}

func TestReverseSortExactAtTightEpsilon(t *testing.T) {
	const n = 1024
	h, err := softheap.New[int, struct{}](1.0 / float64(n+1))
	if err != nil {
		t.Fatal(err)
	}
	for i := n - 1; i >= 0; i-- {
		h.Insert(i, struct{}{})
	}
	for i := 0; i < n; i++ {
		key, _, ckey, err := h.ExtractMinWithCKey()
		if err != nil {
			t.Fatal(err)
		}
		if key != i {
			t.Fatalf("extraction %d: got key %v, want %v", i, key, i)
		}
		if ckey != key {
			t.Fatalf("extraction %d: got ckey %v, want %v (no corruption expected)", i, ckey, key)
		}
	}
}

func TestCoprimeSequenceBoundedCorruption(t *testing.T) {
	const n = 1 << 15 // 32768
	const epsilon = 0.1

	h, err := softheap.New[int, struct{}](epsilon)
	if err != nil {
		t.Fatal(err)
	}
	expected := make([]int, n)
	for i := 0; i < n; i++ {
		k := (1399 * i) % 1093
		expected[i] = k
		h.Insert(k, struct{}{})
	}
	sort.Ints(expected)

	got := make([]int, 0, n)
	corrupted := 0
	prevCKey := -1
	for i := 0; i < n; i++ {
		key, _, ckey, err := h.ExtractMinWithCKey()
		if err != nil {
			t.Fatal(err)
		}
		if ckey < prevCKey {
			t.Fatalf("extraction %d: ckey %v < previous ckey %v", i, ckey, prevCKey)
		}
		prevCKey = ckey
		if ckey > key {
			corrupted++
		}
		got = append(got, key)
	}
	sort.Ints(got)
	if !equalInts(got, expected) {
		t.Fatal("extracted multiset does not match inserted multiset")
	}
	nf := float64(n)
	if limit := int(epsilon * nf); corrupted > limit {
		t.Errorf("corrupted = %v, want <= %v", corrupted, limit)
	}
}

func TestRandomInsertsPreserveMultiset(t *testing.T) {
	const n = 1 << 14
	const epsilon = 0.3

	rng := rand.New(rand.NewSource(42))
	h, err := softheap.New[int, struct{}](epsilon)
	if err != nil {
		t.Fatal(err)
	}
	expected := make([]int, n)
	for i := 0; i < n; i++ {
		k := rng.Int()
		expected[i] = k
		h.Insert(k, struct{}{})
	}
	sort.Ints(expected)

	got := drain(t, h)
	sort.Ints(got)
	if !equalInts(got, expected) {
		t.Fatal("extracted multiset does not match inserted multiset")
	}
}

func TestMeldCommutativity(t *testing.T) {
	build := func(seed int64, n int) (*softheap.Heap[int, struct{}], []int) {
		rng := rand.New(rand.NewSource(seed))
		h, err := softheap.New[int, struct{}](0.2)
		if err != nil {
			t.Fatal(err)
		}
		keys := make([]int, n)
		for i := range keys {
			keys[i] = rng.Intn(1 << 16)
			h.Insert(keys[i], struct{}{})
		}
		return h, keys
	}

	p1, pk := build(1, 200)
	q1, qk := build(2, 150)
	pq, err := softheap.Meld(p1, q1)
	if err != nil {
		t.Fatal(err)
	}
	got1 := drain(t, pq)
	sort.Ints(got1)

	p2, _ := build(1, 200)
	q2, _ := build(2, 150)
	qp, err := softheap.Meld(q2, p2)
	if err != nil {
		t.Fatal(err)
	}
	got2 := drain(t, qp)
	sort.Ints(got2)

	want := append(append([]int{}, pk...), qk...)
	sort.Ints(want)

	if !equalInts(got1, want) {
		t.Fatal("meld(p,q) multiset mismatch")
	}
	if !equalInts(got2, want) {
		t.Fatal("meld(q,p) multiset mismatch")
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	h, err := softheap.New[int, struct{}](0.1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		h.Insert(i, struct{}{})
	}
	for !h.Empty() {
		if _, _, err := h.ExtractMin(); err != nil {
			t.Fatal(err)
		}
	}
	h.Destroy()
	h.Destroy()
	if !h.Empty() {
		t.Fatal("heap should be empty after Destroy")
	}
}

func TestCleanupStress(t *testing.T) {
	// Scaled down from spec.md's 100 heaps of up to 2^20 inserts each to
	// keep this fast as a regular (non-stress-mode) unit test; the shape
	// of the scenario - many heaps of growing size, each fully drained
	// or destroyed - is preserved.
	rng := rand.New(rand.NewSource(7))
	for i := 1; i <= 100; i++ {
		h, err := softheap.New[int, struct{}](1.0 / float64(1<<20))
		if err != nil {
			t.Fatal(err)
		}
		inserts := i * (1 << 14) / 100
		for j := 0; j < inserts; j++ {
			h.Insert(rng.Int(), struct{}{})
		}
		h.Destroy()
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
