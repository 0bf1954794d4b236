// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package softheap

import stderrors "errors"

// Sentinel errors returned for the caller-level invariant violations
// spec'd for this package: constructing a heap with an epsilon outside
// (0,1), melding two heaps whose epsilons disagree, and extracting
// from an empty heap. Use errors.Is to test for them; each returns-site
// wraps the sentinel with cloudeng.io/errors.WithCaller directly, so the
// annotated call site is the actual invariant check, not a shared
// helper.
var (
	ErrInvalidEpsilon  = stderrors.New("softheap: epsilon must satisfy 0 < epsilon < 1")
	ErrEpsilonMismatch = stderrors.New("softheap: cannot meld heaps with incompatible epsilons")
	ErrEmpty           = stderrors.New("softheap: heap is empty")
)

// epsilonTolerance is the relative slack allowed between the epsilons
// of two heaps being melded; see spec section 4.5 step 1.
const epsilonTolerance = 0.001
