// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sortutil sorts slices with a softheap.Heap and measures how
// far an approximately-sorted result strays from true sorted order.
//
//	sorted := sortutil.Sort([]int{5, 1, 4, 2, 3})
//	approx, err := sortutil.SortApprox([]int{5, 1, 4, 2, 3}, 0.2)
//	tau := sortutil.KendallTau(approx)
package sortutil
