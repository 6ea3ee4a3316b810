// Copyright 2026 go-sorts Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sorts provides a suite of classic comparison-based sorting
// algorithms over Go slices: selection sort, insertion sort, shell sort,
// quicksort, and merge sort, plus an introsort-style Sort dispatcher that
// picks a strategy by input size.
//
// # Algorithms
//
// Each algorithm comes in two flavors:
//   - A natural-ordering variant over types satisfying the Ordered
//     constraint, e.g. Quick(data).
//   - A comparator variant for arbitrary element types, e.g.
//     QuickFunc(data, cmp), where cmp follows the cmp.Compare convention
//     (negative, zero, positive).
//
// Selection, Insertion, Shell, and Quick sort in place. Merge returns a
// newly allocated sorted slice and leaves its input untouched.
//
// # Stability
//
// Insertion and Merge are stable: elements that compare equal keep their
// original relative order. Selection, Shell, Quick, and Sort are not.
//
// # Choosing an algorithm
//
//	Sort(data)       // best default: insertion below a size threshold,
//	                 // quicksort above it, heapsort on pathological input
//	Insertion(data)  // small or nearly-sorted data, stability required
//	Quick(data)      // in-place, average O(n log n), reproducible
//	                 // first-element pivot (see QuickStrategy for others)
//	Merge(data)      // stability plus O(n log n) worst case, at the price
//	                 // of O(n) auxiliary space
//
// # Edge cases
//
// A nil slice is treated as an empty sequence everywhere: the in-place
// variants return immediately and the Merge variants return an empty
// non-nil slice. None of the functions return errors.
package sorts
