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

package sorts

// sortInsertionThreshold: use insertion sort for ranges this size or
// smaller. Below this point the constant factors of insertion sort beat
// quicksort's partitioning overhead.
const sortInsertionThreshold = 32

// Sort sorts data in place in ascending order. It is an introsort:
// insertion sort for small ranges, quicksort with a median-of-three pivot
// for larger ones, and a heapsort fallback when recursion exceeds
// 2*floor(log2 n), which caps the worst case at O(n log n). Not stable.
//
// The five named algorithms (Selection, Insertion, Shell, Quick, Merge)
// keep their textbook behavior; Sort is the practical front door.
func Sort[T Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Max recursion depth: 2 * floor(log2(n)).
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	maxDepth *= 2

	sortImpl(data, maxDepth)
}

// SortFunc is Sort with an explicit comparator.
func SortFunc[T any](data []T, cmp CompareFunc[T]) {
	n := len(data)
	if n <= 1 {
		return
	}

	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	maxDepth *= 2

	sortImplFunc(data, maxDepth, cmp)
}

func sortImpl[T Ordered](data []T, depthLimit int) {
	n := len(data)

	if n <= sortInsertionThreshold {
		Insertion(data)
		return
	}

	if depthLimit == 0 {
		heapSort(data)
		return
	}

	movePivotToStart(data, 0, n, PivotMedianOfThree)
	p := partition(data, 0, n)

	sortImpl(data[:p], depthLimit-1)
	sortImpl(data[p+1:], depthLimit-1)
}

func sortImplFunc[T any](data []T, depthLimit int, cmp CompareFunc[T]) {
	n := len(data)

	if n <= sortInsertionThreshold {
		InsertionFunc(data, cmp)
		return
	}

	if depthLimit == 0 {
		heapSortFunc(data, cmp)
		return
	}

	movePivotToStartFunc(data, 0, n, PivotMedianOfThree, cmp)
	p := partitionFunc(data, 0, n, cmp)

	sortImplFunc(data[:p], depthLimit-1, cmp)
	sortImplFunc(data[p+1:], depthLimit-1, cmp)
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc is IsSorted with an explicit comparator.
func IsSortedFunc[T any](data []T, cmp CompareFunc[T]) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}

// NthElement rearranges data in place so that the element at index k is
// the one that would be there if data were fully sorted, with everything
// before k <= data[k] and everything after k >= data[k]. Out-of-range k is
// a no-op. Average O(n).
func NthElement[T Ordered](data []T, k int) {
	if k < 0 || k >= len(data) {
		return
	}

	start, end := 0, len(data)
	for end-start > 1 {
		movePivotToStart(data, start, end, PivotMedianOfThree)
		p := partition(data, start, end)
		switch {
		case k == p:
			return
		case k < p:
			end = p
		default:
			start = p + 1
		}
	}
}

// NthElementFunc is NthElement with an explicit comparator.
func NthElementFunc[T any](data []T, k int, cmp CompareFunc[T]) {
	if k < 0 || k >= len(data) {
		return
	}

	start, end := 0, len(data)
	for end-start > 1 {
		movePivotToStartFunc(data, start, end, PivotMedianOfThree, cmp)
		p := partitionFunc(data, start, end, cmp)
		switch {
		case k == p:
			return
		case k < p:
			end = p
		default:
			start = p + 1
		}
	}
}
