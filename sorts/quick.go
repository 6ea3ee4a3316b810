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

// Quick sorts data in place in ascending order using quicksort with
// Hoare-style two-pointer partitioning. The pivot is always the first
// element of the range being partitioned, which keeps runs reproducible
// but degrades to O(n^2) on sorted or reverse-sorted input; use
// QuickStrategy with PivotMedianOfThree or PivotRandom to avoid that, or
// Sort for an O(n log n) worst-case guarantee. Not stable. Average
// O(n log n), recursion depth bounded at O(log n) by always recursing into
// the smaller partition.
func Quick[T Ordered](data []T) {
	quickRange(data, 0, len(data), PivotFirst)
}

// QuickStrategy is Quick with an explicit pivot selection strategy.
func QuickStrategy[T Ordered](data []T, strategy PivotStrategy) {
	quickRange(data, 0, len(data), strategy)
}

// QuickFunc is Quick with an explicit comparator.
func QuickFunc[T any](data []T, cmp CompareFunc[T]) {
	quickRangeFunc(data, 0, len(data), PivotFirst, cmp)
}

// QuickStrategyFunc is QuickStrategy with an explicit comparator.
func QuickStrategyFunc[T any](data []T, strategy PivotStrategy, cmp CompareFunc[T]) {
	quickRangeFunc(data, 0, len(data), strategy, cmp)
}

// quickRange sorts the half-open range data[start:end). It recurses into
// the smaller partition and loops on the larger one, so the stack stays
// O(log n) even when partitions are maximally unbalanced.
func quickRange[T Ordered](data []T, start, end int, strategy PivotStrategy) {
	for end-start > 1 {
		movePivotToStart(data, start, end, strategy)
		p := partition(data, start, end)
		if p-start < end-(p+1) {
			quickRange(data, start, p, strategy)
			start = p + 1
		} else {
			quickRange(data, p+1, end, strategy)
			end = p
		}
	}
}

func quickRangeFunc[T any](data []T, start, end int, strategy PivotStrategy, cmp CompareFunc[T]) {
	for end-start > 1 {
		movePivotToStartFunc(data, start, end, strategy, cmp)
		p := partitionFunc(data, start, end, cmp)
		if p-start < end-(p+1) {
			quickRangeFunc(data, start, p, strategy, cmp)
			start = p + 1
		} else {
			quickRangeFunc(data, p+1, end, strategy, cmp)
			end = p
		}
	}
}

// partition rearranges data[start:end) around the pivot at data[start] and
// returns the pivot's final index p, with data[start:p] <= pivot and
// data[p+1:end] >= pivot. Elements equal to the pivot may end up on either
// side.
//
// Lifting the pivot out of data[start] leaves a hole; the two scans
// alternate filling the hole from the far side and moving it toward the
// middle, and the pivot drops into the hole once the scans meet. Requires
// end-start >= 1.
func partition[T Ordered](data []T, start, end int) int {
	pivot := data[start]
	i, j := start, end
	for i < j {
		// Scan right-to-left for an element smaller than the pivot.
		for {
			j--
			if j == i || data[j] < pivot {
				break
			}
		}
		if i < j {
			data[i] = data[j]
			// Scan left-to-right for an element larger than the pivot.
			for {
				i++
				if i == j || data[i] > pivot {
					break
				}
			}
			if i < j {
				data[j] = data[i]
			}
		}
	}
	data[i] = pivot
	return i
}

func partitionFunc[T any](data []T, start, end int, cmp CompareFunc[T]) int {
	pivot := data[start]
	i, j := start, end
	for i < j {
		for {
			j--
			if j == i || cmp(data[j], pivot) < 0 {
				break
			}
		}
		if i < j {
			data[i] = data[j]
			for {
				i++
				if i == j || cmp(data[i], pivot) > 0 {
					break
				}
			}
			if i < j {
				data[j] = data[i]
			}
		}
	}
	data[i] = pivot
	return i
}
