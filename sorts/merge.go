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

// Merge sorts data in ascending order using top-down merge sort and
// returns the result as a newly allocated slice; data itself is left
// untouched. Stable. O(n log n) time in every case, O(n) auxiliary space.
// A nil or empty input yields an empty non-nil slice.
func Merge[T Ordered](data []T) []T {
	if len(data) <= 1 {
		out := make([]T, len(data))
		copy(out, data)
		return out
	}
	return mergeSort(data)
}

// MergeFunc is Merge with an explicit comparator. Stable.
func MergeFunc[T any](data []T, cmp CompareFunc[T]) []T {
	if len(data) <= 1 {
		out := make([]T, len(data))
		copy(out, data)
		return out
	}
	return mergeSortFunc(data, cmp)
}

// mergeSort may return subslices of the original input for runs of length
// one; every longer result comes fresh out of mergeRuns, so any input of
// two or more elements produces a fully independent slice.
func mergeSort[T Ordered](data []T) []T {
	if len(data) <= 1 {
		return data
	}
	mid := len(data) / 2
	return mergeRuns(mergeSort(data[:mid]), mergeSort(data[mid:]))
}

func mergeSortFunc[T any](data []T, cmp CompareFunc[T]) []T {
	if len(data) <= 1 {
		return data
	}
	mid := len(data) / 2
	return mergeRunsFunc(mergeSortFunc(data[:mid], cmp), mergeSortFunc(data[mid:], cmp), cmp)
}

// mergeRuns merges two sorted runs into a new slice. Ties prefer left,
// which is what makes the overall sort stable: equal elements from the
// earlier half are emitted before those from the later half.
func mergeRuns[T Ordered](left, right []T) []T {
	out := make([]T, 0, len(left)+len(right))
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if left[l] <= right[r] {
			out = append(out, left[l])
			l++
		} else {
			out = append(out, right[r])
			r++
		}
	}
	out = append(out, left[l:]...)
	out = append(out, right[r:]...)
	return out
}

func mergeRunsFunc[T any](left, right []T, cmp CompareFunc[T]) []T {
	out := make([]T, 0, len(left)+len(right))
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if cmp(left[l], right[r]) <= 0 {
			out = append(out, left[l])
			l++
		} else {
			out = append(out, right[r])
			r++
		}
	}
	out = append(out, left[l:]...)
	out = append(out, right[r:]...)
	return out
}
