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

// GapSequence produces the decreasing gap strides shell sort uses for an
// input of length n. The returned gaps must be positive, strictly
// decreasing, and end with 1; the final gap-1 pass is a plain insertion
// sort and is what guarantees a fully sorted result.
type GapSequence func(n int) []int

// GapsHalving is the classic n/2, n/4, ..., 1 sequence. It is the default
// used by Shell. Worst case O(n^2), typically sub-quadratic.
func GapsHalving(n int) []int {
	var gaps []int
	for gap := n / 2; gap > 0; gap /= 2 {
		gaps = append(gaps, gap)
	}
	return gaps
}

// GapsKnuth is Knuth's 1, 4, 13, 40, ... sequence (h = 3h+1), returned in
// decreasing order. Gives O(n^1.5) worst case.
func GapsKnuth(n int) []int {
	if n < 2 {
		return nil
	}
	h := 1
	for h < n/3 {
		h = 3*h + 1
	}
	var gaps []int
	for ; h >= 1; h = (h - 1) / 3 {
		gaps = append(gaps, h)
	}
	return gaps
}

// Shell sorts data in place in ascending order using shell sort with the
// halving gap sequence. Not stable: the long-distance moves in early gap
// passes reorder equal elements. O(1) space.
func Shell[T Ordered](data []T) {
	for gap := len(data) / 2; gap > 0; gap /= 2 {
		gapPass(data, gap)
	}
}

// ShellGaps is Shell with a caller-supplied gap sequence, e.g. GapsKnuth.
func ShellGaps[T Ordered](data []T, gaps GapSequence) {
	for _, gap := range gaps(len(data)) {
		if gap < 1 {
			continue
		}
		gapPass(data, gap)
	}
}

// ShellFunc is Shell with an explicit comparator.
func ShellFunc[T any](data []T, cmp CompareFunc[T]) {
	for gap := len(data) / 2; gap > 0; gap /= 2 {
		gapPassFunc(data, gap, cmp)
	}
}

// ShellGapsFunc is ShellGaps with an explicit comparator.
func ShellGapsFunc[T any](data []T, gaps GapSequence, cmp CompareFunc[T]) {
	for _, gap := range gaps(len(data)) {
		if gap < 1 {
			continue
		}
		gapPassFunc(data, gap, cmp)
	}
}

// gapPass runs one insertion-sort pass where "adjacent" means gap positions
// apart. With gap == 1 this is exactly an insertion sort pass.
func gapPass[T Ordered](data []T, gap int) {
	for i := gap; i < len(data); i++ {
		key := data[i]
		j := i - gap
		for j >= 0 && data[j] > key {
			data[j+gap] = data[j]
			j -= gap
		}
		data[j+gap] = key
	}
}

func gapPassFunc[T any](data []T, gap int, cmp CompareFunc[T]) {
	for i := gap; i < len(data); i++ {
		key := data[i]
		j := i - gap
		for j >= 0 && cmp(data[j], key) > 0 {
			data[j+gap] = data[j]
			j -= gap
		}
		data[j+gap] = key
	}
}
