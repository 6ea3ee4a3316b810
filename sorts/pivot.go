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

import "math/rand"

// PivotStrategy selects which element of a range quicksort partitions
// around.
type PivotStrategy int

const (
	// PivotFirst uses the first element of the range. Reproducible, but
	// worst case on sorted or reverse-sorted input. The default.
	PivotFirst PivotStrategy = iota

	// PivotMedianOfThree uses the median of the first, middle, and last
	// elements. Defeats the sorted-input worst case.
	PivotMedianOfThree

	// PivotRandom uses a uniformly random element, making adversarial
	// input unlikely in expectation. Runs are not reproducible.
	PivotRandom
)

// movePivotToStart swaps the strategy's chosen pivot into data[start] so
// partition can treat data[start] as the pivot unconditionally. Requires
// end-start >= 2.
func movePivotToStart[T Ordered](data []T, start, end int, strategy PivotStrategy) {
	switch strategy {
	case PivotMedianOfThree:
		m := start + (end-start)/2
		p := medianIndex(data[start], data[m], data[end-1], start, m, end-1)
		data[start], data[p] = data[p], data[start]
	case PivotRandom:
		p := start + rand.Intn(end-start)
		data[start], data[p] = data[p], data[start]
	}
}

func movePivotToStartFunc[T any](data []T, start, end int, strategy PivotStrategy, cmp CompareFunc[T]) {
	switch strategy {
	case PivotMedianOfThree:
		m := start + (end-start)/2
		p := medianIndexFunc(data[start], data[m], data[end-1], start, m, end-1, cmp)
		data[start], data[p] = data[p], data[start]
	case PivotRandom:
		p := start + rand.Intn(end-start)
		data[start], data[p] = data[p], data[start]
	}
}

// medianIndex returns the index (one of ia, ib, ic) whose value is the
// median of a, b, c.
func medianIndex[T Ordered](a, b, c T, ia, ib, ic int) int {
	switch {
	case (a <= b) == (b <= c):
		return ib
	case (b <= a) == (a <= c):
		return ia
	default:
		return ic
	}
}

func medianIndexFunc[T any](a, b, c T, ia, ib, ic int, cmp CompareFunc[T]) int {
	switch {
	case (cmp(a, b) <= 0) == (cmp(b, c) <= 0):
		return ib
	case (cmp(b, a) <= 0) == (cmp(a, c) <= 0):
		return ia
	default:
		return ic
	}
}
