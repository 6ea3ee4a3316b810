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

// Selection sorts data in place in ascending order using selection sort.
//
// Each pass scans the shrinking unsorted prefix for its largest element and
// swaps it to the end of that prefix, so the sorted suffix grows by one per
// pass and at most n-1 swaps happen in total. That write bound is the one
// reason to pick selection sort: O(n^2) comparisons in every case, but
// minimal element movement. Not stable.
func Selection[T Ordered](data []T) {
	for last := len(data) - 1; last > 0; last-- {
		max := 0
		for i := 1; i <= last; i++ {
			if data[i] > data[max] {
				max = i
			}
		}
		data[max], data[last] = data[last], data[max]
	}
}

// SelectionFunc is Selection with an explicit comparator.
func SelectionFunc[T any](data []T, cmp CompareFunc[T]) {
	for last := len(data) - 1; last > 0; last-- {
		max := 0
		for i := 1; i <= last; i++ {
			if cmp(data[i], data[max]) > 0 {
				max = i
			}
		}
		data[max], data[last] = data[last], data[max]
	}
}
