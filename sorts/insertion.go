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

// Insertion sorts data in place in ascending order using insertion sort.
//
// Stable: the shift loop uses a strict > comparison, so equal elements are
// never moved past each other. O(n^2) worst case, O(n) on already-sorted
// input, O(1) space. The method of choice for small or nearly-sorted data;
// Sort falls back to it below its size threshold.
func Insertion[T Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// InsertionFunc is Insertion with an explicit comparator. Stable.
func InsertionFunc[T any](data []T, cmp CompareFunc[T]) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && cmp(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
