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

// heapSort is the O(n log n) worst-case fallback Sort switches to when
// quicksort recursion runs too deep. In place, not stable.
func heapSort[T Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Repeatedly move the max to the end of the shrinking heap.
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T Ordered](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

func heapSortFunc[T any](data []T, cmp CompareFunc[T]) {
	n := len(data)
	if n <= 1 {
		return
	}

	for i := n/2 - 1; i >= 0; i-- {
		siftDownFunc(data, i, n, cmp)
	}

	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDownFunc(data, 0, i, cmp)
	}
}

func siftDownFunc[T any](data []T, i, n int, cmp CompareFunc[T]) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && cmp(data[left], data[largest]) > 0 {
			largest = left
		}
		if right < n && cmp(data[right], data[largest]) > 0 {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
