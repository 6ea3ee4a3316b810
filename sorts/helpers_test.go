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

import (
	"math/rand"
	"testing"
)

// Shared test fixtures and helpers.

// testSizes covers the interesting boundaries: empty, single, around the
// Sort insertion threshold, and large enough to exercise deep recursion.
var testSizes = []int{0, 1, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}

// seedInput and seedWant are the canonical scenario every algorithm must
// agree on.
var (
	seedInput = []int{20, 35, -15, 7, 55, 1, -22}
	seedWant  = []int{-22, -15, 1, 7, 20, 35, 55}
)

func generateInts(n int, rng *rand.Rand) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(10000) - 5000
	}
	return data
}

func generateSortedInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

func generateReversedInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = n - i
	}
	return data
}

// sameElements reports whether a and b are permutations of each other.
func sameElements[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[T]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// checkSortedPermutation fails the test unless got is a sorted permutation
// of the original input.
func checkSortedPermutation(t *testing.T, name string, input, got []int) {
	t.Helper()
	if len(got) != len(input) {
		t.Fatalf("%s: length changed: got %d, want %d", name, len(got), len(input))
	}
	if !IsSorted(got) {
		t.Errorf("%s: result not sorted: %v", name, got)
	}
	if !sameElements(input, got) {
		t.Errorf("%s: result is not a permutation of the input: %v", name, got)
	}
}

// pair is an element with a secondary tag used to observe stability.
type pair struct {
	key int
	tag string
}

func byKey(a, b pair) int {
	return a.key - b.key
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
