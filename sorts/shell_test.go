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
	"slices"
	"testing"
)

func TestShellSeed(t *testing.T) {
	data := slices.Clone(seedInput)
	Shell(data)
	if !slices.Equal(data, seedWant) {
		t.Errorf("Shell(%v) = %v, want %v", seedInput, data, seedWant)
	}
}

func TestShellNil(t *testing.T) {
	var data []int
	Shell(data)
	if len(data) != 0 {
		t.Errorf("Shell(nil) should be a no-op")
	}
}

func TestShellEmpty(t *testing.T) {
	data := []int{}
	Shell(data)
	if len(data) != 0 {
		t.Errorf("Shell(empty) should not modify an empty slice")
	}
}

func TestShellSingle(t *testing.T) {
	data := []int{5}
	Shell(data)
	if data[0] != 5 {
		t.Errorf("Shell([5]) = %v, want [5]", data)
	}
}

// TestShellReversed is the canonical reverse-order scenario: every gap pass
// moves elements long distances, the final gap-1 pass finishes the job.
func TestShellReversed(t *testing.T) {
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	Shell(data)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if !slices.Equal(data, want) {
		t.Errorf("Shell(reversed) = %v, want %v", data, want)
	}
}

func TestShellDuplicates(t *testing.T) {
	data := []int{3, 1, 3, 2}
	Shell(data)
	want := []int{1, 2, 3, 3}
	if !slices.Equal(data, want) {
		t.Errorf("Shell([3 1 3 2]) = %v, want %v", data, want)
	}
}

func TestShellAlreadySorted(t *testing.T) {
	data := generateSortedInts(64)
	want := slices.Clone(data)
	Shell(data)
	if !slices.Equal(data, want) {
		t.Errorf("Shell(sorted) changed the sequence")
	}
}

func TestShellRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, n := range testSizes {
		data := generateInts(n, rng)
		input := slices.Clone(data)
		Shell(data)
		checkSortedPermutation(t, "Shell(random)", input, data)
	}
}

func TestGapsHalving(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{1, nil},
		{2, []int{1}},
		{10, []int{5, 2, 1}},
		{16, []int{8, 4, 2, 1}},
	}
	for _, tt := range tests {
		got := GapsHalving(tt.n)
		if !slices.Equal(got, tt.want) {
			t.Errorf("GapsHalving(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestGapsKnuth(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{1, nil},
		{2, []int{1}},
		{13, []int{4, 1}},
		{100, []int{40, 13, 4, 1}},
	}
	for _, tt := range tests {
		got := GapsKnuth(tt.n)
		if !slices.Equal(got, tt.want) {
			t.Errorf("GapsKnuth(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestShellGapsKnuth(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range testSizes {
		data := generateInts(n, rng)
		input := slices.Clone(data)
		ShellGaps(data, GapsKnuth)
		checkSortedPermutation(t, "ShellGaps(Knuth)", input, data)
	}
}

func TestShellFunc(t *testing.T) {
	data := slices.Clone(seedInput)
	ShellFunc(data, intCompare)
	if !slices.Equal(data, seedWant) {
		t.Errorf("ShellFunc(%v) = %v, want %v", seedInput, data, seedWant)
	}
}

func TestShellGapsFunc(t *testing.T) {
	data := []pair{{9, ""}, {2, ""}, {7, ""}, {1, ""}, {4, ""}}
	ShellGapsFunc(data, GapsKnuth, byKey)
	for i := 1; i < len(data); i++ {
		if data[i].key < data[i-1].key {
			t.Fatalf("ShellGapsFunc produced unsorted result: %v", data)
		}
	}
}
