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

// Command sortbench runs one algorithm from the sorts package over
// generated data, verifies the result, and reports wall time and
// throughput.
//
// Usage:
//
//	sortbench -algo quick -n 1000000 -pattern random
//	sortbench -algo insertion -n 5000 -pattern reversed
//	sortbench -algo merge -n 100000 -pattern dups -seed 7
//
// Patterns: random, sorted, reversed, dups (many duplicate keys).
// Algorithms: selection, insertion, shell, quick, merge, sort.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/ajroetker/go-sorts/sorts"
)

var (
	algoName = flag.String("algo", "sort", "Algorithm to run ("+strings.Join(algoNames(), ", ")+")")
	count    = flag.Int("n", 1000000, "Number of elements to sort")
	pattern  = flag.String("pattern", "random", "Input pattern (random, sorted, reversed, dups)")
	seed     = flag.Int64("seed", 1, "Seed for the random generator")
)

// algos maps a flag value to a runner. Merge returns a fresh slice, the
// rest sort in place, so the runner returns the slice to verify.
var algos = map[string]func([]int) []int{
	"selection": func(data []int) []int { sorts.Selection(data); return data },
	"insertion": func(data []int) []int { sorts.Insertion(data); return data },
	"shell":     func(data []int) []int { sorts.Shell(data); return data },
	"quick":     func(data []int) []int { sorts.Quick(data); return data },
	"merge":     sorts.Merge[int],
	"sort":      func(data []int) []int { sorts.Sort(data); return data },
}

func algoNames() []string {
	return []string{"selection", "insertion", "shell", "quick", "merge", "sort"}
}

func main() {
	flag.Parse()

	run, ok := algos[*algoName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown algorithm %q\n\n", *algoName)
		flag.Usage()
		os.Exit(1)
	}
	if *count < 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be non-negative\n")
		os.Exit(1)
	}

	data, err := generate(*count, *pattern, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("algo=%s pattern=%s n=%s\n", *algoName, *pattern, humanize.Comma(int64(*count)))

	start := time.Now()
	result := run(data)
	elapsed := time.Since(start)

	rate := "-"
	if secs := elapsed.Seconds(); secs > 0 {
		rate = humanize.Comma(int64(float64(*count)/secs)) + " elem/s"
	}
	fmt.Printf("elapsed=%s rate=%s\n", elapsed, rate)

	if len(result) != *count {
		color.Red("FAILED: length changed: got %d, want %d", len(result), *count)
		os.Exit(1)
	}
	if !sorts.IsSorted(result) {
		color.Red("FAILED: result is not sorted")
		os.Exit(1)
	}
	color.Green("OK")
}

func generate(n int, pattern string, seed int64) ([]int, error) {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	switch pattern {
	case "random":
		for i := range data {
			data[i] = rng.Intn(n + 1)
		}
	case "sorted":
		for i := range data {
			data[i] = i
		}
	case "reversed":
		for i := range data {
			data[i] = n - i
		}
	case "dups":
		for i := range data {
			data[i] = rng.Intn(16)
		}
	default:
		return nil, fmt.Errorf("unknown pattern %q", pattern)
	}
	return data, nil
}
