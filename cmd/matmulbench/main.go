// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
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

// Package main runs the matrix-multiply scalability benchmark: C = A·B with
// A=1 and B=2, timed over several repetitions with the median reported.
// Exit codes: 0 ok, 1 bad arguments, 3 product verification failed.
package main

import (
	"flag"
	"fmt"
	"os"

	"histbench/internal/matmul"
)

func main() {
	var (
		n       = flag.Int("n", 512, "Matrix dimension (n x n, must be positive)")
		workers = flag.Int("t", 8, "Worker count (must be positive)")
		tile    = flag.Int("tile", 0, "Tile (block) size; 0 runs the naive kernel")
		reps    = flag.Int("reps", 5, "Timed repetitions; the median is reported")
	)
	flag.Parse()

	if *n <= 0 || *workers <= 0 || *reps <= 0 {
		fmt.Fprintln(os.Stderr, "n, T, and reps must be positive")
		os.Exit(1)
	}

	med, ok, err := matmul.Benchmark(*n, *workers, *tile, *reps)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	correct := 0
	if ok {
		correct = 1
	}
	fmt.Printf("mm,go,%d,%d,time,%.6f,sec\n", *n, *workers, med.Seconds())
	fmt.Printf("mm,go,%d,%d,correct,%d,boolean\n", *n, *workers, correct)

	if !ok {
		os.Exit(3)
	}
}
