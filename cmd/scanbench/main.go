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

// Package main runs the prefix-sum programmability benchmark: a two-phase
// blockwise exclusive scan over an all-ones array, checked against the
// identity sequence. Correctness only; no timing record.
// Exit codes: 0 ok, 1 bad arguments, 3 verification failed.
package main

import (
	"flag"
	"fmt"
	"os"

	"histbench/internal/scan"
)

func main() {
	var (
		n       = flag.Int("n", 10_000_000, "Array length (must be positive)")
		workers = flag.Int("t", 8, "Worker count (must be positive)")
	)
	flag.Parse()

	if *n <= 0 || *workers <= 0 {
		fmt.Fprintln(os.Stderr, "N and T must be positive")
		os.Exit(1)
	}

	in := make([]int64, *n)
	for i := range in {
		in[i] = 1
	}

	out, err := scan.Exclusive(in, *workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	correct := 0
	if scan.VerifyOnes(out) {
		correct = 1
	}
	fmt.Printf("scan,go,N=%d,T=%d,correct,%d,boolean\n", *n, *workers, correct)

	if correct == 0 {
		os.Exit(3)
	}
}
