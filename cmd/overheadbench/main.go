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

// Package main measures the raw per-operation cost of the parallel
// primitives: fork-join region entry/exit, barriers, mutual-exclusion
// regions, and atomic adds. The records it emits are used to interpret the
// histogram engine's results; no code is shared with that engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"histbench/internal/overhead"
)

func main() {
	var (
		workers = flag.Int("t", 8, "Worker count (must be positive)")
		reps    = flag.Int64("r", 100_000, "Repetitions per primitive (must be positive)")
	)
	flag.Parse()

	if *workers <= 0 || *reps <= 0 {
		fmt.Fprintln(os.Stderr, "T and R must be positive")
		os.Exit(1)
	}

	emit := func(metric string, res overhead.Result) {
		fmt.Printf("overhead,go,T=%d,R=%d,%s_total,%.9f,sec\n", *workers, *reps, metric, res.Total.Seconds())
		fmt.Printf("overhead,go,T=%d,R=%d,%s_per,%.9e,sec\n", *workers, *reps, metric, res.PerOp())
	}

	emit("parallel", overhead.ParallelRegion(*workers, *reps))
	emit("barrier", overhead.Barrier(*workers, *reps))
	emit("critical", overhead.Critical(*workers, *reps))
	emit("atomic", overhead.Atomic(*workers, *reps))
}
