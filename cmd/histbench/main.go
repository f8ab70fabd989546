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

// Package main runs one parallel-histogram benchmark: generate a
// deterministic workload, time a single reduction under the configured
// strategy, verify the counts, and emit two machine-parseable records.
//
// Exit codes: 0 success and correct; 1 invalid arguments; 2 allocation
// failure; 3 completed but the correctness check failed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"histbench"
	"histbench/internal/hist"
	"histbench/internal/sink"
	"histbench/internal/telemetry/benchmetrics"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		strategyStr = flag.String("strategy", "atomic", "Reduction strategy: atomic (shared histogram, atomic increments) | local (private histograms, serialized merge)")
		distStr     = flag.String("dist", "uniform", "Workload shape: uniform | skewed (~80% of samples in the first 51 bins)")
		n           = flag.Int("n", 10_000_000, "Number of elements to reduce (must be positive)")
		workers     = flag.Int("t", 8, "Worker count (must be positive)")
		schedStr    = flag.String("sched", "static", "Work-distribution policy: static | dynamic | guided")
		chunk       = flag.Int("chunk", 0, "Chunk size for dynamic/guided claiming; 0 selects the policy default")
		padded      = flag.Bool("pad", false, "Cache-line-pad the shared bins (meaningful only for -strategy=atomic)")
		affinity    = flag.Bool("affinity", false, "Pin workers one-to-one to CPUs (Linux; a placement hint elsewhere)")
		format      = flag.String("format", "csv", "Record format: csv | json")

		// Telemetry and result routing (opt-in).
		metricsAddr = flag.String("metrics_addr", "", "If non-empty, expose Prometheus /metrics on this address (e.g., :9090)")
		redisAddr   = flag.String("redis_addr", "", "If non-empty, also RPUSH records to Redis at this address")
		redisKey    = flag.String("redis_key", "histbench:results", "Redis list key for -redis_addr")
	)
	flag.Parse()

	strategy, err := hist.ParseStrategy(*strategyStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	dist, err := histbench.ParseDistribution(*distStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	policy, err := hist.ParsePolicy(*schedStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *format != "csv" && *format != "json" {
		fmt.Fprintf(os.Stderr, "unknown format %q (use csv|json)\n", *format)
		return 1
	}

	cfg := hist.Config{
		Strategy: strategy,
		Dist:     dist,
		N:        *n,
		Workers:  *workers,
		Policy:   policy,
		Chunk:    *chunk,
		Padded:   *padded,
		Affinity: *affinity,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	benchmetrics.Enable(benchmetrics.Config{
		Enabled:     *metricsAddr != "",
		MetricsAddr: *metricsAddr,
	})

	out := sink.Multi{sink.NewWriterSink(os.Stdout)}
	if *redisAddr != "" {
		out = append(out, sink.NewRedisSink(*redisAddr, *redisKey))
	}
	defer out.Close()

	res, err := hist.Run(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		switch {
		case errors.Is(err, hist.ErrAlloc):
			return 2
		default:
			return 1
		}
	}

	ctx := context.Background()
	for _, rec := range hist.Records(cfg, res) {
		line := rec.CSV()
		if *format == "json" {
			line, err = rec.JSON()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
		}
		if err := out.Emit(ctx, line); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if !res.Correct {
		return 3
	}
	return 0
}
