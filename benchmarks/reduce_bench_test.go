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

// Package benchmarks contains the performance tests for the histogram
// benchmark suite. These complement the CLI: the CLI times one configured
// run for cross-implementation records, while these sweeps compare the
// strategies under the Go testing framework.
package benchmarks

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"

	"histbench"
	"histbench/internal/hist"
)

const benchN = 1_000_000

func workload(b *testing.B, dist histbench.Distribution) []byte {
	b.Helper()
	data, err := histbench.Generate(dist, benchN)
	if err != nil {
		b.Fatal(err)
	}
	return data
}

func runReduce(b *testing.B, cfg hist.Config, data []byte) {
	b.Helper()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		store, err := histbench.NewBinStore(cfg.EffectivePadding())
		if err != nil {
			b.Fatal(err)
		}
		if err := hist.Reduce(cfg, data, store); err != nil {
			b.Fatal(err)
		}
		if !store.Verify(len(data)) {
			b.Fatalf("lost updates: total %d, want %d", store.Total(), len(data))
		}
	}
}

// BenchmarkReduce sweeps strategy x distribution x padding at GOMAXPROCS
// workers. The skewed/atomic cell is the contention-heavy corner the suite
// exists to quantify; local should pull ahead of atomic there.
func BenchmarkReduce(b *testing.B) {
	workers := runtime.GOMAXPROCS(0)
	for _, strategy := range []hist.Strategy{hist.GlobalAtomic, hist.ThreadLocalReduce} {
		for _, dist := range []histbench.Distribution{histbench.DistUniform, histbench.DistSkewed} {
			for _, padded := range []bool{false, true} {
				cfg := hist.Config{
					Strategy: strategy,
					Dist:     dist,
					N:        benchN,
					Workers:  workers,
					Policy:   hist.PolicyStatic,
					Padded:   padded,
				}
				if padded && !cfg.EffectivePadding() {
					continue // padding is a no-op for local; skip the duplicate cell
				}
				name := fmt.Sprintf("%s/%s/pad=%d", strategy, dist, pad01(cfg.EffectivePadding()))
				data := workload(b, dist)
				b.Run(name, func(b *testing.B) {
					runReduce(b, cfg, data)
				})
			}
		}
	}
}

// BenchmarkReduce_Policies compares the schedule policies on the skewed
// workload under the local strategy, where load imbalance (hot chunks cost
// the same as cold ones here, but the claiming overhead differs) shows up.
func BenchmarkReduce_Policies(b *testing.B) {
	workers := runtime.GOMAXPROCS(0)
	data := workload(b, histbench.DistSkewed)
	for _, policy := range []hist.Policy{hist.PolicyStatic, hist.PolicyDynamic, hist.PolicyGuided} {
		cfg := hist.Config{
			Strategy: hist.ThreadLocalReduce,
			Dist:     histbench.DistSkewed,
			N:        benchN,
			Workers:  workers,
			Policy:   policy,
		}
		b.Run(policy.String(), func(b *testing.B) {
			runReduce(b, cfg, data)
		})
	}
}

// BenchmarkBinStore_HotAdjacentBins hammers four physically adjacent bins
// from all procs, the pattern where the padded layout should separate from
// the compact one: same true contention, no false sharing.
func BenchmarkBinStore_HotAdjacentBins(b *testing.B) {
	for _, padded := range []bool{false, true} {
		name := "compact"
		if padded {
			name = "padded"
		}
		b.Run(name, func(b *testing.B) {
			store, err := histbench.NewBinStore(padded)
			if err != nil {
				b.Fatal(err)
			}
			slots := [4]*uint64{store.Slot(0), store.Slot(1), store.Slot(2), store.Slot(3)}
			b.RunParallel(func(pb *testing.PB) {
				i := 0
				for pb.Next() {
					atomic.AddUint64(slots[i&3], 1)
					i++
				}
			})
		})
	}
}

// BenchmarkGenerate measures the serial LCG generators; this cost sits
// outside every timed region but bounds sweep turnaround.
func BenchmarkGenerate(b *testing.B) {
	for _, dist := range []histbench.Distribution{histbench.DistUniform, histbench.DistSkewed} {
		b.Run(dist.String(), func(b *testing.B) {
			b.SetBytes(benchN)
			for i := 0; i < b.N; i++ {
				if _, err := histbench.Generate(dist, benchN); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func pad01(b bool) int {
	if b {
		return 1
	}
	return 0
}
