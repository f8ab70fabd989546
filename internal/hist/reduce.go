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

package hist

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"histbench"
)

// Reduce executes one fork-join reduction of data into store under the run's
// strategy, schedule policy, and placement settings. The sample buffer is
// read-only throughout; the store must be zeroed by the caller. Workers are
// materialized for this region only and have all joined when Reduce returns.
func Reduce(cfg Config, data []byte, store *histbench.BinStore) error {
	part := NewPartitioner(cfg.Policy, len(data), cfg.Workers, cfg.Chunk)
	switch cfg.Strategy {
	case ThreadLocalReduce:
		return reduceThreadLocal(cfg, data, store, part)
	default:
		return reduceGlobalAtomic(cfg, data, store, part)
	}
}

// reduceGlobalAtomic shares the store across all workers; every sample costs
// one atomic read-modify-write on its bin. No increments are lost regardless
// of policy or padding; throughput degrades under skewed data because hot
// bins serialize in the cache-coherence protocol. Padding removes only the
// false-sharing component of that cost.
func reduceGlobalAtomic(cfg Config, data []byte, store *histbench.BinStore, part Partitioner) error {
	var g errgroup.Group
	for w := 0; w < cfg.Workers; w++ {
		w := w
		g.Go(func() error {
			if cfg.Affinity {
				pinWorker(w)
			}
			for {
				lo, hi, ok := part.Next()
				if !ok {
					return nil
				}
				for _, v := range data[lo:hi] {
					atomic.AddUint64(store.Slot(int(v)), 1)
				}
			}
		})
	}
	return g.Wait()
}

// reduceThreadLocal gives every worker a private, exclusively-owned counter
// array so the partition phase is synchronization-free; each worker then
// folds its array into the shared store inside a mutex, one worker at a
// time. The merge begins only after the worker's own partition phase is
// finished, never before.
func reduceThreadLocal(cfg Config, data []byte, store *histbench.BinStore, part Partitioner) error {
	var mergeMu sync.Mutex
	var g errgroup.Group
	for w := 0; w < cfg.Workers; w++ {
		w := w
		g.Go(func() error {
			if cfg.Affinity {
				pinWorker(w)
			}
			var local [histbench.NumBins]uint64
			for {
				lo, hi, ok := part.Next()
				if !ok {
					break
				}
				for _, v := range data[lo:hi] {
					local[v]++
				}
			}
			mergeMu.Lock()
			for b, c := range local {
				if c != 0 {
					*store.Slot(b) += c
				}
			}
			mergeMu.Unlock()
			return nil
		})
	}
	return g.Wait()
}
