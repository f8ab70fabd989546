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

// Package overhead measures the raw cost of the parallel primitives the
// histogram engine is built from: fork-join region entry/exit, barrier
// synchronization, mutual-exclusion regions, and atomic read-modify-writes.
// It shares no code with the reduction engine; its numbers are used to
// interpret that engine's results.
package overhead

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Result carries the total wall-clock time of one measurement and the
// per-operation cost derived from it.
type Result struct {
	Total time.Duration
	Ops   int64 // operations the total is divided over
}

// PerOp returns the mean cost of a single operation, in seconds.
func (r Result) PerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return r.Total.Seconds() / float64(r.Ops)
}

// ParallelRegion repeatedly materializes and joins a pool of empty workers,
// measuring region enter/exit alone. Ops counts regions, not workers.
func ParallelRegion(workers int, reps int64) Result {
	// Warm-up region so one-time runtime costs stay out of the measurement.
	forkJoin(workers)

	start := time.Now()
	for r := int64(0); r < reps; r++ {
		forkJoin(workers)
	}
	return Result{Total: time.Since(start), Ops: reps}
}

func forkJoin(workers int) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			wg.Done()
		}()
	}
	wg.Wait()
}

// Barrier runs one region in which every worker passes reps barriers.
// Ops counts individual waits (reps * workers).
func Barrier(workers int, reps int64) Result {
	b := newBarrier(workers)
	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for r := int64(0); r < reps; r++ {
				b.await()
			}
		}()
	}
	wg.Wait()
	return Result{Total: time.Since(start), Ops: reps * int64(workers)}
}

// Critical has every worker enter a shared mutual-exclusion region reps
// times, incrementing one counter inside it. Ops counts entries.
func Critical(workers int, reps int64) Result {
	var mu sync.Mutex
	var counter int64
	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for r := int64(0); r < reps; r++ {
				mu.Lock()
				counter++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	total := time.Since(start)
	if counter != reps*int64(workers) {
		// Increments under the mutex cannot be lost; reaching here means the
		// measurement itself is broken.
		panic(fmt.Sprintf("critical counter = %d, want %d", counter, reps*int64(workers)))
	}
	return Result{Total: total, Ops: reps * int64(workers)}
}

// Atomic has every worker perform reps atomic adds on one shared counter.
// Ops counts adds.
func Atomic(workers int, reps int64) Result {
	var counter atomic.Int64
	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for r := int64(0); r < reps; r++ {
				counter.Add(1)
			}
		}()
	}
	wg.Wait()
	total := time.Since(start)
	if counter.Load() != reps*int64(workers) {
		panic(fmt.Sprintf("atomic counter = %d, want %d", counter.Load(), reps*int64(workers)))
	}
	return Result{Total: total, Ops: reps * int64(workers)}
}

// barrier is a reusable cyclic barrier for a fixed party count. The phase
// counter distinguishes generations so a fast worker re-entering the barrier
// cannot slip past a slow one still waking up.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	phase   uint64
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *barrier) await() {
	b.mu.Lock()
	phase := b.phase
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.phase++
		b.cond.Broadcast()
	} else {
		for phase == b.phase {
			b.cond.Wait()
		}
	}
	b.mu.Unlock()
}
