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
	"fmt"
	"sync"
	"sync/atomic"
)

// Policy is the rule by which the loop's index range is divided among
// workers. Granularity affects contention and load balance, never coverage:
// every partitioner hands out [0, n) exactly once.
type Policy int

const (
	// PolicyStatic precomputes contiguous equal-sized blocks, one per worker.
	PolicyStatic Policy = iota
	// PolicyDynamic doles out fixed-size chunks from a shared atomic cursor.
	PolicyDynamic
	// PolicyGuided doles out chunks that shrink geometrically with the
	// remaining work, bounded below by the configured chunk size.
	PolicyGuided
)

func (p Policy) String() string {
	switch p {
	case PolicyStatic:
		return "static"
	case PolicyDynamic:
		return "dynamic"
	case PolicyGuided:
		return "guided"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps a CLI token to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "static":
		return PolicyStatic, nil
	case "dynamic":
		return PolicyDynamic, nil
	case "guided":
		return PolicyGuided, nil
	default:
		return 0, fmt.Errorf("unknown schedule policy %q (use static|dynamic|guided)", s)
	}
}

// defaultDynamicChunk is the dynamic chunk size when the configuration leaves
// it at 0. Per-element claiming would time the cursor, not the reduction.
const defaultDynamicChunk = 1024

// Partitioner hands out index ranges of the parallel loop. Next returns the
// half-open range [lo, hi) to process, or ok == false when the range is
// exhausted. Implementations are safe for concurrent use by all workers.
type Partitioner interface {
	Next() (lo, hi int, ok bool)
}

// NewPartitioner builds the partitioner for a run. chunk == 0 selects the
// policy default (static ignores chunk; it always carves one contiguous block
// per worker).
func NewPartitioner(policy Policy, n, workers, chunk int) Partitioner {
	switch policy {
	case PolicyDynamic:
		if chunk <= 0 {
			chunk = defaultDynamicChunk
		}
		return &dynamicPartitioner{n: int64(n), chunk: int64(chunk)}
	case PolicyGuided:
		if chunk <= 0 {
			chunk = 1
		}
		return &guidedPartitioner{n: n, workers: workers, minChunk: chunk}
	default:
		return newStaticPartitioner(n, workers)
	}
}

// staticPartitioner precomputes one contiguous block per worker up front.
// Blocks are claimed through a shared index so the same Next contract serves
// all policies; with T workers and T blocks each worker typically claims one.
type staticPartitioner struct {
	bounds []int // block i spans [bounds[i], bounds[i+1])
	next   atomic.Int64
}

func newStaticPartitioner(n, workers int) *staticPartitioner {
	bounds := make([]int, workers+1)
	for w := 0; w <= workers; w++ {
		bounds[w] = n * w / workers
	}
	return &staticPartitioner{bounds: bounds}
}

func (p *staticPartitioner) Next() (int, int, bool) {
	for {
		i := int(p.next.Add(1)) - 1
		if i >= len(p.bounds)-1 {
			return 0, 0, false
		}
		// With more workers than elements some blocks are empty; those are
		// consumed here, never handed out.
		if p.bounds[i] == p.bounds[i+1] {
			continue
		}
		return p.bounds[i], p.bounds[i+1], true
	}
}

// dynamicPartitioner advances a shared cursor by a fixed chunk per claim.
type dynamicPartitioner struct {
	n      int64
	chunk  int64
	cursor atomic.Int64
}

func (p *dynamicPartitioner) Next() (int, int, bool) {
	lo := p.cursor.Add(p.chunk) - p.chunk
	if lo >= p.n {
		return 0, 0, false
	}
	hi := lo + p.chunk
	if hi > p.n {
		hi = p.n
	}
	return int(lo), int(hi), true
}

// guidedPartitioner shrinks the chunk as work drains: each claim takes
// remaining/workers indices, never fewer than minChunk. The chunk size
// depends on the remaining count, so claims serialize through a mutex.
type guidedPartitioner struct {
	n        int
	workers  int
	minChunk int

	mu     sync.Mutex
	cursor int
}

func (p *guidedPartitioner) Next() (int, int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	remaining := p.n - p.cursor
	if remaining <= 0 {
		return 0, 0, false
	}
	c := remaining / p.workers
	if c < p.minChunk {
		c = p.minChunk
	}
	if c > remaining {
		c = remaining
	}
	lo := p.cursor
	p.cursor += c
	return lo, lo + c, true
}
