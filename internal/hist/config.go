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

// Package hist implements the parallel histogram reduction engine: the two
// competing reduction strategies, the work-distribution partitioners, and the
// harness that times exactly one reduction per run.
package hist

import (
	"errors"
	"fmt"

	"histbench"
)

// Sentinel errors mapped to process exit codes at the CLI boundary.
var (
	// ErrConfig marks invalid run configurations (exit code 1). It is always
	// raised before any buffer or store allocation.
	ErrConfig = errors.New("invalid configuration")
	// ErrAlloc marks buffer or bin-store allocation failures (exit code 2).
	ErrAlloc = errors.New("allocation failed")
)

// Strategy selects the reduction design under comparison.
type Strategy int

const (
	// GlobalAtomic shares one histogram across all workers; every increment
	// is a hardware atomic read-modify-write.
	GlobalAtomic Strategy = iota
	// ThreadLocalReduce gives each worker a private histogram and serializes
	// a single merge per worker at the end.
	ThreadLocalReduce
)

func (s Strategy) String() string {
	switch s {
	case GlobalAtomic:
		return "atomic"
	case ThreadLocalReduce:
		return "local"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a CLI token to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "atomic":
		return GlobalAtomic, nil
	case "local":
		return ThreadLocalReduce, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (use atomic|local)", s)
	}
}

// Config is the immutable description of one benchmark run, parsed once at
// startup.
type Config struct {
	Strategy Strategy
	Dist     histbench.Distribution
	N        int // element count, > 0
	Workers  int // worker count, > 0
	Policy   Policy
	Chunk    int  // >= 0; 0 selects the policy's default
	Padded   bool // cache-line-padded bins; meaningful only for GlobalAtomic
	Affinity bool // pin workers one-to-one to execution units
}

// Validate checks the configuration before any allocation happens. All
// violations are ErrConfig so the CLI can exit with the argument-error code.
func (c Config) Validate() error {
	if c.N <= 0 {
		return fmt.Errorf("%w: N must be positive, got %d", ErrConfig, c.N)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: T must be positive, got %d", ErrConfig, c.Workers)
	}
	if c.Chunk < 0 {
		return fmt.Errorf("%w: chunk must be >= 0, got %d", ErrConfig, c.Chunk)
	}
	switch c.Strategy {
	case GlobalAtomic, ThreadLocalReduce:
	default:
		return fmt.Errorf("%w: unknown strategy %d", ErrConfig, int(c.Strategy))
	}
	switch c.Dist {
	case histbench.DistUniform, histbench.DistSkewed:
	default:
		return fmt.Errorf("%w: unknown distribution %d", ErrConfig, int(c.Dist))
	}
	switch c.Policy {
	case PolicyStatic, PolicyDynamic, PolicyGuided:
	default:
		return fmt.Errorf("%w: unknown schedule policy %d", ErrConfig, int(c.Policy))
	}
	return nil
}

// EffectivePadding reports whether the run actually uses padded bins. Padding
// only changes behavior under GlobalAtomic; ThreadLocalReduce workers own
// private stack-local stores, so the flag is ignored (and reported disabled).
func (c Config) EffectivePadding() bool {
	return c.Padded && c.Strategy == GlobalAtomic
}

// EffectiveChunk reports the chunk size the run's partitioner actually uses:
// the policy default when the configuration leaves Chunk at 0, and 0 for the
// static policy, which ignores the knob entirely.
func (c Config) EffectiveChunk() int {
	switch c.Policy {
	case PolicyDynamic:
		if c.Chunk <= 0 {
			return defaultDynamicChunk
		}
		return c.Chunk
	case PolicyGuided:
		if c.Chunk <= 0 {
			return 1
		}
		return c.Chunk
	default:
		return 0
	}
}
