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
	"time"

	"histbench"
	"histbench/internal/telemetry/benchmetrics"
)

// Result is the terminal artifact of one run: the reduction's wall-clock time
// on the monotonic clock and the verifier's verdict. Immutable once produced.
type Result struct {
	Elapsed time.Duration
	Correct bool
}

// Run executes exactly one benchmark run: generate the workload (untimed),
// allocate and reset the bin store, time the reduction alone, then verify
// (untimed). A failed verification is a reportable outcome, not an error; the
// Result still carries the timing.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	data, err := histbench.Generate(cfg.Dist, cfg.N)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrAlloc, err)
	}
	store, err := histbench.NewBinStore(cfg.EffectivePadding())
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrAlloc, err)
	}
	store.Reset()

	start := time.Now()
	if err := Reduce(cfg, data, store); err != nil {
		return Result{}, err
	}
	elapsed := time.Since(start)

	res := Result{Elapsed: elapsed, Correct: store.Verify(cfg.N)}
	benchmetrics.ObserveRun(cfg.Strategy.String(), cfg.Dist.String(), elapsed, res.Correct)
	return res, nil
}
