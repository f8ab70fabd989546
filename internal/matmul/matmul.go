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

// Package matmul is the scalability benchmark: C = A·B over n×n matrices with
// A=1 and B=2, so every C entry must equal 2n. A naive row-parallel kernel
// and an optionally tiled one are timed over several repetitions.
package matmul

import (
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"histbench/internal/stats"
)

// Matrices bundles the three n×n operands in row-major order.
type Matrices struct {
	A, B, C []float64
	N       int
}

// New allocates the operands with A=1, B=2, C=0.
func New(n int) *Matrices {
	m := &Matrices{
		A: make([]float64, n*n),
		B: make([]float64, n*n),
		C: make([]float64, n*n),
		N: n,
	}
	for i := range m.A {
		m.A[i] = 1.0
		m.B[i] = 2.0
	}
	return m
}

// ZeroC clears the output between repetitions.
func (m *Matrices) ZeroC() {
	for i := range m.C {
		m.C[i] = 0
	}
}

// Multiply computes C += A·B across the given worker count. tile <= 0 runs
// the naive kernel; tile > 0 runs the blocked kernel with that block size.
// Rows are partitioned contiguously, one band per worker.
func (m *Matrices) Multiply(workers, tile int) error {
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := m.N * w / workers
		hi := m.N * (w + 1) / workers
		g.Go(func() error {
			if tile > 0 {
				m.multiplyTiled(lo, hi, tile)
			} else {
				m.multiplyNaive(lo, hi)
			}
			return nil
		})
	}
	return g.Wait()
}

func (m *Matrices) multiplyNaive(rowLo, rowHi int) {
	n := m.N
	for i := rowLo; i < rowHi; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += m.A[i*n+k] * m.B[k*n+j]
			}
			m.C[i*n+j] += sum
		}
	}
}

func (m *Matrices) multiplyTiled(rowLo, rowHi, bs int) {
	n := m.N
	for ii := rowLo; ii < rowHi; ii += bs {
		iimax := min(ii+bs, rowHi)
		for jj := 0; jj < n; jj += bs {
			jjmax := min(jj+bs, n)
			for kk := 0; kk < n; kk += bs {
				kkmax := min(kk+bs, n)
				for i := ii; i < iimax; i++ {
					for j := jj; j < jjmax; j++ {
						sum := 0.0
						for k := kk; k < kkmax; k++ {
							sum += m.A[i*n+k] * m.B[k*n+j]
						}
						m.C[i*n+j] += sum
					}
				}
			}
		}
	}
}

// CheckAllEqual reports whether every C entry is within tol of target.
func (m *Matrices) CheckAllEqual(target, tol float64) bool {
	for _, v := range m.C {
		if math.Abs(v-target) > tol {
			return false
		}
	}
	return true
}

// Benchmark runs a warm-up multiplication, then reps timed ones, and returns
// the median time plus the correctness of the final product (all entries
// equal 2n within 1e-9).
func Benchmark(n, workers, tile, reps int) (time.Duration, bool, error) {
	m := New(n)

	// Warm-up (not timed).
	if err := m.Multiply(workers, tile); err != nil {
		return 0, false, err
	}

	times := make([]time.Duration, 0, reps)
	for r := 0; r < reps; r++ {
		m.ZeroC()
		start := time.Now()
		if err := m.Multiply(workers, tile); err != nil {
			return 0, false, err
		}
		times = append(times, time.Since(start))
	}

	ok := m.CheckAllEqual(2.0*float64(n), 1e-9)
	return stats.Median(times), ok, nil
}
